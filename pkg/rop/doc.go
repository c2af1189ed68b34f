// Package rop provides Result[T, E], a two-state container that carries either
// a value of type T or an error of type E, and ErrorBox[E], the optional-like
// holder of that error.
//
// Both slots of a Result always exist: on failure the value slot keeps T's
// zero value, on success the box is empty and keeps E's zero value. Callers
// branch on HasValue (or on the box) before reading a payload:
//
//	value, box := divide(10, 0).Unpack()
//	if box.Active() {
//		fmt.Println("error:", box.Get())
//		return
//	}
//	fmt.Println("value:", value)
//
// Constructors:
// - Of / FromSuccess: success case
// - FromBox / FromFailure: failure case
// - Emplace*: build the value in place from a constructor function
// - Transcode, Assign, Convert: cross-type conversion between instantiations
package rop
