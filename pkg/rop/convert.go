package rop

import "reflect"

// Conversions between instantiations come in two flavours.
//
// Transcode and TranscodeBox take converter functions and are checked by the
// compiler. Assign*/Convert* decide at run time through reflection: Assign
// accepts only implicit conversions (U assignable to T), Convert accepts any
// Go conversion (U convertible to T). A rejected conversion yields a
// ConversionError and never a truncated value.
//
// Each slot is checked independently. Only the active slot is transcoded; the
// other one is reset to its zero value.

// TranscodeBox converts the payload of an active box with conv. An empty box
// stays empty and conv is not called.
func TranscodeBox[E, U any](b ErrorBox[U], conv func(U) E) ErrorBox[E] {
	if !b.active {
		return ErrorBox[E]{}
	}
	return Err(conv(b.value))
}

func AssignBox[E, U any](b ErrorBox[U]) (ErrorBox[E], error) {
	return reflectBox[E](b, true)
}

func ConvertBox[E, U any](b ErrorBox[U]) (ErrorBox[E], error) {
	return reflectBox[E](b, false)
}

// Transcode converts r slot by slot. convValue runs only on success and
// convErr only on failure.
func Transcode[T, E, U, F any](r Result[U, F], convValue func(U) T, convErr func(F) E) Result[T, E] {
	if r.box.active {
		return FromBox[T](TranscodeBox(r.box, convErr))
	}
	return Of[T, E](convValue(r.value))
}

func Assign[T, E, U, F any](r Result[U, F]) (Result[T, E], error) {
	return reflectResult[T, E](r, true)
}

func Convert[T, E, U, F any](r Result[U, F]) (Result[T, E], error) {
	return reflectResult[T, E](r, false)
}

func reflectBox[E, U any](b ErrorBox[U], implicit bool) (ErrorBox[E], error) {
	if err := checkConversion(typeOf[U](), typeOf[E](), implicit); err != nil {
		return ErrorBox[E]{}, err
	}
	if !b.active {
		return ErrorBox[E]{}, nil
	}
	v, err := convertValue[E](b.value, implicit)
	if err != nil {
		return ErrorBox[E]{}, err
	}
	return Err(v), nil
}

func reflectResult[T, E, U, F any](r Result[U, F], implicit bool) (Result[T, E], error) {
	if err := checkConversion(typeOf[U](), typeOf[T](), implicit); err != nil {
		return Result[T, E]{}, err
	}
	box, err := reflectBox[E](r.box, implicit)
	if err != nil {
		return Result[T, E]{}, err
	}
	if box.active {
		return FromBox[T](box), nil
	}
	v, err := convertValue[T](r.value, implicit)
	if err != nil {
		return Result[T, E]{}, err
	}
	return Of[T, E](v), nil
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func checkConversion(from, to reflect.Type, implicit bool) error {
	if implicit {
		if !from.AssignableTo(to) {
			return ConversionError.New("%v is not assignable to %v", from, to)
		}
		return nil
	}
	if !from.ConvertibleTo(to) {
		return ConversionError.New("%v is not convertible to %v", from, to)
	}
	// Go turns an integer into the string of one rune, not its digits
	if isInteger(from.Kind()) && to.Kind() == reflect.String {
		return ConversionError.New("%v to %v would yield a rune, not a number", from, to)
	}
	return nil
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func convertValue[T, U any](v U, implicit bool) (out T, err error) {
	from, to := typeOf[U](), typeOf[T]()
	if cerr := checkConversion(from, to, implicit); cerr != nil {
		return out, cerr
	}

	// slice to array conversions panic on short input
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			out, err = zero, ConversionError.New("%v to %v: %v", from, to, rec)
		}
	}()

	reflect.ValueOf(&out).Elem().Set(reflect.ValueOf(&v).Elem().Convert(to))
	return out, nil
}
