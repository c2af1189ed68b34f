package rop

import "github.com/zeebo/errs"

var (
	// ConversionError is returned when a reflective conversion between
	// instantiations is rejected.
	ConversionError = errs.Class("rop conversion")
	// ErrNoValue is the panic class of MustValue on a failed Result.
	ErrNoValue = errs.Class("rop no value")
	// ErrEmptyBox is the panic class of MustGet on an empty ErrorBox and of
	// MustError on a successful Result.
	ErrEmptyBox = errs.Class("rop empty box")
)
