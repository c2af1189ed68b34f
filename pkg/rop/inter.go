package rop

// ValueProvider exposes the value slot of a two-state container.
type ValueProvider[T any] interface {
	// HasValue returns true if the operation succeeded
	HasValue() bool
	// GetValue returns the value slot, meaningful only on success
	GetValue() T
}

// Outcome defines a read-only view over a value or an error
type Outcome[T, E any] interface {
	ValueProvider[T]
	// GetError returns the error payload, meaningful only on failure
	GetError() E
}

var (
	_ Outcome[int, string] = Result[int, string]{}
	_ Outcome[int, string] = (*Result[int, string])(nil)
)
