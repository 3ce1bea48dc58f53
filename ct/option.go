//
// option.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package ct

// Option is a value which is valid only if its choice is True. The
// value is always computed and returned in full so that constructing
// an invalid option takes the same time as constructing a valid one.
type Option[T any] struct {
	value T
	valid Choice
}

// NewOption creates a new option of value which is valid if valid is
// True.
func NewOption[T any](value T, valid Choice) Option[T] {
	return Option[T]{
		value: value,
		valid: valid,
	}
}

// Some creates a valid option.
func Some[T any](value T) Option[T] {
	return NewOption(value, True)
}

// IsSome returns True if the option is valid.
func (o Option[T]) IsSome() Choice {
	return o.valid
}

// IsNone returns True if the option is not valid.
func (o Option[T]) IsNone() Choice {
	return o.valid.Not()
}

// Get returns the option value and a boolean indicating if the value
// is valid.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.valid.Bool()
}

// Unwrap returns the option value. The function panics if the option
// is not valid.
func (o Option[T]) Unwrap() T {
	if !o.valid.Bool() {
		panic("ct.Option.Unwrap: option is not valid")
	}
	return o.value
}

// Expect returns the option value. The function panics with msg if
// the option is not valid.
func (o Option[T]) Expect(msg string) T {
	if !o.valid.Bool() {
		panic(msg)
	}
	return o.value
}

// UnwrapOr returns the option value if it is valid and def otherwise.
func (o Option[T]) UnwrapOr(def T) T {
	if o.valid.Bool() {
		return o.value
	}
	return def
}
