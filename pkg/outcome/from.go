package outcome

import (
	"errors"
	"runtime"
)

// Optional is the possibly-empty single-value container shape consumed by
// FromOptional. Any type with HasValue/Value satisfies it.
type Optional[T any] interface {
	// HasValue returns true if the Optional contains a value.
	HasValue() bool
	// Value returns the value (or its default) stored in the Optional.
	Value() T
}

// FromNullable adapts a nullable value: a non-nil pointer becomes a success
// holding the pointed-to value, a nil pointer becomes a failure built by
// onNil. onNil is validated only when it is needed; its payload must be
// present.
func FromNullable[S, F any](value *S, onNil func() F) Outcome[S, F] {
	if value != nil {
		return Success[S, F](*value)
	}
	if onNil == nil {
		invalidArg("fromNullable: onNil must not be nil")
	}
	return Failure[S, F](onNil())
}

// FromOptional adapts a possibly-empty container: a populated Optional
// becomes a success, an empty or nil one becomes a failure built by onEmpty.
func FromOptional[S, F any](opt Optional[S], onEmpty func() F) Outcome[S, F] {
	if opt != nil && opt.HasValue() {
		return Success[S, F](opt.Value())
	}
	if onEmpty == nil {
		invalidArg("fromOptional: onEmpty must not be nil")
	}
	return Failure[S, F](onEmpty())
}

// FromCall invokes a fallible zero-argument computation. A returned error
// becomes the failure payload; a normal return becomes the success payload,
// which must be present.
//
// Panics raised by call are captured into the failure channel only when the
// panic value implements error and is recoverable: runtime errors (nil
// dereference, slice bounds and similar process-state conditions) and
// ErrInvalidArgument misuse panics re-propagate, as do panic values that are
// not errors.
func FromCall[S any](call func() (S, error)) (out Outcome[S, error]) {
	if call == nil {
		invalidArg("fromCall: call must not be nil")
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if !ok {
			panic(r)
		}
		var rte runtime.Error
		if errors.As(err, &rte) || errors.Is(err, ErrInvalidArgument) {
			panic(r)
		}
		out = Failure[S, error](err)
	}()

	v, err := call()
	if err != nil {
		return Failure[S, error](err)
	}
	return Success[S, error](v)
}
