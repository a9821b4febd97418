package outcome

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/bytebufferpool"
)

// Outcome holds exactly one of a success payload of type S or a failure
// payload of type F. The channel is fixed at construction; every operation
// returns a new Outcome instead of mutating the receiver, so instances are
// freely shareable across goroutines.
//
// The zero value behaves as a failure holding F's zero value. Use Success
// and Failure to construct well-formed instances.
type Outcome[S, F any] struct {
	success   S
	failure   F
	succeeded bool
}

// Success wraps a present value in the success channel.
// Panics with ErrInvalidArgument if value is nil-like.
func Success[S, F any](value S) Outcome[S, F] {
	if IsNil(value) {
		invalidArg("success payload must not be nil")
	}
	return Outcome[S, F]{success: value, succeeded: true}
}

// Failure wraps a present value in the failure channel.
// Panics with ErrInvalidArgument if value is nil-like.
func Failure[S, F any](value F) Outcome[S, F] {
	if IsNil(value) {
		invalidArg("failure payload must not be nil")
	}
	return Outcome[S, F]{failure: value}
}

func (o Outcome[S, F]) IsSuccess() bool {
	return o.succeeded
}

func (o Outcome[S, F]) IsFailure() bool {
	return !o.succeeded
}

// SuccessValue returns the success payload and true, or S's zero value and
// false when the outcome is failed.
func (o Outcome[S, F]) SuccessValue() (S, bool) {
	return o.success, o.succeeded
}

// FailureValue returns the failure payload and true, or F's zero value and
// false when the outcome is successful.
func (o Outcome[S, F]) FailureValue() (F, bool) {
	return o.failure, !o.succeeded
}

// OrElse returns the success payload, or other when failed. No presence
// constraint applies to other.
func (o Outcome[S, F]) OrElse(other S) S {
	if o.succeeded {
		return o.success
	}
	return other
}

// OrElseMap returns the success payload, or the value mapper produces from
// the failure payload. The mapped value may be nil-like. Panics with
// ErrInvalidArgument when the outcome is failed and mapper is nil.
func (o Outcome[S, F]) OrElseMap(mapper func(F) S) S {
	if o.succeeded {
		return o.success
	}
	if mapper == nil {
		invalidArg("orElseMap: mapper must not be nil")
	}
	return mapper(o.failure)
}

// Equal reports whether both outcomes are in the same channel and hold
// payloads equal under reflect.DeepEqual. Outcome is also comparable with ==
// when S and F are, since the inactive channel always holds the zero value.
func (o Outcome[S, F]) Equal(other Outcome[S, F]) bool {
	if o.succeeded != other.succeeded {
		return false
	}
	if o.succeeded {
		return reflect.DeepEqual(o.success, other.success)
	}
	return reflect.DeepEqual(o.failure, other.failure)
}

// Hash returns a digest consistent with Equal, scoped by channel and by the
// payload's dynamic type so that equal-looking payloads of unrelated types
// hash apart. The payload is rendered in a canonical pointer-following form,
// so outcomes holding distinct pointers to equal values hash alike, matching
// Equal's reflect.DeepEqual semantics.
func (o Outcome[S, F]) Hash() uint64 {
	d := xxhash.New()
	if o.succeeded {
		_, _ = d.WriteString("success|")
		_, _ = fmt.Fprintf(d, "%T|", o.success)
		writeCanonical(d, reflect.ValueOf(o.success), map[uintptr]struct{}{})
	} else {
		_, _ = d.WriteString("failure|")
		_, _ = fmt.Fprintf(d, "%T|", o.failure)
		writeCanonical(d, reflect.ValueOf(o.failure), map[uintptr]struct{}{})
	}
	return d.Sum64()
}

// String renders the active channel and its payload, e.g. Success(42).
func (o Outcome[S, F]) String() string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	if o.succeeded {
		_, _ = fmt.Fprintf(b, "Success(%v)", o.success)
	} else {
		_, _ = fmt.Fprintf(b, "Failure(%v)", o.failure)
	}
	return b.String()
}
