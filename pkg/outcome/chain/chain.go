package chain

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain carries an Outcome[T, error] together with the context handed to
// caller-supplied functions. The container itself never blocks; any blocking
// belongs to the functions a stage invokes.
//
// Stage functions follow the outcome package's validation rules: a nil
// function that would run panics with an error unwrapping
// outcome.ErrInvalidArgument; stages skipped by short-circuiting never
// validate their arguments. Ensure alone skips nil handlers.
type Chain[T any] struct {
	ctx context.Context
	out outcome.Outcome[T, error]
}

type invalidArgError struct {
	reason string
}

func (e invalidArgError) Error() string {
	return "chain: " + e.reason
}

func (invalidArgError) Unwrap() error {
	return outcome.ErrInvalidArgument
}

func invalidArg(reason string) {
	panic(invalidArgError{reason: reason})
}

func Start[T any](ctx context.Context, o outcome.Outcome[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, out: o}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success[T, error](v))
}

func (c Chain[T]) Outcome() outcome.Outcome[T, error] {
	return c.out
}

// Then composes a function that already returns an Outcome, short-circuiting
// on failure.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Outcome[T, error]) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	if onSuccess == nil {
		invalidArg("then: onSuccess must not be nil")
	}
	v, _ := c.out.SuccessValue()
	return Chain[T]{ctx: c.ctx, out: onSuccess(c.ctx, v)}
}

// ThenTry composes a function with Go's two-value fallible shape, converting
// a returned error into the failure channel.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	if try == nil {
		invalidArg("thenTry: try must not be nil")
	}
	v, _ := c.out.SuccessValue()
	u, err := try(c.ctx, v)
	if err != nil {
		return Chain[T]{ctx: c.ctx, out: outcome.Failure[T, error](err)}
	}
	return Chain[T]{ctx: c.ctx, out: outcome.Success[T, error](u)}
}

// Map transforms the successful value to a new value.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	if onSuccess == nil {
		invalidArg("map: onSuccess must not be nil")
	}
	return Chain[T]{ctx: c.ctx, out: outcome.MapSuccess(c.out, func(t T) T {
		return onSuccess(c.ctx, t)
	})}
}

// Validate turns a rejected value into a failure carrying errMsg.
func (c Chain[T]) Validate(validate func(ctx context.Context, t T) (valid bool, errMsg string)) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	if validate == nil {
		invalidArg("validate: validate must not be nil")
	}
	v, _ := c.out.SuccessValue()
	if valid, errMsg := validate(c.ctx, v); !valid {
		return Chain[T]{ctx: c.ctx, out: outcome.Failure[T, error](errors.New(errMsg))}
	}
	return c
}

// Recover moves a failure deemed recoverable back to the success channel.
func (c Chain[T]) Recover(isRecoverable func(ctx context.Context, err error) bool,
	toSuccess func(ctx context.Context, err error) T) Chain[T] {

	if c.out.IsSuccess() {
		return c
	}
	if isRecoverable == nil {
		invalidArg("recover: isRecoverable must not be nil")
	}
	if toSuccess == nil {
		invalidArg("recover: toSuccess must not be nil")
	}
	return Chain[T]{ctx: c.ctx, out: c.out.Recover(
		func(err error) bool { return isRecoverable(c.ctx, err) },
		func(err error) T { return toSuccess(c.ctx, err) },
	)}
}

// Ensure triggers side effects for success/failure without changing the
// result. Nil handlers are skipped.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.out.IsFailure() {
		if onFailure != nil {
			err, _ := c.out.FailureValue()
			onFailure(c.ctx, err)
		}
		return c
	}
	if onSuccess != nil {
		v, _ := c.out.SuccessValue()
		onSuccess(c.ctx, v)
	}
	return c
}

// Or returns the first successful chain of the receiver and the alternative;
// when both failed, the receiver wins.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.out.IsSuccess() {
		return c
	}
	if alternative.out.IsSuccess() {
		return alternative
	}
	return c
}

// And returns the first failed chain of the receiver and the required one;
// when both succeeded, the required chain wins.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.out.IsFailure() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value via the handler matching the
// active channel.
func (c Chain[T]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, error) T) T {
	if c.out.IsSuccess() {
		if onSuccess == nil {
			invalidArg("finally: onSuccess must not be nil")
		}
		v, _ := c.out.SuccessValue()
		return onSuccess(c.ctx, v)
	}
	if onFailure == nil {
		invalidArg("finally: onFailure must not be nil")
	}
	err, _ := c.out.FailureValue()
	return onFailure(c.ctx, err)
}
