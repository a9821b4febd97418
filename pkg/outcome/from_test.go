package outcome

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNullable(t *testing.T) {
	t.Parallel()

	got := FromNullable[int](nil, func() string { return "was null" })
	assert.True(t, got.Equal(Failure[int, string]("was null")))

	v := 7
	got = FromNullable(&v, func() string { return "was null" })
	assert.True(t, got.Equal(Success[int, string](7)))
}

func TestFromNullable_OnNilRequiredOnlyWhenNil(t *testing.T) {
	t.Parallel()

	v := 7
	assert.NotPanics(t, func() {
		FromNullable[int, string](&v, nil)
	})
	require.PanicsWithError(t, "outcome: fromNullable: onNil must not be nil", func() {
		FromNullable[int, string](nil, nil)
	})
}

type testOptional[T any] struct {
	value T
	ok    bool
}

func (o testOptional[T]) HasValue() bool { return o.ok }
func (o testOptional[T]) Value() T       { return o.value }

func TestFromOptional(t *testing.T) {
	t.Parallel()

	got := FromOptional[int, string](testOptional[int]{value: 9, ok: true}, func() string { return "empty" })
	assert.True(t, got.Equal(Success[int, string](9)))

	got = FromOptional[int, string](testOptional[int]{}, func() string { return "empty" })
	assert.True(t, got.Equal(Failure[int, string]("empty")))

	got = FromOptional[int, string](nil, func() string { return "empty" })
	assert.True(t, got.Equal(Failure[int, string]("empty")))
}

func TestFromCall_NormalReturn(t *testing.T) {
	t.Parallel()

	got := FromCall(func() (int, error) { return 21, nil })

	assert.True(t, got.IsSuccess())
	v, _ := got.SuccessValue()
	assert.Equal(t, 21, v)
}

func TestFromCall_ErrorReturn(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	got := FromCall(func() (int, error) { return 0, boom })

	assert.True(t, got.IsFailure())
	err, _ := got.FailureValue()
	assert.ErrorIs(t, err, boom)
}

func TestFromCall_CapturesErrorPanic(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	got := FromCall(func() (int, error) { panic(boom) })

	assert.True(t, got.IsFailure())
	err, _ := got.FailureValue()
	assert.ErrorIs(t, err, boom)
}

func TestFromCall_RuntimeErrorPropagates(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		FromCall(func() (int, error) {
			var s []int
			return s[1], nil
		})
	})
}

func TestFromCall_NonErrorPanicPropagates(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "raw panic", func() {
		FromCall(func() (int, error) { panic("raw panic") })
	})
}

func TestFromCall_NilResultIsInvalidArgument(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, "outcome: success payload must not be nil", func() {
		FromCall(func() (*int, error) { return nil, nil })
	})
}

func TestFromCall_NilCall(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, "outcome: fromCall: call must not be nil", func() {
		FromCall[int](nil)
	})
}
