package outcome

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnSuccess_InvokedWithPayload(t *testing.T) {
	t.Parallel()

	o := Success[int, string](7)

	var seen int
	got := o.OnSuccess(func(v int) { seen = v })

	assert.Equal(t, 7, seen)
	assert.True(t, got.Equal(o))
}

func TestOnSuccess_SkippedOnFailure(t *testing.T) {
	t.Parallel()

	o := Failure[int, string]("E")

	called := false
	got := o.OnSuccess(func(int) { called = true })

	assert.False(t, called)
	assert.True(t, got.Equal(o))

	// a nil action is not validated when it would not run
	assert.NotPanics(t, func() { o.OnSuccess(nil) })
}

func TestOnSuccess_NilActionOnSuccess(t *testing.T) {
	t.Parallel()

	require.PanicsWithError(t, "outcome: onSuccess: action must not be nil", func() {
		Success[int, string](1).OnSuccess(nil)
	})
}

func TestOnFailure_InvokedWithPayload(t *testing.T) {
	t.Parallel()

	o := Failure[int, string]("boom")

	var seen string
	got := o.OnFailure(func(f string) { seen = f })

	assert.Equal(t, "boom", seen)
	assert.True(t, got.Equal(o))

	assert.NotPanics(t, func() { Success[int, string](1).OnFailure(nil) })
	require.PanicsWithError(t, "outcome: onFailure: action must not be nil", func() {
		o.OnFailure(nil)
	})
}

func TestOnEither_ExactlyOneBranch(t *testing.T) {
	t.Parallel()

	successRuns, failureRuns := 0, 0

	got := Success[int, string](2).OnEither(
		func(int) { successRuns++ },
		func(string) { failureRuns++ },
	)
	assert.Equal(t, 1, successRuns)
	assert.Equal(t, 0, failureRuns)
	assert.True(t, got.Equal(Success[int, string](2)))

	successRuns, failureRuns = 0, 0
	got = Failure[int, string]("E").OnEither(
		func(int) { successRuns++ },
		func(string) { failureRuns++ },
	)
	assert.Equal(t, 0, successRuns)
	assert.Equal(t, 1, failureRuns)
	assert.True(t, got.Equal(Failure[int, string]("E")))
}

func TestOnEither_OnlyActiveBranchValidated(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Success[int, string](1).OnEither(func(int) {}, nil)
	})
	assert.NotPanics(t, func() {
		Failure[int, string]("E").OnEither(nil, func(string) {})
	})
	require.PanicsWithError(t, "outcome: onEither: successAction must not be nil", func() {
		Success[int, string](1).OnEither(nil, func(string) {})
	})
	require.PanicsWithError(t, "outcome: onEither: failureAction must not be nil", func() {
		Failure[int, string]("E").OnEither(func(int) {}, nil)
	})
}
