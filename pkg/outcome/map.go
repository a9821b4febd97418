package outcome

// The type-changing combinators live at package level because Go methods
// cannot introduce new type parameters. Pass-through on the inactive channel
// copies the held payload into the re-typed result; only the mapper that will
// actually run is validated, before it is invoked.

// MapSuccess transforms the success payload, keeping failures untouched.
// Panics with ErrInvalidArgument if o is successful and mapper is nil, or if
// mapper returns a nil-like value.
func MapSuccess[S, F, S2 any](o Outcome[S, F], mapper func(S) S2) Outcome[S2, F] {
	if !o.succeeded {
		return Outcome[S2, F]{failure: o.failure}
	}
	if mapper == nil {
		invalidArg("mapSuccess: mapper must not be nil")
	}
	s2 := mapper(o.success)
	if IsNil(s2) {
		invalidArg("mapSuccess: mapped success must not be nil")
	}
	return Outcome[S2, F]{success: s2, succeeded: true}
}

// MapFailure transforms the failure payload, keeping successes untouched.
func MapFailure[S, F, F2 any](o Outcome[S, F], mapper func(F) F2) Outcome[S, F2] {
	if o.succeeded {
		return Outcome[S, F2]{success: o.success, succeeded: true}
	}
	if mapper == nil {
		invalidArg("mapFailure: mapper must not be nil")
	}
	f2 := mapper(o.failure)
	if IsNil(f2) {
		invalidArg("mapFailure: mapped failure must not be nil")
	}
	return Outcome[S, F2]{failure: f2}
}

// MapEither applies exactly one of the two mappers, matching the active
// channel, producing an outcome with both type parameters changed.
func MapEither[S, F, S2, F2 any](o Outcome[S, F], successMapper func(S) S2, failureMapper func(F) F2) Outcome[S2, F2] {
	if o.succeeded {
		if successMapper == nil {
			invalidArg("mapEither: successMapper must not be nil")
		}
		s2 := successMapper(o.success)
		if IsNil(s2) {
			invalidArg("mapEither: mapped success must not be nil")
		}
		return Outcome[S2, F2]{success: s2, succeeded: true}
	}
	if failureMapper == nil {
		invalidArg("mapEither: failureMapper must not be nil")
	}
	f2 := failureMapper(o.failure)
	if IsNil(f2) {
		invalidArg("mapEither: mapped failure must not be nil")
	}
	return Outcome[S2, F2]{failure: f2}
}

// FlatMapSuccess binds mapper over the success channel. The outcome mapper
// returns becomes the result directly, with no further wrapping; failures
// pass through untouched.
func FlatMapSuccess[S, F, S2 any](o Outcome[S, F], mapper func(S) Outcome[S2, F]) Outcome[S2, F] {
	if !o.succeeded {
		return Outcome[S2, F]{failure: o.failure}
	}
	if mapper == nil {
		invalidArg("flatMapSuccess: mapper must not be nil")
	}
	return mapper(o.success)
}

// FlatMapFailure binds mapper over the failure channel; successes pass
// through untouched.
func FlatMapFailure[S, F, F2 any](o Outcome[S, F], mapper func(F) Outcome[S, F2]) Outcome[S, F2] {
	if o.succeeded {
		return Outcome[S, F2]{success: o.success, succeeded: true}
	}
	if mapper == nil {
		invalidArg("flatMapFailure: mapper must not be nil")
	}
	return mapper(o.failure)
}

// FlatMapEither applies exactly one of the two mappers, whose outcome is
// returned directly, potentially changing both type parameters.
func FlatMapEither[S, F, S2, F2 any](o Outcome[S, F], successMapper func(S) Outcome[S2, F2], failureMapper func(F) Outcome[S2, F2]) Outcome[S2, F2] {
	if o.succeeded {
		if successMapper == nil {
			invalidArg("flatMapEither: successMapper must not be nil")
		}
		return successMapper(o.success)
	}
	if failureMapper == nil {
		invalidArg("flatMapEither: failureMapper must not be nil")
	}
	return failureMapper(o.failure)
}
