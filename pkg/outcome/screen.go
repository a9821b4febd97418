package outcome

// Filter screens a successful outcome. When isAcceptable rejects the success
// payload, the result is a new failure built by toFailure; otherwise the
// receiver passes through unchanged. On a failed outcome Filter is a complete
// no-op: neither argument is invoked or validated.
//
// Panics with ErrInvalidArgument if the outcome is successful and either
// argument is nil, or if toFailure returns a nil-like payload.
func (o Outcome[S, F]) Filter(isAcceptable func(S) bool, toFailure func(S) F) Outcome[S, F] {
	if !o.succeeded {
		return o
	}
	if isAcceptable == nil {
		invalidArg("filter: isAcceptable must not be nil")
	}
	if toFailure == nil {
		invalidArg("filter: toFailure must not be nil")
	}
	if isAcceptable(o.success) {
		return o
	}
	f := toFailure(o.success)
	if IsNil(f) {
		invalidArg("filter: mapped failure must not be nil")
	}
	return Outcome[S, F]{failure: f}
}

// Recover is the dual of Filter. When the outcome is failed and isRecoverable
// accepts the failure payload, the result is a new success built by
// toSuccess; otherwise the receiver passes through unchanged. On a successful
// outcome Recover is a complete no-op.
func (o Outcome[S, F]) Recover(isRecoverable func(F) bool, toSuccess func(F) S) Outcome[S, F] {
	if o.succeeded {
		return o
	}
	if isRecoverable == nil {
		invalidArg("recover: isRecoverable must not be nil")
	}
	if toSuccess == nil {
		invalidArg("recover: toSuccess must not be nil")
	}
	if !isRecoverable(o.failure) {
		return o
	}
	s := toSuccess(o.failure)
	if IsNil(s) {
		invalidArg("recover: mapped success must not be nil")
	}
	return Outcome[S, F]{success: s, succeeded: true}
}
