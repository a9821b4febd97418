package outcome

// OnSuccess invokes action with the success payload when the outcome is
// successful and returns the receiver unchanged, enabling chaining. The
// action is validated only when it would run: panics with ErrInvalidArgument
// if the outcome is successful and action is nil.
func (o Outcome[S, F]) OnSuccess(action func(S)) Outcome[S, F] {
	if o.succeeded {
		if action == nil {
			invalidArg("onSuccess: action must not be nil")
		}
		action(o.success)
	}
	return o
}

// OnFailure is the failure-channel counterpart of OnSuccess.
func (o Outcome[S, F]) OnFailure(action func(F)) Outcome[S, F] {
	if !o.succeeded {
		if action == nil {
			invalidArg("onFailure: action must not be nil")
		}
		action(o.failure)
	}
	return o
}

// OnEither invokes exactly one of the two actions, matching the active
// channel. Only the action that will run is validated for presence.
func (o Outcome[S, F]) OnEither(successAction func(S), failureAction func(F)) Outcome[S, F] {
	if o.succeeded {
		if successAction == nil {
			invalidArg("onEither: successAction must not be nil")
		}
		successAction(o.success)
		return o
	}
	if failureAction == nil {
		invalidArg("onEither: failureAction must not be nil")
	}
	failureAction(o.failure)
	return o
}
