package outcome

import "iter"

// SuccessSeq returns a restartable sequence over the success channel: one
// element when successful, none when failed. Each range re-derives the
// sequence, so it composes with slices.Collect and friends.
func (o Outcome[S, F]) SuccessSeq() iter.Seq[S] {
	return func(yield func(S) bool) {
		if o.succeeded {
			yield(o.success)
		}
	}
}

// FailureSeq is the failure-channel counterpart of SuccessSeq.
func (o Outcome[S, F]) FailureSeq() iter.Seq[F] {
	return func(yield func(F) bool) {
		if !o.succeeded {
			yield(o.failure)
		}
	}
}
