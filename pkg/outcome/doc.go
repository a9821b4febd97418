// Package outcome provides Outcome[S, F], an immutable two-channel container
// for operations that either succeed with a value of type S or fail with a
// value of type F. Domain failures travel as ordinary values instead of
// error returns threaded through every call, while API misuse (nil required
// functions or payloads) panics with ErrInvalidArgument at the call site.
//
// Highlights:
// - Success/Failure: construct an Outcome with a present payload
// - FromNullable/FromOptional/FromCall: adapt foreign value shapes
// - IsSuccess/SuccessValue/OrElse/OrElseMap: inspect and unwrap
// - OnSuccess/OnFailure/OnEither: side effects without changing the outcome
// - Filter/Recover: move between channels based on a predicate
// - MapSuccess/MapFailure/MapEither and the FlatMap variants: transform
//   payloads and type parameters
// - SuccessSeq/FailureSeq: lift either channel into an iter.Seq
//
// For fluent synchronous composition over the common F=error case, see the
// chain subpackage.
package outcome
