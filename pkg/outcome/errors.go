package outcome

import "errors"

// ErrInvalidArgument marks panics raised on API misuse: a required function
// or payload was nil where presence is part of the contract. These panics
// surface at the call site and are never converted into failure outcomes.
var ErrInvalidArgument = errors.New("invalid argument")

type invalidArgError struct {
	reason string
}

func (e invalidArgError) Error() string {
	return "outcome: " + e.reason
}

func (invalidArgError) Unwrap() error {
	return ErrInvalidArgument
}

func invalidArg(reason string) {
	panic(invalidArgError{reason: reason})
}
