package quote

import "errors"

// ErrMissingConfig means the Mailgun API key or sending domain is absent. The
// pipeline refuses to touch the request body in that state; the HTTP layer
// turns this into the fixed "Missing Mailgun configuration" response.
var ErrMissingConfig = errors.New("quote: missing mailgun configuration")

// ValidationError is a caller-fixable input problem. Its message is written
// for the end user and is returned verbatim in the 400 body.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}
