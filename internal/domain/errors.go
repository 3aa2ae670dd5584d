package domain

import "errors"

// Error kinds for feed retrieval and parsing. Callers classify wrapped
// errors with errors.Is.
var (
	// ErrFetchFailed covers transport errors and non-2xx responses.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrTimeout marks a deadline expiring before the fetch completed.
	ErrTimeout = errors.New("timeout")

	// ErrParseFailed marks malformed XML.
	ErrParseFailed = errors.New("parse failed")

	// ErrMissingData marks well-formed XML lacking required structure,
	// such as a feed with no station record or zero forecast entries.
	ErrMissingData = errors.New("missing data")
)
