package services

import "errors"

// Submission failure taxonomy. Handlers map these onto HTTP statuses;
// anything not listed here is an internal error.
var (
	// ErrInvalidInput: missing or malformed url/examId. Rejected before
	// any network call.
	ErrInvalidInput = errors.New("invalid input")

	// ErrExamNotConfigured: the referenced exam has no marking-scheme
	// configuration. An administrative data problem, not the user's.
	ErrExamNotConfigured = errors.New("exam settings not found")

	// ErrFetchFailed: the answer-key portal was unreachable or answered
	// with a non-success status. Not retried; the user resubmits.
	ErrFetchFailed = errors.New("failed to fetch answer key")

	// ErrIdentityNotFound: the document was fetched but no roll number
	// could be extracted, so the result cannot be deduplicated. Either
	// an unsupported layout or a wrong URL.
	ErrIdentityNotFound = errors.New("could not find roll number in document")
)
