package llm

import "errors"

var (
	// ErrMissingCredential indicates no API key was supplied. Callers see
	// this before any network activity happens.
	ErrMissingCredential = errors.New("no API key configured")

	// ErrTimeout indicates the completion request exceeded the configured
	// timeout.
	ErrTimeout = errors.New("completion request timed out")

	// ErrRateLimited indicates the service rejected the request for quota
	// reasons and retries were exhausted.
	ErrRateLimited = errors.New("completion service rate limited")

	// ErrUnavailable indicates the completion service could not be
	// reached.
	ErrUnavailable = errors.New("completion service unavailable")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid model output format")
)
