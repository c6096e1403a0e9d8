package domain

import "errors"

var (
	// ErrMissingAPIKey means the Gemini credential was not configured.
	// The generator fails fast without a network call.
	ErrMissingAPIKey = errors.New("gemini api key is not configured")

	// ErrUpstream covers network, quota, and content-safety failures
	// from the Gemini service.
	ErrUpstream = errors.New("upstream generation failed")

	// ErrMalformedPlan means the service responded but the payload does
	// not decode into the expected learning_plan shape.
	ErrMalformedPlan = errors.New("malformed learning plan")
)
