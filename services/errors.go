package services

import (
	"errors"
	"fmt"
)

// ErrNoDocuments means the documents folder held no usable PDF text.
var ErrNoDocuments = errors.New("no PDF documents found")

// ErrNotConfigured means the Gemini API key was absent at startup. The
// generation endpoints are unavailable but the rest of the server keeps
// working.
var ErrNotConfigured = errors.New("GEMINI_API_KEY is not configured")

// GenerationError means the model call itself failed (network, auth, quota,
// timeout). The model never answered.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// MalformedOutputError means the model answered but its reply could not be
// coerced into the required shape, even after tolerant parsing. Stage records
// which extraction stage produced the candidate JSON, when one matched.
type MalformedOutputError struct {
	Op     string
	Stage  string
	Reason string
}

func (e *MalformedOutputError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("malformed %s output (stage %s): %s", e.Op, e.Stage, e.Reason)
	}
	return fmt.Sprintf("malformed %s output: %s", e.Op, e.Reason)
}
