package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidation        = errors.New("validation error")
	ErrConfiguration     = errors.New("configuration error")
	ErrEmptyResult       = errors.New("image generation failed: No images were returned from the API.")
	ErrGenerationService = errors.New("generation service error")
	ErrUnknown           = errors.New("unknown error")
)

// UnknownErrorMessage is shown when a failure carries no readable text.
const UnknownErrorMessage = "An unknown error occurred."

// ServiceError carries the upstream message of a failed generation call.
type ServiceError struct {
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return UnknownErrorMessage
}

func (e *ServiceError) Unwrap() error { return e.Err }

func (e *ServiceError) Is(target error) bool { return target == ErrGenerationService }

// Message returns the single human-readable text for err.
func Message(err error) string {
	if err == nil || errors.Is(err, ErrUnknown) {
		return UnknownErrorMessage
	}
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return UnknownErrorMessage
	}
	return msg
}
