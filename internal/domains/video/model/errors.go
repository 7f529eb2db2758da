package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeVideoNotFound = "VID001"
	ErrCodeValidation    = "VID002"
	ErrCodeInvalidID     = "VID003"

	// Stored record would break the schema: a store fault, not a bad request
	ErrCodeSchemaViolation = "VID004"
)

// Errors
var (
	ErrVideoNotFound = errors.New("video not found")
	ErrValidation    = errors.New("validation failed")
	ErrInvalidID     = errors.New("invalid video id")
	ErrSchema        = errors.New("video schema violated")
)

// Public messages
const (
	MsgFieldsRequired = "Title, thumbnail, and link are required."
	MsgVideoNotFound  = "Video not found."
	MsgVideoDeleted   = "Video deleted successfully."
)

// VideoError custom error type
type VideoError struct {
	Code    string
	Message string
	Details interface{}
	Err     error
}

func (e *VideoError) Error() string {
	return e.Message
}

func (e *VideoError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewVideoNotFoundError() *VideoError {
	return &VideoError{
		Code:    ErrCodeVideoNotFound,
		Message: MsgVideoNotFound,
		Err:     ErrVideoNotFound,
	}
}

// NewFieldsRequiredError is returned when a create request lacks a field
func NewFieldsRequiredError(details error) *VideoError {
	return &VideoError{
		Code:    ErrCodeValidation,
		Message: MsgFieldsRequired,
		Details: details,
		Err:     ErrValidation,
	}
}

// NewSchemaError is returned when an update would leave a field empty or null
func NewSchemaError(details error) *VideoError {
	return &VideoError{
		Code:    ErrCodeSchemaViolation,
		Message: fmt.Sprintf("Validation failed: %v", details),
		Details: details,
		Err:     ErrSchema,
	}
}

// NewInvalidBodyError is returned when the request body is not the expected JSON
func NewInvalidBodyError(cause error) *VideoError {
	return &VideoError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("Invalid request payload: %v", cause),
		Err:     ErrValidation,
	}
}

// NewInvalidIDError is returned when the store cannot interpret the identifier
func NewInvalidIDError(id, kind string) *VideoError {
	return &VideoError{
		Code:    ErrCodeInvalidID,
		Message: fmt.Sprintf("Cast to %s failed for value %q (type string) at path \"_id\" for model \"Video\"", kind, id),
		Err:     ErrInvalidID,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrVideoNotFound)
}
