package types

import (
	"fmt"
)

// ErrorType represents the type of an error
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeInvalidInput
)

// MessageError represents an error raised while validating or
// transforming messages.
type MessageError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *MessageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.TypeString(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.TypeString(), e.Message)
}

func (e *MessageError) Unwrap() error {
	return e.Err
}

func (e *MessageError) TypeString() string {
	switch e.Type {
	case ErrorTypeInvalidInput:
		return "InvalidInputError"
	default:
		return "UnknownError"
	}
}

// NewMessageError creates a new MessageError
func NewMessageError(errType ErrorType, message string, err error) *MessageError {
	return &MessageError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}
