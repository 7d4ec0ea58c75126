package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

var (
	ErrUnknownFormat = NewDomainError("unknown document format")
	ErrRateLimited   = NewDomainError("too many report requests")
)

// InvalidFilterError is returned when a FilterSpec carries values the engine
// refuses to clamp
type InvalidFilterError struct {
	Field string
	Value interface{}
}

func NewInvalidFilterError(field string, value interface{}) *InvalidFilterError {
	return &InvalidFilterError{Field: field, Value: value}
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter %s=%v: must be a positive integer", e.Field, e.Value)
}
