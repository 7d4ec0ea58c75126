package apperror

import (
	"errors"
	"net/http"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render"
)

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *AppError) Error() string {
	return e.Message
}

const (
	CodeInvalidFilter     = "INVALID_FILTER"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeRateLimited       = "RATE_LIMITED"
	CodeRenderOverflow    = "RENDER_OVERFLOW"
	CodeNotFound          = "NOT_FOUND"
	CodeInternal          = "INTERNAL_ERROR"
)

func NewBadRequest(code, message string) *AppError {
	return &AppError{Code: code, Message: message, Status: http.StatusBadRequest}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, Status: http.StatusNotFound}
}

func NewTooManyRequests(message string) *AppError {
	return &AppError{Code: CodeRateLimited, Message: message, Status: http.StatusTooManyRequests}
}

func NewInternalServer(code, message string) *AppError {
	return &AppError{Code: code, Message: message, Status: http.StatusInternalServerError}
}

// MapError translates engine and collaborator errors into API errors
func MapError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var invalid *domain.InvalidFilterError
	if errors.As(err, &invalid) {
		return NewBadRequest(CodeInvalidFilter, invalid.Error())
	}

	var overflow *render.RenderOverflowError
	if errors.As(err, &overflow) {
		return NewInternalServer(CodeRenderOverflow, overflow.Error())
	}

	switch {
	case errors.Is(err, domain.ErrUnknownFormat):
		return NewBadRequest(CodeUnsupportedFormat, err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		return NewTooManyRequests("Too many report requests. Please try again later.")
	default:
		return NewInternalServer(CodeInternal, "An unexpected error occurred")
	}
}
