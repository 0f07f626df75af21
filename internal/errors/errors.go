package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrJobNotFound is returned when a job posting is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotJobOwner is returned when the caller does not own the job.
	ErrNotJobOwner = errors.New("you can only manage your own jobs")
	// ErrJobAlreadySaved is returned when a job is already bookmarked.
	ErrJobAlreadySaved = errors.New("job already saved")
	// ErrJobNotSaved is returned when a bookmark to remove does not exist.
	ErrJobNotSaved = errors.New("job not bookmarked")
	// ErrDuplicateApplication is returned when a seeker re-applies to a job.
	ErrDuplicateApplication = errors.New("you have already applied to this job")
	// ErrInvalidStatus is returned when an application status is unrecognized.
	ErrInvalidStatus = errors.New("invalid application status")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrJobNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "JOB_NOT_FOUND")
	case errors.Is(err, ErrApplicationNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "APPLICATION_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNotJobOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_JOB_OWNER")
	case errors.Is(err, ErrJobAlreadySaved):
		return NewHTTPError(http.StatusConflict, err.Error(), "JOB_ALREADY_SAVED")
	case errors.Is(err, ErrJobNotSaved):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "JOB_NOT_SAVED")
	case errors.Is(err, ErrDuplicateApplication):
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_APPLICATION")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
