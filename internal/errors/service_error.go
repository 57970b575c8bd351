package errors

import (
	"fmt"
	"net/http"
)

// Reason is a stable machine-readable failure code returned to clients.
type Reason string

const (
	ReasonMissingField   Reason = "missing_field"
	ReasonInvalidSlot    Reason = "invalid_slot"
	ReasonInvalidRequest Reason = "invalid_request"
	ReasonNotFound       Reason = "not_found"
	ReasonAlreadyExists  Reason = "already_exists"
	ReasonSpotTaken      Reason = "spot_taken"
	ReasonUnauthorized   Reason = "unauthorized"
	ReasonStoreFailure   Reason = "store_failure"
)

// ServiceError carries a reason code across the service boundary so handlers
// can map it to an HTTP status without inspecting message text.
type ServiceError struct {
	Reason  Reason
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.Err }

func MissingField(field string) *ServiceError {
	return &ServiceError{Reason: ReasonMissingField, Message: "missing required field: " + field}
}

func InvalidSlot(name string) *ServiceError {
	return &ServiceError{Reason: ReasonInvalidSlot, Message: fmt.Sprintf("invalid time slot %q", name)}
}

func InvalidRequest(msg string) *ServiceError {
	return &ServiceError{Reason: ReasonInvalidRequest, Message: msg}
}

func NotFound(msg string) *ServiceError {
	return &ServiceError{Reason: ReasonNotFound, Message: msg}
}

func AlreadyExists(msg string) *ServiceError {
	return &ServiceError{Reason: ReasonAlreadyExists, Message: msg}
}

func SpotTaken(spotID string) *ServiceError {
	return &ServiceError{Reason: ReasonSpotTaken, Message: fmt.Sprintf("spot %s is already reserved for this slot", spotID)}
}

func Unauthorized(msg string) *ServiceError {
	return &ServiceError{Reason: ReasonUnauthorized, Message: msg}
}

// StoreFailure wraps a persistence error. The underlying error is kept for
// logging but never leaks into the client-facing message.
func StoreFailure(err error) *ServiceError {
	return &ServiceError{Reason: ReasonStoreFailure, Message: "internal storage error", Err: err}
}

// ReasonOf extracts the reason code, defaulting to store_failure for
// unclassified errors.
func ReasonOf(err error) Reason {
	if se, ok := err.(*ServiceError); ok {
		return se.Reason
	}
	return ReasonStoreFailure
}

// HTTPStatus maps a service error to the status code handlers should write.
func HTTPStatus(err error) int {
	switch ReasonOf(err) {
	case ReasonMissingField, ReasonInvalidSlot, ReasonInvalidRequest:
		return http.StatusBadRequest
	case ReasonNotFound:
		return http.StatusNotFound
	case ReasonSpotTaken, ReasonAlreadyExists:
		return http.StatusConflict
	case ReasonUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
