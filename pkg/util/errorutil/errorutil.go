package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeLoadFailed       = "LOAD_ERROR"
	CodeNoDataset        = "NO_DATASET_LOADED"
	CodeNotFound         = "NOT_FOUND"
	CodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
	CodeInternal         = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

// NewLoadError reports an upload that could not be turned into a table.
func NewLoadError(detail string, err error) error {
	return &DomainError{
		Code:       CodeLoadFailed,
		Message:    detail,
		HTTPStatus: http.StatusUnprocessableEntity,
		Err:        err,
	}
}

// NewMissingColumn reports a required column absent from the uploaded header.
func NewMissingColumn(column string) error {
	return &DomainError{
		Code:       CodeLoadFailed,
		Message:    fmt.Sprintf("missing expected column: %s", column),
		HTTPStatus: http.StatusUnprocessableEntity,
		Details:    map[string]any{"column": column},
	}
}

// NewNoDataset reports a query issued before any table was loaded.
func NewNoDataset() error {
	return NewDomainError(CodeNoDataset, "no dataset loaded; upload a file first", http.StatusConflict, nil)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewPayloadTooLarge(limit int64) error {
	return NewDomainError(CodePayloadTooLarge, "uploaded file exceeds size limit", http.StatusRequestEntityTooLarge,
		map[string]any{"limit_bytes": limit})
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
