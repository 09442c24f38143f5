// Package server provides the HTTP REST API for the CV analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/mathieu/cv-analyzer/internal/extraction"
	"github.com/mathieu/cv-analyzer/internal/fetch"
)

// ErrMissingDocument indicates a required upload or form field is absent.
type ErrMissingDocument struct {
	Field string
}

func (e *ErrMissingDocument) Error() string {
	return fmt.Sprintf("missing document: %s", e.Field)
}

// ErrUnsupportedFile indicates an upload with a disallowed extension.
type ErrUnsupportedFile struct {
	Filename string
}

func (e *ErrUnsupportedFile) Error() string {
	return fmt.Sprintf("unsupported file type: %s (allowed: pdf, docx, txt)", e.Filename)
}

// ErrTextTooShort indicates extracted text below the minimum length.
type ErrTextTooShort struct {
	Field  string
	Length int
}

func (e *ErrTextTooShort) Error() string {
	return fmt.Sprintf("%s text too short for analysis: %d characters", e.Field, e.Length)
}

// ErrResultNotFound indicates an unknown or expired result ID.
type ErrResultNotFound struct {
	ID uuid.UUID
}

func (e *ErrResultNotFound) Error() string {
	return fmt.Sprintf("result not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		extractionErr *extraction.Error
		fetchErr      *fetch.Error
	)
	switch {
	case errors.As(err, new(*ErrMissingDocument)),
		errors.As(err, new(*ErrUnsupportedFile)),
		errors.As(err, new(*ErrTextTooShort)):
		return http.StatusBadRequest
	case errors.As(err, new(*ErrResultNotFound)):
		return http.StatusNotFound
	case errors.As(err, &extractionErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
