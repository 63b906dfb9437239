// Package server provides the HTTP REST API for the career roadmap generator.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/AlenSaijo/career-roadmap-generator/internal/fetch"
	"github.com/AlenSaijo/career-roadmap-generator/internal/ingestion"
)

// ErrValidation indicates request validation failure. All input
// validation happens at this boundary; the analysis pipeline itself
// never raises domain errors.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		validationErr  *ErrValidation
		unsupportedErr *ingestion.ErrUnsupportedFormat
		fetchErr       *fetch.Error
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &unsupportedErr):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
