package handler

import (
	"errors"
	"net/http"

	"github.com/docmind-ai/docmind-be/types"
)

// statusFromError maps pipeline error kinds onto HTTP status codes. Client
// mistakes and missing state come back as 400s; model failures and anything
// unexpected as 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, types.ErrInvalidInput),
		errors.Is(err, types.ErrEmptyInput),
		errors.Is(err, types.ErrNotReady),
		errors.Is(err, types.ErrNoContext),
		errors.Is(err, types.ErrGenerationFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
