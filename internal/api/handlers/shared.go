package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/api/response"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/logger"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/validation"
)

// maxBodyBytes caps JSON and CSV request bodies.
const maxBodyBytes = 1 << 20

// parseJSON decodes the request body into T, rejecting unknown fields.
// An empty body decodes to the zero value.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		return v, fmt.Errorf("failed to decode request body: %w", err)
	}
	return v, nil
}

// respondValidation writes a 400 with the per-field messages as details.
func respondValidation(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
		return
	}
	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
}

// respondInternal logs err on the request logger and writes a 500.
func respondInternal(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.FromContext(r.Context()).Errorw(msg, "error", err, "path", r.URL.Path)
	response.RespondError(w, http.StatusInternalServerError, msg, err.Error())
}
