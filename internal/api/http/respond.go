package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"skygear-backend/internal/domain"
	"skygear-backend/internal/logger"
)

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. Conflict
// outcomes are kept distinct from not-found so callers can tell "doesn't
// exist" from "exists but busy".
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "VALIDATION_ERROR", Error: err.Error()})
	case errors.Is(err, domain.ErrAlreadyReturned):
		writeJSON(w, http.StatusNotFound, errorResponse{Code: "NOT_FOUND_OR_ALREADY_RETURNED", Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Code: "NOT_FOUND", Error: err.Error()})
	case errors.Is(err, domain.ErrRentConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Code: "RENT_CONFLICT", Error: err.Error()})
	case errors.Is(err, domain.ErrStatusConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Code: "STATUS_CONFLICT", Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition):
		writeJSON(w, http.StatusConflict, errorResponse{Code: "INVALID_TRANSITION", Error: err.Error()})
	case errors.Is(err, domain.ErrDuplicateKey):
		writeJSON(w, http.StatusConflict, errorResponse{Code: "DUPLICATE_KEY", Error: err.Error()})
	case errors.Is(err, domain.ErrReferenced):
		writeJSON(w, http.StatusConflict, errorResponse{Code: "CONSTRAINT_VIOLATION", Error: err.Error()})
	default:
		logger.Error("Request failed with store error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Code: "STORE_ERROR", Error: err.Error()})
	}
}

// writeNoChanges reports an empty sparse patch: nothing was written.
func writeNoChanges(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]any{"updated": false, "message": "no changes entered"})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "VALIDATION_ERROR", Error: "invalid JSON body: " + err.Error()})
		return false
	}
	return true
}
