package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/charts"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/ports"
)

const (
	errCodeSchoolNotFound     = "SCHOOL_NOT_FOUND"
	errCodeIdenticalSelection = "IDENTICAL_SELECTION"
	errCodeEmptyDataset       = "EMPTY_DATASET"
	errCodeNoTrack            = "NO_TRACK"
	errCodeInvalidArgument    = "INVALID_ARGUMENT"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("WARN rest: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeErrorWithCode(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

// writeServiceError maps core errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeErrorWithCode(w, http.StatusNotFound, err.Error(), errCodeSchoolNotFound)
	case errors.Is(err, ports.ErrNoTrack):
		writeErrorWithCode(w, http.StatusNotFound, err.Error(), errCodeNoTrack)
	case errors.Is(err, domain.ErrIdenticalSelection):
		writeErrorWithCode(w, http.StatusUnprocessableEntity, err.Error(), errCodeIdenticalSelection)
	case errors.Is(err, domain.ErrEmptyDataset):
		writeErrorWithCode(w, http.StatusServiceUnavailable, err.Error(), errCodeEmptyDataset)
	case errors.Is(err, domain.ErrUnknownMetric), errors.Is(err, charts.ErrUnknownView), errors.Is(err, domain.ErrInvalidStep):
		writeErrorWithCode(w, http.StatusBadRequest, err.Error(), errCodeInvalidArgument)
	default:
		log.Printf("WARN rest: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
