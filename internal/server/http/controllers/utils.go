package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alkapone312/shared-checklist/internal/room"
	checklistsvc "github.com/alkapone312/shared-checklist/internal/services/checklist"
)

// Helper functions for common HTTP responses

// writeData writes a success envelope with the given payload.
func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(envelope{OK: true, Data: data})
}

// writeError writes a failure envelope with the given status and message.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{OK: false, Error: message})
}

// writeServiceError maps service errors onto the protocol status codes.
// Internal failures never leak detail to the caller.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checklistsvc.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, room.ErrForbidden):
		writeError(w, http.StatusForbidden, "Invalid token")
	case errors.Is(err, room.ErrNotFound):
		writeError(w, http.StatusNotFound, "Room not found")
	default:
		writeError(w, http.StatusInternalServerError, "Internal error")
	}
}

// parseSince parses the since cursor; absent or malformed values mean
// "from the beginning".
func parseSince(s string) uint64 {
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseUint(s, 10, 64); err == nil {
		return v
	}
	return 0
}
