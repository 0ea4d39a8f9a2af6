package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/laticiniossantana/notabase/internal/service"
	"github.com/laticiniossantana/notabase/internal/store"
)

func readJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service sentinels onto HTTP statuses; anything else
// is treated as a bad request with the service's message.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, store.ErrUnavailable):
		writeError(w, http.StatusInternalServerError, "save failed")
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}
