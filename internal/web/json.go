package web

import (
	"encoding/json"
	"net/http"

	"github.com/jmwatt/go-mood-playlist/internal/apperr"
)

// errorResponse is the JSON shape of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status code and writes the JSON error shape.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperr.Status(err), errorResponse{Error: err.Error()})
}

// decodeJSON decodes the request body into v, converting failures into
// input errors.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Input("invalid request body")
	}
	return nil
}
