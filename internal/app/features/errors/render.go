// internal/app/features/errors/render.go
package errors

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RenderError writes a JSON error body. An empty msg uses the status text.
func RenderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	w.Header().Set("Cache-Control", "no-store")
	WriteJSON(w, status, errorResponse{Error: msg, Status: status})
}

// RenderNotFound responds 404.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	RenderError(w, r, http.StatusNotFound, msg)
}

// RenderBadRequest responds 400.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	RenderError(w, r, http.StatusBadRequest, msg)
}

// RenderServerError responds 500.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg string) {
	RenderError(w, r, http.StatusInternalServerError, msg)
}

// NotFoundHandler is mounted as the router's NotFound handler.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "")
}
