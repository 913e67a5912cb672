package server

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes a JSON response body.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError writes a JSON error body.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondRenderFailure writes the plain-text body image consumers get
// when composition fails; never partial PNG bytes.
func respondRenderFailure(w http.ResponseWriter) {
	http.Error(w, "Failed to generate the image", http.StatusInternalServerError)
}
