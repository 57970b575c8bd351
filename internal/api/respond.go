package api

import (
	"encoding/json"
	"log"
	"net/http"

	apperrors "parkgate/internal/errors"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// respondError maps a service error to its HTTP status and a stable reason
// code. Store failures are logged server-side and surfaced opaquely.
func respondError(w http.ResponseWriter, err error) {
	reason := apperrors.ReasonOf(err)
	status := apperrors.HTTPStatus(err)

	message := err.Error()
	if reason == apperrors.ReasonStoreFailure {
		log.Printf("Internal error: %v", err)
		message = "internal server error"
	}

	respondJSON(w, status, map[string]string{
		"error":  message,
		"reason": string(reason),
	})
}
