package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/anupks5942/lms-backend/internal/apperr"
)

// JSON writes v as a JSON response body.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Message writes a {"message": ...} body.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// Error renders err through the apperr status mapping.
func Error(w http.ResponseWriter, err error) {
	Message(w, apperr.Status(err), apperr.PublicMessage(err))
}
