package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Unauthenticated("no token"), http.StatusUnauthorized},
		{Forbidden("nope"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusConflict},
		{Internal("boom", errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, Status(tt.err), tt.err.Error())
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "Already enrolled", PublicMessage(Conflict("Already enrolled")))
	assert.Equal(t, "boom: db down", PublicMessage(Internal("boom", errors.New("db down"))))
	assert.Equal(t, "plain", PublicMessage(errors.New("plain")))
}

func TestValidationFormatting(t *testing.T) {
	err := Validation("Question %d: a correct answer is required", 2)
	assert.Equal(t, "Question 2: a correct answer is required", err.Error())
}
