package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anupks5942/lms-backend/internal/apperr"
)

func TestMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	Message(rec, http.StatusCreated, "Enrolled successfully")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Enrolled successfully"}`, rec.Body.String())
}

func TestError_MapsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, apperr.Conflict("Already enrolled"))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Already enrolled"}`, rec.Body.String())
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]int{"score": 50})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"score":50}`, rec.Body.String())
}
