package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anupks5942/lms-backend/internal/models"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestAs(role models.UserRole) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/courses", nil)
	user := models.User{ID: primitive.NewObjectID(), Role: role}
	return r.WithContext(WithUser(r.Context(), user))
}

func TestRequireRole_Allowed(t *testing.T) {
	handler := RequireRole(models.RoleTeacher, models.RoleAdmin)(okHandler())

	for _, role := range []models.UserRole{models.RoleTeacher, models.RoleAdmin} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, requestAs(role))
		assert.Equal(t, http.StatusOK, rec.Code, string(role))
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	handler := RequireRole(models.RoleTeacher, models.RoleAdmin)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestAs(models.RoleStudent))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Access denied"}`, rec.Body.String())
}

func TestRequireRole_NoIdentity(t *testing.T) {
	handler := RequireRole(models.RoleAdmin)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserFromContext(t *testing.T) {
	r := requestAs(models.RoleStudent)

	user, ok := UserFrom(r.Context())
	require.True(t, ok)
	assert.Equal(t, models.RoleStudent, user.Role)

	_, ok = UserFrom(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
