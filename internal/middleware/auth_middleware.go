package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anupks5942/lms-backend/internal/apperr"
	"github.com/anupks5942/lms-backend/internal/auth"
	"github.com/anupks5942/lms-backend/internal/httpx"
	"github.com/anupks5942/lms-backend/internal/models"
)

type Auth struct {
	users *mongo.Collection
}

func NewAuth(client *mongo.Client, dbName string) *Auth {
	return &Auth{users: client.Database(dbName).Collection("users")}
}

// Authenticate validates the bearer token and resolves the full user record,
// attaching it to the request context. Every request is authenticated
// independently; no session state is kept.
func (a *Auth) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			httpx.Error(w, apperr.Unauthenticated("No token, authorization denied"))
			return
		}

		claims, err := auth.ValidateJWT(token)
		if err != nil {
			httpx.Error(w, apperr.Unauthenticated("Token is not valid"))
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			httpx.Error(w, apperr.Unauthenticated("Token is not valid"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var user models.User
		err = a.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
		if err != nil {
			httpx.Error(w, apperr.Unauthenticated("User not found"))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireRole gates a route on the authenticated user's role.
func RequireRole(roles ...models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFrom(r.Context())
			if !ok {
				httpx.Error(w, apperr.Unauthenticated("No token, authorization denied"))
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			httpx.Error(w, apperr.Forbidden("Access denied"))
		})
	}
}
