package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anupks5942/lms-backend/internal/apperr"
	"github.com/anupks5942/lms-backend/internal/httpx"
	"github.com/anupks5942/lms-backend/internal/models"
)

// AdminHandler serves the admin-only user and course management surface.
// Role gating happens in middleware.
type AdminHandler struct {
	users   *mongo.Collection
	courses *mongo.Collection
}

func NewAdminHandler(client *mongo.Client, dbName string) *AdminHandler {
	db := client.Database(dbName)
	return &AdminHandler{
		users:   db.Collection("users"),
		courses: db.Collection("courses"),
	}
}

// GetUsers retrieves all users. Password hashes are never serialized.
func (h *AdminHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := h.users.Find(ctx, bson.M{})
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to fetch users", err))
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		httpx.Error(w, apperr.Internal("Error decoding users", err))
		return
	}

	httpx.JSON(w, http.StatusOK, users)
}

// DeleteUser removes a user record.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid user ID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := h.users.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to delete user", err))
		return
	}
	if result.DeletedCount == 0 {
		httpx.Error(w, apperr.NotFound("User not found"))
		return
	}

	httpx.Message(w, http.StatusOK, "User deleted")
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// UpdateUserRole changes a user's role.
func (h *AdminHandler) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid user ID"))
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("Invalid request payload"))
		return
	}
	if !models.ValidRole(req.Role) {
		httpx.Error(w, apperr.Validation("Invalid role"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err = h.users.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"role": req.Role}},
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpx.Error(w, apperr.NotFound("User not found"))
		} else {
			httpx.Error(w, apperr.Internal("Failed to update user role", err))
		}
		return
	}
	user.Role = models.UserRole(req.Role)

	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "User role updated",
		"user":    user,
	})
}

// DeleteCourse removes a course.
func (h *AdminHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid course ID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := h.courses.DeleteOne(ctx, bson.M{"_id": courseID})
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to delete course", err))
		return
	}
	if result.DeletedCount == 0 {
		httpx.Error(w, apperr.NotFound("Course not found"))
		return
	}

	httpx.Message(w, http.StatusOK, "Course deleted")
}
