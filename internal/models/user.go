package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// ValidRole reports whether s is one of the three known roles.
func ValidRole(s string) bool {
	switch UserRole(s) {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID                primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name              string               `json:"name" bson:"name"`
	Email             string               `json:"email" bson:"email"`
	Password          string               `json:"-" bson:"password"` // bcrypt hash, never serialized
	Role              UserRole             `json:"role" bson:"role"`
	IsVerified        bool                 `json:"is_verified" bson:"is_verified"`
	VerificationToken string               `json:"-" bson:"verification_token,omitempty"`
	EnrolledCourses   []primitive.ObjectID `json:"enrolled_courses" bson:"enrolled_courses"`
	CreatedAt         time.Time            `json:"created_at" bson:"created_at"`
}
