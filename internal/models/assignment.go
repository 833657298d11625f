package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Assignment struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title       string               `json:"title" bson:"title"`
	Description string               `json:"description,omitempty" bson:"description,omitempty"`
	Course      primitive.ObjectID   `json:"course" bson:"course"`
	FileURL     string               `json:"file_url,omitempty" bson:"file_url,omitempty"`
	SubmittedBy []primitive.ObjectID `json:"submitted_by" bson:"submitted_by"`
	DueDate     time.Time            `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
}

// HasSubmission reports whether the student already submitted.
func (a *Assignment) HasSubmission(student primitive.ObjectID) bool {
	for _, s := range a.SubmittedBy {
		if s == student {
			return true
		}
	}
	return false
}
