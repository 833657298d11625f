package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anupks5942/lms-backend/internal/apperr"
)

type GradeTargetKind string

const (
	GradeTargetAssignment GradeTargetKind = "assignment"
	GradeTargetQuiz       GradeTargetKind = "quiz"
)

// GradeTarget is the single graded artifact a Grade points at. A grade
// references exactly one assignment or one quiz, never both and never
// neither; NewGradeTarget is the only way one should be built.
type GradeTarget struct {
	Kind GradeTargetKind    `json:"kind" bson:"kind"`
	ID   primitive.ObjectID `json:"id" bson:"id"`
}

// NewGradeTarget builds a target from the optional assignment and quiz ids of
// a request, rejecting the both-set and neither-set cases.
func NewGradeTarget(assignmentID, quizID primitive.ObjectID) (GradeTarget, error) {
	hasAssignment := assignmentID != primitive.NilObjectID
	hasQuiz := quizID != primitive.NilObjectID
	switch {
	case hasAssignment && hasQuiz:
		return GradeTarget{}, apperr.Validation("A grade must reference an assignment or a quiz, not both")
	case hasAssignment:
		return GradeTarget{Kind: GradeTargetAssignment, ID: assignmentID}, nil
	case hasQuiz:
		return GradeTarget{Kind: GradeTargetQuiz, ID: quizID}, nil
	default:
		return GradeTarget{}, apperr.Validation("Either an assignment or a quiz must be specified")
	}
}

// Validate checks a target read back from the store or built by hand.
func (t GradeTarget) Validate() error {
	if t.Kind != GradeTargetAssignment && t.Kind != GradeTargetQuiz {
		return apperr.Validation("Unknown grade target kind %q", string(t.Kind))
	}
	if t.ID == primitive.NilObjectID {
		return apperr.Validation("Grade target id is required")
	}
	return nil
}

type Grade struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Student   primitive.ObjectID `json:"student" bson:"student"`
	Target    GradeTarget        `json:"target" bson:"target"`
	Score     int                `json:"score" bson:"score"`
	Feedback  string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
	GradedBy  primitive.ObjectID `json:"graded_by,omitempty" bson:"graded_by,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
