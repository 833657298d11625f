package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const QuestionTypeMultipleChoice = "multiple-choice"

type Question struct {
	QuestionText  string   `json:"question_text" bson:"question_text"`
	Type          string   `json:"type" bson:"type"`
	Options       []string `json:"options" bson:"options"`
	CorrectAnswer string   `json:"correct_answer" bson:"correct_answer"`
}

type Quiz struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title       string               `json:"title" bson:"title"`
	Description string               `json:"description,omitempty" bson:"description,omitempty"`
	Course      primitive.ObjectID   `json:"course" bson:"course"`
	Questions   []Question           `json:"questions" bson:"questions"`
	CreatedBy   primitive.ObjectID   `json:"created_by" bson:"created_by"`
	DueDate     time.Time            `json:"due_date,omitempty" bson:"due_date,omitempty"`
	AttemptedBy []primitive.ObjectID `json:"attempted_by" bson:"attempted_by"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
}

// HasAttempt reports whether the student already attempted the quiz.
func (q *Quiz) HasAttempt(student primitive.ObjectID) bool {
	for _, s := range q.AttemptedBy {
		if s == student {
			return true
		}
	}
	return false
}

type Answer struct {
	QuestionIndex int    `json:"question_index" bson:"question_index"`
	Answer        string `json:"answer" bson:"answer"`
}

type QuizSubmission struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Quiz        primitive.ObjectID `json:"quiz" bson:"quiz"`
	Student     primitive.ObjectID `json:"student" bson:"student"`
	Answers     []Answer           `json:"answers" bson:"answers"`
	Score       int                `json:"score" bson:"score"`
	SubmittedAt time.Time          `json:"submitted_at" bson:"submitted_at"`
}
