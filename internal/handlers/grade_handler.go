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
	"github.com/anupks5942/lms-backend/internal/middleware"
	"github.com/anupks5942/lms-backend/internal/models"
)

type GradeHandler struct {
	collection  *mongo.Collection
	assignments *mongo.Collection
	quizzes     *mongo.Collection
	courses     *mongo.Collection
	users       *mongo.Collection
}

func NewGradeHandler(client *mongo.Client, dbName string) *GradeHandler {
	db := client.Database(dbName)
	return &GradeHandler{
		collection:  db.Collection("grades"),
		assignments: db.Collection("assignments"),
		quizzes:     db.Collection("quizzes"),
		courses:     db.Collection("courses"),
		users:       db.Collection("users"),
	}
}

type addGradeRequest struct {
	Student    string `json:"student"`
	Assignment string `json:"assignment"`
	Quiz       string `json:"quiz"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
}

func parseOptionalID(hex string, label string) (primitive.ObjectID, error) {
	if hex == "" {
		return primitive.NilObjectID, nil
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("Invalid %s ID", label)
	}
	return id, nil
}

// AddGrade records a manual grade. The acting teacher must own the course the
// graded assignment or quiz belongs to.
func (h *GradeHandler) AddGrade(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var req addGradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("Invalid request payload"))
		return
	}

	studentID, err := primitive.ObjectIDFromHex(req.Student)
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid student ID"))
		return
	}
	assignmentID, err := parseOptionalID(req.Assignment, "assignment")
	if err != nil {
		httpx.Error(w, err)
		return
	}
	quizID, err := parseOptionalID(req.Quiz, "quiz")
	if err != nil {
		httpx.Error(w, err)
		return
	}

	target, err := models.NewGradeTarget(assignmentID, quizID)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	courseID, err := h.targetCourse(ctx, target)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	var course models.Course
	err = h.courses.FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
	if err != nil || !course.IsOwnedBy(user.ID) {
		httpx.Error(w, targetNotFound(target.Kind))
		return
	}

	grade := models.Grade{
		ID:        primitive.NewObjectID(),
		Student:   studentID,
		Target:    target,
		Score:     req.Score,
		Feedback:  req.Feedback,
		GradedBy:  user.ID,
		CreatedAt: time.Now(),
	}

	if _, err := h.collection.InsertOne(ctx, grade); err != nil {
		httpx.Error(w, apperr.Internal("Failed to save grade", err))
		return
	}

	httpx.JSON(w, http.StatusCreated, grade)
}

// targetNotFound hides whether the graded artifact exists from teachers who
// don't own its course.
func targetNotFound(kind models.GradeTargetKind) error {
	if kind == models.GradeTargetQuiz {
		return apperr.NotFound("Quiz not found or unauthorized")
	}
	return apperr.NotFound("Assignment not found or unauthorized")
}

// targetCourse resolves the course a grade target belongs to.
func (h *GradeHandler) targetCourse(ctx context.Context, target models.GradeTarget) (primitive.ObjectID, error) {
	switch target.Kind {
	case models.GradeTargetAssignment:
		var assignment models.Assignment
		if err := h.assignments.FindOne(ctx, bson.M{"_id": target.ID}).Decode(&assignment); err != nil {
			return primitive.NilObjectID, targetNotFound(target.Kind)
		}
		return assignment.Course, nil
	case models.GradeTargetQuiz:
		var q models.Quiz
		if err := h.quizzes.FindOne(ctx, bson.M{"_id": target.ID}).Decode(&q); err != nil {
			return primitive.NilObjectID, targetNotFound(target.Kind)
		}
		return q.Course, nil
	default:
		return primitive.NilObjectID, apperr.Validation("Unknown grade target kind %q", string(target.Kind))
	}
}

type gradeView struct {
	ID          primitive.ObjectID `json:"id"`
	Student     primitive.ObjectID `json:"student"`
	Target      models.GradeTarget `json:"target"`
	TargetTitle string             `json:"target_title,omitempty"`
	Score       int                `json:"score"`
	Feedback    string             `json:"feedback,omitempty"`
	GradedBy    string             `json:"graded_by,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// GetGradesByStudent returns a student's grades with target titles and grader
// names resolved.
func (h *GradeHandler) GetGradesByStudent(w http.ResponseWriter, r *http.Request) {
	studentID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid student ID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, bson.M{"student": studentID})
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to fetch grades", err))
		return
	}
	defer cursor.Close(ctx)

	var grades []models.Grade
	if err := cursor.All(ctx, &grades); err != nil {
		httpx.Error(w, apperr.Internal("Error decoding grades", err))
		return
	}

	views := make([]gradeView, 0, len(grades))
	for _, g := range grades {
		view := gradeView{
			ID:        g.ID,
			Student:   g.Student,
			Target:    g.Target,
			Score:     g.Score,
			Feedback:  g.Feedback,
			CreatedAt: g.CreatedAt,
		}
		switch g.Target.Kind {
		case models.GradeTargetAssignment:
			var assignment models.Assignment
			if err := h.assignments.FindOne(ctx, bson.M{"_id": g.Target.ID}).Decode(&assignment); err == nil {
				view.TargetTitle = assignment.Title
			}
		case models.GradeTargetQuiz:
			var q models.Quiz
			if err := h.quizzes.FindOne(ctx, bson.M{"_id": g.Target.ID}).Decode(&q); err == nil {
				view.TargetTitle = q.Title
			}
		}
		if g.GradedBy != primitive.NilObjectID {
			var grader models.User
			if err := h.users.FindOne(ctx, bson.M{"_id": g.GradedBy}).Decode(&grader); err == nil {
				view.GradedBy = grader.Name
			}
		}
		views = append(views, view)
	}

	httpx.JSON(w, http.StatusOK, views)
}
