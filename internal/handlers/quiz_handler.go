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
	"github.com/anupks5942/lms-backend/internal/quiz"
	"github.com/anupks5942/lms-backend/internal/validate"
)

type QuizHandler struct {
	client      *mongo.Client
	collection  *mongo.Collection
	courses     *mongo.Collection
	submissions *mongo.Collection
	grades      *mongo.Collection
}

func NewQuizHandler(client *mongo.Client, dbName string) *QuizHandler {
	db := client.Database(dbName)
	return &QuizHandler{
		client:      client,
		collection:  db.Collection("quizzes"),
		courses:     db.Collection("courses"),
		submissions: db.Collection("quiz_submissions"),
		grades:      db.Collection("grades"),
	}
}

type createQuizRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description"`
	Questions   []models.Question `json:"questions"`
	DueDate     time.Time         `json:"due_date"`
}

// CreateQuiz creates a quiz on a course the acting teacher owns. Questions
// are stored verbatim after validation.
func (h *QuizHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	courseID, err := primitive.ObjectIDFromHex(mux.Vars(r)["courseId"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid course ID"))
		return
	}

	var req createQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("Invalid request payload"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.Error(w, err)
		return
	}
	if err := quiz.ValidateQuestions(req.Questions); err != nil {
		httpx.Error(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var course models.Course
	err = h.courses.FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
	if err != nil || !course.IsOwnedBy(user.ID) {
		httpx.Error(w, apperr.NotFound("Course not found or unauthorized"))
		return
	}

	newQuiz := models.Quiz{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Course:      courseID,
		Questions:   req.Questions,
		CreatedBy:   user.ID,
		DueDate:     req.DueDate,
		AttemptedBy: []primitive.ObjectID{},
		CreatedAt:   time.Now(),
	}

	if _, err := h.collection.InsertOne(ctx, newQuiz); err != nil {
		httpx.Error(w, apperr.Internal("Failed to create quiz", err))
		return
	}

	httpx.JSON(w, http.StatusCreated, newQuiz)
}

// quizSummary is the student view of a quiz: questions are stripped and the
// student's submission status is reported instead.
type quizSummary struct {
	ID          primitive.ObjectID `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Course      primitive.ObjectID `json:"course"`
	CreatedBy   primitive.ObjectID `json:"created_by"`
	DueDate     time.Time          `json:"due_date,omitempty"`
	Attempted   bool               `json:"attempted"`
}

// GetQuizzesByCourse lists a course's quizzes. Access follows the lecture
// rule; students get summaries without questions.
func (h *QuizHandler) GetQuizzesByCourse(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	courseID, err := primitive.ObjectIDFromHex(mux.Vars(r)["courseId"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid course ID format"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var course models.Course
	err = h.courses.FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
	if err != nil {
		httpx.Error(w, apperr.NotFound("Course not found"))
		return
	}

	if err := canViewCourseContent(user, &course); err != nil {
		httpx.Error(w, err)
		return
	}

	cursor, err := h.collection.Find(ctx, bson.M{"course": courseID})
	if err != nil {
		httpx.Error(w, apperr.Internal("Error fetching quizzes", err))
		return
	}
	defer cursor.Close(ctx)

	quizzes := []models.Quiz{}
	if err = cursor.All(ctx, &quizzes); err != nil {
		httpx.Error(w, apperr.Internal("Error decoding quizzes", err))
		return
	}

	if user.Role != models.RoleStudent {
		httpx.JSON(w, http.StatusOK, map[string]interface{}{"quizzes": quizzes})
		return
	}

	attempted, err := h.attemptedSet(ctx, quizzes, user.ID)
	if err != nil {
		httpx.Error(w, apperr.Internal("Error fetching quizzes", err))
		return
	}

	summaries := make([]quizSummary, 0, len(quizzes))
	for _, q := range quizzes {
		summaries = append(summaries, quizSummary{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			Course:      q.Course,
			CreatedBy:   q.CreatedBy,
			DueDate:     q.DueDate,
			Attempted:   attempted[q.ID],
		})
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{"quizzes": summaries})
}

// attemptedSet reports which of the given quizzes the student has a
// submission for.
func (h *QuizHandler) attemptedSet(ctx context.Context, quizzes []models.Quiz, student primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	ids := make([]primitive.ObjectID, 0, len(quizzes))
	for _, q := range quizzes {
		ids = append(ids, q.ID)
	}
	attempted := make(map[primitive.ObjectID]bool, len(ids))
	if len(ids) == 0 {
		return attempted, nil
	}

	cursor, err := h.submissions.Find(ctx, bson.M{
		"student": student,
		"quiz":    bson.M{"$in": ids},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var subs []models.QuizSubmission
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	for _, s := range subs {
		attempted[s.Quiz] = true
	}
	return attempted, nil
}

type submitQuizRequest struct {
	Answers []models.Answer `json:"answers"`
}

// SubmitQuiz grades the acting student's answers. The submission and its
// grade are written in one transaction together with the attempt marker, so
// the (quiz, student) pair reaches its terminal state atomically.
func (h *QuizHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	quizID, err := primitive.ObjectIDFromHex(mux.Vars(r)["quizId"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid quiz ID"))
		return
	}

	var req submitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("Invalid request payload"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var q models.Quiz
	err = h.collection.FindOne(ctx, bson.M{"_id": quizID}).Decode(&q)
	if err != nil {
		httpx.Error(w, apperr.NotFound("Quiz not found"))
		return
	}

	var course models.Course
	err = h.courses.FindOne(ctx, bson.M{"_id": q.Course}).Decode(&course)
	if err != nil {
		httpx.Error(w, apperr.NotFound("Course not found"))
		return
	}
	if !course.HasStudent(user.ID) {
		httpx.Error(w, apperr.Forbidden("Not enrolled in this course"))
		return
	}

	if q.HasAttempt(user.ID) {
		httpx.Error(w, apperr.Conflict("Already attempted"))
		return
	}

	score := quiz.Score(q.Questions, req.Answers)
	now := time.Now()

	submission := models.QuizSubmission{
		ID:          primitive.NewObjectID(),
		Quiz:        quizID,
		Student:     user.ID,
		Answers:     req.Answers,
		Score:       score,
		SubmittedAt: now,
	}
	grade := models.Grade{
		ID:        primitive.NewObjectID(),
		Student:   user.ID,
		Target:    models.GradeTarget{Kind: models.GradeTargetQuiz, ID: quizID},
		Score:     score,
		CreatedAt: now,
	}

	session, err := h.client.StartSession()
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to submit quiz", err))
		return
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := h.collection.UpdateOne(sc,
			bson.M{"_id": quizID},
			bson.M{"$addToSet": bson.M{"attempted_by": user.ID}},
		); err != nil {
			return nil, err
		}
		if _, err := h.submissions.InsertOne(sc, submission); err != nil {
			return nil, err
		}
		if _, err := h.grades.InsertOne(sc, grade); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to submit quiz", err))
		return
	}

	httpx.JSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Quiz submitted successfully",
		"score":   score,
	})
}

type submissionView struct {
	ID          primitive.ObjectID `json:"id"`
	Quiz        primitive.ObjectID `json:"quiz"`
	QuizTitle   string             `json:"quiz_title"`
	Score       int                `json:"score"`
	SubmittedAt time.Time          `json:"submitted_at"`
}

// GetSubmissionsByStudent returns a student's quiz submissions with quiz
// titles resolved, for progress tracking.
func (h *QuizHandler) GetSubmissionsByStudent(w http.ResponseWriter, r *http.Request) {
	studentID, err := primitive.ObjectIDFromHex(mux.Vars(r)["studentId"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid student ID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := h.submissions.Find(ctx, bson.M{"student": studentID})
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to fetch submissions", err))
		return
	}
	defer cursor.Close(ctx)

	var subs []models.QuizSubmission
	if err := cursor.All(ctx, &subs); err != nil {
		httpx.Error(w, apperr.Internal("Error decoding submissions", err))
		return
	}

	views := make([]submissionView, 0, len(subs))
	for _, s := range subs {
		view := submissionView{
			ID:          s.ID,
			Quiz:        s.Quiz,
			Score:       s.Score,
			SubmittedAt: s.SubmittedAt,
		}
		var q models.Quiz
		if err := h.collection.FindOne(ctx, bson.M{"_id": s.Quiz}).Decode(&q); err == nil {
			view.QuizTitle = q.Title
		}
		views = append(views, view)
	}

	httpx.JSON(w, http.StatusOK, views)
}
