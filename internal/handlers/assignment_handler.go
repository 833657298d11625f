package handlers

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anupks5942/lms-backend/internal/apperr"
	"github.com/anupks5942/lms-backend/internal/httpx"
	"github.com/anupks5942/lms-backend/internal/middleware"
	"github.com/anupks5942/lms-backend/internal/models"
)

const maxUploadSize = 32 << 20

type AssignmentHandler struct {
	collection *mongo.Collection
	courses    *mongo.Collection
	uploadDir  string
}

func NewAssignmentHandler(client *mongo.Client, dbName string, uploadDir string) *AssignmentHandler {
	return &AssignmentHandler{
		collection: client.Database(dbName).Collection("assignments"),
		courses:    client.Database(dbName).Collection("courses"),
		uploadDir:  uploadDir,
	}
}

// saveUpload stores the optional multipart file and returns its public URL,
// or "" when no file was attached.
func (h *AssignmentHandler) saveUpload(r *http.Request) (string, error) {
	file, header, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", apperr.Validation("Invalid file upload")
	}
	defer file.Close()

	name := uuid.New().String() + "-" + filepath.Base(header.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return "", apperr.Internal("Failed to store file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", apperr.Internal("Failed to store file", err)
	}
	return "/uploads/" + name, nil
}

// parseDueDate accepts a full RFC3339 timestamp or a plain date from form
// input. An empty value means no due date.
func parseDueDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperr.Validation("Invalid due date")
}

// CreateAssignment creates an assignment on a course the acting teacher owns.
// The title must be unique within the course.
func (h *AssignmentHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	courseID, err := primitive.ObjectIDFromHex(mux.Vars(r)["courseId"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid course ID"))
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		httpx.Error(w, apperr.Validation("Invalid request payload"))
		return
	}
	title := r.FormValue("title")
	if title == "" {
		httpx.Error(w, apperr.Validation("Title is required"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var course models.Course
	err = h.courses.FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
	if err != nil || !course.IsOwnedBy(user.ID) {
		// Existence is not confirmed to teachers who don't own the course.
		httpx.Error(w, apperr.NotFound("Course not found or unauthorized"))
		return
	}

	var existing models.Assignment
	err = h.collection.FindOne(ctx, bson.M{"title": title, "course": courseID}).Decode(&existing)
	if err == nil {
		httpx.Error(w, apperr.Conflict("Assignment with this title already exists for this course"))
		return
	} else if err != mongo.ErrNoDocuments {
		httpx.Error(w, apperr.Internal("Failed to check assignment title", err))
		return
	}

	fileURL, err := h.saveUpload(r)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	dueDate, err := parseDueDate(r.FormValue("due_date"))
	if err != nil {
		httpx.Error(w, err)
		return
	}

	assignment := models.Assignment{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: r.FormValue("description"),
		Course:      courseID,
		FileURL:     fileURL,
		SubmittedBy: []primitive.ObjectID{},
		DueDate:     dueDate,
		CreatedAt:   time.Now(),
	}

	if _, err := h.collection.InsertOne(ctx, assignment); err != nil {
		httpx.Error(w, apperr.Internal("Failed to create assignment", err))
		return
	}

	httpx.JSON(w, http.StatusCreated, assignment)
}

// SubmitAssignment marks the acting student as having submitted. A student
// can submit at most once per assignment.
func (h *AssignmentHandler) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	assignmentID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid assignment ID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var assignment models.Assignment
	err = h.collection.FindOne(ctx, bson.M{"_id": assignmentID}).Decode(&assignment)
	if err != nil {
		httpx.Error(w, apperr.NotFound("Assignment not found"))
		return
	}

	if assignment.HasSubmission(user.ID) {
		httpx.Error(w, apperr.Conflict("Already submitted"))
		return
	}

	_, err = h.collection.UpdateOne(ctx,
		bson.M{"_id": assignmentID},
		bson.M{"$addToSet": bson.M{"submitted_by": user.ID}},
	)
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to submit assignment", err))
		return
	}

	httpx.Message(w, http.StatusOK, "Assignment submitted")
}

// DownloadAssignment serves the stored assignment file.
func (h *AssignmentHandler) DownloadAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid assignment ID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var assignment models.Assignment
	err = h.collection.FindOne(ctx, bson.M{"_id": assignmentID}).Decode(&assignment)
	if err != nil || assignment.FileURL == "" {
		httpx.Error(w, apperr.NotFound("File not found"))
		return
	}

	name := strings.TrimPrefix(assignment.FileURL, "/uploads/")
	path := filepath.Join(h.uploadDir, filepath.Base(name))
	if _, err := os.Stat(path); err != nil {
		httpx.Error(w, apperr.NotFound("File not found"))
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=\""+filepath.Base(name)+"\"")
	http.ServeFile(w, r, path)
}
