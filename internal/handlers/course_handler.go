package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anupks5942/lms-backend/internal/apperr"
	"github.com/anupks5942/lms-backend/internal/httpx"
	"github.com/anupks5942/lms-backend/internal/middleware"
	"github.com/anupks5942/lms-backend/internal/models"
	"github.com/anupks5942/lms-backend/internal/validate"
)

type CourseHandler struct {
	client     *mongo.Client
	collection *mongo.Collection
	users      *mongo.Collection
}

func NewCourseHandler(client *mongo.Client, dbName string) *CourseHandler {
	return &CourseHandler{
		client:     client,
		collection: client.Database(dbName).Collection("courses"),
		users:      client.Database(dbName).Collection("users"),
	}
}

type createCourseRequest struct {
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Lectures    []models.Lecture `json:"lectures"`
}

func validateLecture(l models.Lecture) error {
	if l.Title == "" {
		return apperr.Validation("Lecture title is required")
	}
	if !validate.LectureLink(l.YoutubeLink) {
		return apperr.Validation("Invalid YouTube URL")
	}
	return nil
}

// CreateCourse handles creating a new course. Role gating (teacher or admin)
// happens in middleware; the acting user becomes the owning teacher.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	var req createCourseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("Invalid request payload"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.Error(w, err)
		return
	}
	if req.Category == "" {
		req.Category = string(models.CategoryOther)
	}
	if !models.ValidCategory(req.Category) {
		httpx.Error(w, apperr.Validation("Invalid category"))
		return
	}
	for _, lecture := range req.Lectures {
		if err := validateLecture(lecture); err != nil {
			httpx.Error(w, err)
			return
		}
	}

	newCourse := models.Course{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Category:    models.CourseCategory(req.Category),
		Teacher:     user.ID,
		Students:    []primitive.ObjectID{},
		Lectures:    req.Lectures,
		CreatedAt:   time.Now(),
	}
	if newCourse.Lectures == nil {
		newCourse.Lectures = []models.Lecture{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := h.collection.InsertOne(ctx, newCourse); err != nil {
		httpx.Error(w, apperr.Internal("Failed to create course", err))
		return
	}

	httpx.JSON(w, http.StatusCreated, newCourse)
}

// GetCourses retrieves all courses
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, bson.M{})
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to fetch courses", err))
		return
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err = cursor.All(ctx, &courses); err != nil {
		httpx.Error(w, apperr.Internal("Error decoding courses", err))
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

// FilterCourses retrieves courses matching an optional category and an
// optional case-insensitive text query. The text query matches title or
// description; both filters combine with AND.
func (h *CourseHandler) FilterCourses(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("query")

	filter := bson.M{}
	if category != "" {
		if !models.ValidCategory(category) {
			httpx.Error(w, apperr.Validation("Invalid category"))
			return
		}
		filter["category"] = category
	}
	if query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, filter)
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to fetch courses", err))
		return
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err = cursor.All(ctx, &courses); err != nil {
		httpx.Error(w, apperr.Internal("Error decoding courses", err))
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

// GetCourseByID returns one course, reporting whether the requesting student
// is enrolled.
func (h *CourseHandler) GetCourseByID(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	courseID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid course ID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var course models.Course
	err = h.collection.FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
	if err != nil {
		httpx.Error(w, apperr.NotFound("Course not found"))
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"course":      course,
		"is_enrolled": course.HasStudent(user.ID),
	})
}

// GetCoursesByStudent lists the courses a student is enrolled in.
func (h *CourseHandler) GetCoursesByStudent(w http.ResponseWriter, r *http.Request) {
	studentID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid student ID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, bson.M{"students": studentID})
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to fetch courses", err))
		return
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err = cursor.All(ctx, &courses); err != nil {
		httpx.Error(w, apperr.Internal("Error decoding courses", err))
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

// GetCoursesByTeacher lists the courses a teacher owns.
func (h *CourseHandler) GetCoursesByTeacher(w http.ResponseWriter, r *http.Request) {
	teacherID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid teacher ID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := h.collection.Find(ctx, bson.M{"teacher": teacherID})
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to fetch courses", err))
		return
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err = cursor.All(ctx, &courses); err != nil {
		httpx.Error(w, apperr.Internal("Error decoding courses", err))
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

// Enroll adds the acting student to a course and mirrors the course into
// the student's enrolled-course list. Both writes happen inside one
// transaction so a partial enrollment can never be observed.
func (h *CourseHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	courseID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid course ID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var course models.Course
	err = h.collection.FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			httpx.Error(w, apperr.NotFound("Course not found"))
		} else {
			httpx.Error(w, apperr.Internal("Failed to check course existence", err))
		}
		return
	}

	if course.HasStudent(user.ID) {
		httpx.Error(w, apperr.Conflict("Already enrolled"))
		return
	}

	session, err := h.client.StartSession()
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to enroll in course", err))
		return
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := h.collection.UpdateOne(sc,
			bson.M{"_id": courseID},
			bson.M{"$addToSet": bson.M{"students": user.ID}},
		); err != nil {
			return nil, err
		}
		if _, err := h.users.UpdateOne(sc,
			bson.M{"_id": user.ID},
			bson.M{"$addToSet": bson.M{"enrolled_courses": courseID}},
		); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to enroll in course", err))
		return
	}

	httpx.Message(w, http.StatusOK, "Enrolled successfully")
}

// canViewCourseContent applies the shared access rule for lectures and
// quizzes: students must be enrolled, teachers must own the course, admins
// always pass.
func canViewCourseContent(user models.User, course *models.Course) error {
	switch user.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleTeacher:
		if !course.IsOwnedBy(user.ID) {
			return apperr.Forbidden("Access denied")
		}
	case models.RoleStudent:
		if !course.HasStudent(user.ID) {
			return apperr.Forbidden("Not enrolled in this course")
		}
	default:
		return apperr.Forbidden("Access denied")
	}
	return nil
}

// GetLectures lists a course's lectures.
func (h *CourseHandler) GetLectures(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	courseID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid course ID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var course models.Course
	err = h.collection.FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
	if err != nil {
		httpx.Error(w, apperr.NotFound("Course not found"))
		return
	}

	if err := canViewCourseContent(user, &course); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{"lectures": course.Lectures})
}

// AddLecture appends a lecture to a course. Only the owning teacher or an
// admin may add.
func (h *CourseHandler) AddLecture(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r.Context())

	courseID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid course ID"))
		return
	}

	var lecture models.Lecture
	if err := json.NewDecoder(r.Body).Decode(&lecture); err != nil {
		httpx.Error(w, apperr.Validation("Invalid request payload"))
		return
	}
	if err := validateLecture(lecture); err != nil {
		httpx.Error(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var course models.Course
	err = h.collection.FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
	if err != nil {
		httpx.Error(w, apperr.NotFound("Course not found"))
		return
	}

	if user.Role != models.RoleAdmin && !course.IsOwnedBy(user.ID) {
		httpx.Error(w, apperr.Forbidden("Access denied"))
		return
	}

	_, err = h.collection.UpdateOne(ctx,
		bson.M{"_id": courseID},
		bson.M{"$push": bson.M{"lectures": lecture}},
	)
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to add lecture", err))
		return
	}

	httpx.JSON(w, http.StatusCreated, lecture)
}
