package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anupks5942/lms-backend/internal/config"
	"github.com/anupks5942/lms-backend/internal/handlers"
	"github.com/anupks5942/lms-backend/internal/middleware"
	"github.com/anupks5942/lms-backend/internal/models"
	"github.com/anupks5942/lms-backend/internal/utils"
)

func SetupRouter(client *mongo.Client, cfg config.Config, mailer *utils.Mailer) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Logging)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	// Uploaded assignment files
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))),
	).Methods("GET")

	authMW := middleware.NewAuth(client, cfg.DatabaseName)
	teacherOnly := middleware.RequireRole(models.RoleTeacher)
	teacherOrAdmin := middleware.RequireRole(models.RoleTeacher, models.RoleAdmin)
	studentOnly := middleware.RequireRole(models.RoleStudent)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	userHandler := handlers.NewUserHandler(client, cfg.DatabaseName, mailer, cfg.BaseURL)
	courseHandler := handlers.NewCourseHandler(client, cfg.DatabaseName)
	assignmentHandler := handlers.NewAssignmentHandler(client, cfg.DatabaseName, cfg.UploadDir)
	quizHandler := handlers.NewQuizHandler(client, cfg.DatabaseName)
	gradeHandler := handlers.NewGradeHandler(client, cfg.DatabaseName)
	adminHandler := handlers.NewAdminHandler(client, cfg.DatabaseName)

	authRouter := router.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", userHandler.Register).Methods("POST")
	authRouter.HandleFunc("/verify/{token}", userHandler.VerifyEmail).Methods("GET")
	authRouter.HandleFunc("/login", userHandler.Login).Methods("POST")

	courses := router.PathPrefix("/courses").Subrouter()
	courses.Use(authMW.Authenticate)
	courses.Handle("", teacherOrAdmin(http.HandlerFunc(courseHandler.CreateCourse))).Methods("POST")
	courses.HandleFunc("", courseHandler.GetCourses).Methods("GET")
	courses.HandleFunc("/filter", courseHandler.FilterCourses).Methods("GET")
	courses.HandleFunc("/student/{id}", courseHandler.GetCoursesByStudent).Methods("GET")
	courses.HandleFunc("/teacher/{id}", courseHandler.GetCoursesByTeacher).Methods("GET")
	courses.HandleFunc("/{id}", courseHandler.GetCourseByID).Methods("GET")
	courses.Handle("/{id}/enroll", studentOnly(http.HandlerFunc(courseHandler.Enroll))).Methods("PUT")
	courses.HandleFunc("/{id}/lectures", courseHandler.GetLectures).Methods("GET")
	courses.Handle("/{id}/lectures", teacherOrAdmin(http.HandlerFunc(courseHandler.AddLecture))).Methods("POST")

	assignments := router.PathPrefix("/assignments").Subrouter()
	assignments.Use(authMW.Authenticate)
	assignments.Handle("/{courseId}", teacherOnly(http.HandlerFunc(assignmentHandler.CreateAssignment))).Methods("POST")
	assignments.Handle("/{id}/submit", studentOnly(http.HandlerFunc(assignmentHandler.SubmitAssignment))).Methods("POST")
	assignments.HandleFunc("/{id}/download", assignmentHandler.DownloadAssignment).Methods("GET")

	quizzes := router.PathPrefix("/quizzes").Subrouter()
	quizzes.Use(authMW.Authenticate)
	quizzes.Handle("/{courseId}", teacherOnly(http.HandlerFunc(quizHandler.CreateQuiz))).Methods("POST")
	quizzes.HandleFunc("/course/{courseId}", quizHandler.GetQuizzesByCourse).Methods("GET")
	quizzes.Handle("/{quizId}/submit", studentOnly(http.HandlerFunc(quizHandler.SubmitQuiz))).Methods("POST")
	quizzes.HandleFunc("/student/{studentId}", quizHandler.GetSubmissionsByStudent).Methods("GET")

	grades := router.PathPrefix("/grades").Subrouter()
	grades.Use(authMW.Authenticate)
	grades.Handle("", teacherOnly(http.HandlerFunc(gradeHandler.AddGrade))).Methods("POST")
	grades.HandleFunc("/student/{id}", gradeHandler.GetGradesByStudent).Methods("GET")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(authMW.Authenticate, adminOnly)
	admin.HandleFunc("/users", adminHandler.GetUsers).Methods("GET")
	admin.HandleFunc("/users/{id}", adminHandler.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/users/{id}", adminHandler.UpdateUserRole).Methods("PUT")
	admin.HandleFunc("/courses/{id}", adminHandler.DeleteCourse).Methods("DELETE")

	return router
}
