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
	"golang.org/x/crypto/bcrypt"

	"github.com/anupks5942/lms-backend/internal/apperr"
	"github.com/anupks5942/lms-backend/internal/auth"
	"github.com/anupks5942/lms-backend/internal/httpx"
	"github.com/anupks5942/lms-backend/internal/models"
	"github.com/anupks5942/lms-backend/internal/utils"
	"github.com/anupks5942/lms-backend/internal/validate"
)

type UserHandler struct {
	collection *mongo.Collection
	mailer     *utils.Mailer
	baseURL    string
}

func NewUserHandler(client *mongo.Client, dbName string, mailer *utils.Mailer, baseURL string) *UserHandler {
	return &UserHandler{
		collection: client.Database(dbName).Collection("users"),
		mailer:     mailer,
		baseURL:    baseURL,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"`
}

// Register handles user registration
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("Invalid request payload"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.Error(w, err)
		return
	}
	if req.Role == "" {
		req.Role = string(models.RoleStudent)
	}
	if !models.ValidRole(req.Role) {
		httpx.Error(w, apperr.Validation("Invalid role"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Check if the email already exists
	var existing models.User
	err := h.collection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		httpx.Error(w, apperr.Conflict("User already exists"))
		return
	} else if err != mongo.ErrNoDocuments {
		httpx.Error(w, apperr.Internal("Failed to check email availability", err))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to hash password", err))
		return
	}

	verificationToken, err := auth.GenerateVerificationToken(req.Email)
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to generate verification token", err))
		return
	}

	newUser := models.User{
		ID:                primitive.NewObjectID(),
		Name:              req.Name,
		Email:             req.Email,
		Password:          string(hashedPassword),
		Role:              models.UserRole(req.Role),
		IsVerified:        false,
		VerificationToken: verificationToken,
		EnrolledCourses:   []primitive.ObjectID{},
		CreatedAt:         time.Now(),
	}

	if _, err := h.collection.InsertOne(ctx, newUser); err != nil {
		httpx.Error(w, apperr.Internal("Failed to create user", err))
		return
	}

	verificationURL := h.baseURL + "/auth/verify/" + verificationToken
	emailBody := `
	<html>
	<body style="font-family: Arial, sans-serif; line-height: 1.6;">
		<h2>Welcome!</h2>
		<p>Thank you for registering. To activate your account, please verify your email address by clicking the button below:</p>
		<p>
			<a href="` + verificationURL + `" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Verify Email</a>
		</p>
		<p>If the button doesn't work, copy and paste this link into your browser:</p>
		<p><a href="` + verificationURL + `">` + verificationURL + `</a></p>
		<p>If you did not register, please ignore this email.</p>
	</body>
	</html>`
	go h.mailer.Send(newUser.Email, "Verify Your Account", emailBody)

	httpx.Message(w, http.StatusCreated, "Please verify your email by clicking the link sent to your inbox.")
}

// VerifyEmail confirms a registration through the emailed token.
func (h *UserHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	email, err := auth.ValidateVerificationToken(token)
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid or expired token"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err = h.collection.FindOne(ctx, bson.M{"email": email, "verification_token": token}).Decode(&user)
	if err != nil {
		httpx.Error(w, apperr.Validation("Invalid or expired token"))
		return
	}

	_, err = h.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{
		"$set":   bson.M{"is_verified": true},
		"$unset": bson.M{"verification_token": ""},
	})
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to update verification status", err))
		return
	}

	httpx.Message(w, http.StatusOK, "Email verified successfully. You can now log in.")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles user login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperr.Validation("Invalid request payload"))
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.Error(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := h.collection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		httpx.Error(w, apperr.Unauthenticated("Invalid credentials"))
		return
	}

	if !user.IsVerified {
		httpx.Error(w, apperr.Forbidden("Please verify your email first"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		httpx.Error(w, apperr.Unauthenticated("Invalid credentials"))
		return
	}

	token, err := auth.GenerateJWT(user.ID.Hex(), string(user.Role))
	if err != nil {
		httpx.Error(w, apperr.Internal("Failed to generate token", err))
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}
