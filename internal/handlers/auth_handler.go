package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"dsatrack/internal/models"
	"dsatrack/internal/repositories"
	"dsatrack/internal/utils"
)

// UserRepo is the storage surface the auth endpoints need.
type UserRepo interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthHandler manages signup and login.
type AuthHandler struct {
	repo      UserRepo
	jwtSecret string
}

func NewAuthHandler(repo UserRepo, jwtSecret string) *AuthHandler {
	return &AuthHandler{repo: repo, jwtSecret: jwtSecret}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing_fields", "Name, email and password are required")
		return
	}
	if !utils.IsPasswordValid(req.Password) {
		utils.JSONError(w, http.StatusBadRequest, "weak_password", "Password must be at least 8 characters with a special character")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to hash password")
		return
	}

	user := &models.User{Name: req.Name, Email: req.Email, PasswordHash: string(hash)}
	created, err := h.repo.Create(r.Context(), user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			utils.JSONError(w, http.StatusConflict, "email_taken", "Email already registered")
			return
		}
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to create account")
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]any{
		"message": "Account created successfully!",
		"user":    created,
	})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.JSONError(w, http.StatusBadRequest, "missing_fields", "Email and password are required")
		return
	}

	user, err := h.repo.GetByEmail(r.Context(), req.Email)
	if err != nil {
		// same response for unknown email and bad password
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSONError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
		return
	}

	token, err := utils.IssueToken(user.ID, user.Name, user.Email, h.jwtSecret)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to sign token")
		return
	}

	utils.JSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}
