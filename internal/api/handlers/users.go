package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"time"

	"github.com/bloggydev/bloggy/internal/domain"
	"github.com/bloggydev/bloggy/internal/logging"
	"github.com/bloggydev/bloggy/internal/service"
	"github.com/bloggydev/bloggy/internal/token"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type RegisterRequest struct {
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	UserRoleID  uint   `json:"userRoleId"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// validate enforces the registration input contract. Business rules
// (uniqueness, role existence) belong to the service.
func (req *RegisterRequest) validate() (time.Time, string) {
	if len(req.UserName) < 2 || len(req.UserName) > 64 {
		return time.Time{}, "userName must be between 2 and 64 characters"
	}
	if !validEmail(req.Email) {
		return time.Time{}, "email must be a well-formed address"
	}
	if len(req.Password) < 8 || len(req.Password) > 256 {
		return time.Time{}, "password must be between 8 and 256 characters"
	}
	if len(req.FirstName) < 1 || len(req.FirstName) > 100 {
		return time.Time{}, "firstName must be between 1 and 100 characters"
	}
	if len(req.LastName) < 1 || len(req.LastName) > 100 {
		return time.Time{}, "lastName must be between 1 and 100 characters"
	}
	if req.UserRoleID == 0 {
		return time.Time{}, "userRoleId is required"
	}
	dob, err := time.Parse(token.DateOfBirthFormat, req.DateOfBirth)
	if err != nil {
		return time.Time{}, "dateOfBirth must be a date in YYYY-MM-DD form"
	}
	return dob, ""
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dob, msg := req.validate()
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.users.Register(r.Context(), service.RegisterInput{
		UserName:    req.UserName,
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		UserRoleID:  req.UserRoleID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyRegistered):
			respondError(w, http.StatusConflict, "username or email is unavailable")
		case errors.Is(err, domain.ErrRoleNotFound):
			respondError(w, http.StatusNotFound, "user role not found")
		default:
			logging.FromContext(r.Context()).Error("registration failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !validEmail(req.Email) || len(req.Password) < 8 {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	signed, err := h.users.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "credentials were invalid")
			return
		}
		logging.FromContext(r.Context()).Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{Token: signed})
}
