package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"bookstore/internal/usecase"
)

type UserHandler struct {
	users *usecase.UserService
}

func NewUserHandler(users *usecase.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type registerReq struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,role"`
}

// @Summary Register new user
// @Description Create a new user account with a role of USER or AUTHOR
// @Tags auth
// @Accept json
// @Produce json
// @Param user body registerReq true "User registration data"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	user, err := h.users.Register(r.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccessCreated(w, user)
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// @Summary Login user
// @Description Authenticate a user by username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param login body loginReq true "Login credentials"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Username = strings.TrimSpace(req.Username)

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	user, err := h.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccess(w, user, nil)
}

type updateProfileReq struct {
	Username    string `json:"username" validate:"required"`
	OldPassword string `json:"old_password" validate:"required"`
	NewEmail    string `json:"new_email" validate:"omitempty,email"`
	NewPassword string `json:"new_password"`
}

// @Summary Update user details
// @Description Update a user's email and/or password after verifying the old password
// @Tags auth
// @Accept json
// @Produce json
// @Param user body updateProfileReq true "Profile update data"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/auth/update [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), req.Username, req.OldPassword, req.NewEmail, req.NewPassword)
	if err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccess(w, user, nil)
}

// @Summary Delete a user
// @Description Delete a user by ID after confirming the secret code
// @Tags auth
// @Produce json
// @Param id path int true "User ID"
// @Param secret_code query string true "Deletion secret code"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/auth/delete/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/api/auth/delete/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid user ID", nil)
		return
	}

	secret := r.URL.Query().Get("secret_code")
	if err := h.users.Delete(r.Context(), id, secret); err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccess(w, nil, map[string]string{"message": "The user has been successfully deleted"})
}

// @Summary Get all users
// @Description List all users in the system
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/auth/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccess(w, users, nil)
}
