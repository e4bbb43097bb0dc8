package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"bookstore/internal/usecase"
)

type FavoriteHandler struct {
	favorites *usecase.FavoriteService
}

func NewFavoriteHandler(favorites *usecase.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

type favoriteReq struct {
	Username string `json:"username" validate:"required"`
	BookID   int64  `json:"book_id" validate:"required,gt=0"`
}

// @Summary Add a book to favorites
// @Description Add a book to a user's favorites list; any user may favorite any book
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body favoriteReq true "Username and book ID"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/favorites/add [post]
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req favoriteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	favorite, err := h.favorites.Add(r.Context(), req.Username, req.BookID)
	if err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccessCreated(w, favorite)
}

// @Summary Remove a book from favorites
// @Description Remove a book from a user's favorites list; removing an absent favorite is a no-op
// @Tags favorites
// @Produce json
// @Param username query string true "Username"
// @Param book_id query int true "Book ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/favorites/remove [delete]
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	bookID, err := strconv.ParseInt(r.URL.Query().Get("book_id"), 10, 64)
	if username == "" || err != nil {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "username and book_id are required", nil)
		return
	}

	if err := h.favorites.Remove(r.Context(), username, bookID); err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccess(w, nil, map[string]string{"message": "Book removed from favorites"})
}

// @Summary View all favorite books
// @Description List all books a user has added to their favorites
// @Tags favorites
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/favorites/user/{username} [get]
func (h *FavoriteHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimPrefix(r.URL.Path, "/api/favorites/user/")
	if username == "" || strings.Contains(username, "/") {
		http.NotFound(w, r)
		return
	}

	favorites, err := h.favorites.ListByUser(r.Context(), username)
	if err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccess(w, favorites, nil)
}
