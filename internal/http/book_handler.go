package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"bookstore/internal/usecase"
)

type BookHandler struct {
	books *usecase.BookService
}

func NewBookHandler(books *usecase.BookService) *BookHandler {
	return &BookHandler{books: books}
}

type bookReq struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Genre         string `json:"genre" validate:"required"`
	PublishedYear int    `json:"published_year" validate:"required,gt=0"`
	Username      string `json:"username" validate:"required"`
}

// @Summary Get all books
// @Description List all books in the system
// @Tags books
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.List(r.Context())
	if err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccess(w, books, nil)
}

// @Summary Add a new book
// @Description Create a book owned by the acting user; only authors may add books
// @Tags books
// @Accept json
// @Produce json
// @Param book body bookReq true "Book data plus acting username"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/books/add [post]
func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	book, err := h.books.Add(r.Context(), req.Title, req.Author, req.Genre, req.PublishedYear, req.Username)
	if err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccessCreated(w, book)
}

// @Summary Update a book
// @Description Overwrite a book's details; only the owning author may update it
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param book body bookReq true "New book data plus acting username"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/books/update/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBookID(w, r.URL.Path, "/api/books/update/")
	if !ok {
		return
	}

	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	book, err := h.books.Update(r.Context(), id, req.Title, req.Author, req.Genre, req.PublishedYear, req.Username)
	if err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccess(w, book, nil)
}

// @Summary Delete a book
// @Description Delete a book; only the owning author may delete it
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Param username query string true "Acting username"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/books/delete/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseBookID(w, r.URL.Path, "/api/books/delete/")
	if !ok {
		return
	}

	username := r.URL.Query().Get("username")
	if username == "" {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "username is required", nil)
		return
	}

	if err := h.books.Delete(r.Context(), id, username); err != nil {
		JSONFault(w, err)
		return
	}

	JSONSuccess(w, nil, map[string]string{"message": "Book deleted successfully"})
}

func parseBookID(w http.ResponseWriter, path, prefix string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimPrefix(path, prefix), 10, 64)
	if err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid book ID", nil)
		return 0, false
	}
	return id, true
}
