package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/entity"
	"bookstore/internal/store/mocks"
	"bookstore/internal/testutil"
	"bookstore/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newBookHandler(t *testing.T) (*BookHandler, *mocks.MockBookRepository, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockBooks := mocks.NewMockBookRepository(ctrl)
	mockUsers := mocks.NewMockUserRepository(ctrl)
	return NewBookHandler(usecase.NewBookService(mockBooks, mockUsers)), mockBooks, mockUsers
}

func TestBookHandler_List(t *testing.T) {
	t.Run("empty system yields not found", func(t *testing.T) {
		handler, mockBooks, _ := newBookHandler(t)
		mockBooks.EXPECT().
			List(gomock.Any()).
			Return(nil, nil)

		w := httptest.NewRecorder()
		handler.List(w, testutil.NewRequest(http.MethodGet, "/api/books", nil))

		recorded := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, recorded.Code)
		assert.Equal(t, "NO_BOOKS", recorded.ErrorCode())
	})

	t.Run("returns books", func(t *testing.T) {
		handler, mockBooks, _ := newBookHandler(t)
		mockBooks.EXPECT().
			List(gomock.Any()).
			Return([]entity.Book{testutil.TestBook}, nil)

		w := httptest.NewRecorder()
		handler.List(w, testutil.NewRequest(http.MethodGet, "/api/books", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestBookHandler_Add(t *testing.T) {
	validBody := map[string]interface{}{
		"title":          "T",
		"author":         "A",
		"genre":          "G",
		"published_year": 2020,
		"username":       testutil.TestAuthor.Username,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(books *mocks.MockBookRepository, users *mocks.MockUserRepository)
		expectedStatus int
	}{
		{
			name: "created by author",
			body: validBody,
			setupMock: func(books *mocks.MockBookRepository, users *mocks.MockUserRepository) {
				users.EXPECT().
					GetByUsername(gomock.Any(), testutil.TestAuthor.Username).
					Return(testutil.TestAuthor, nil)
				books.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "forbidden for reader role",
			body: map[string]interface{}{
				"title":          "T",
				"author":         "A",
				"genre":          "G",
				"published_year": 2020,
				"username":       testutil.TestUser.Username,
			},
			setupMock: func(books *mocks.MockBookRepository, users *mocks.MockUserRepository) {
				users.EXPECT().
					GetByUsername(gomock.Any(), testutil.TestUser.Username).
					Return(testutil.TestUser, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "forbidden for unregistered user",
			body: map[string]interface{}{
				"title":          "T",
				"author":         "A",
				"genre":          "G",
				"published_year": 2020,
				"username":       "bob",
			},
			setupMock: func(books *mocks.MockBookRepository, users *mocks.MockUserRepository) {
				users.EXPECT().
					GetByUsername(gomock.Any(), "bob").
					Return(entity.User{}, usecase.ErrNotFound)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "bad request - missing fields",
			body:           map[string]interface{}{"title": "T"},
			setupMock:      func(books *mocks.MockBookRepository, users *mocks.MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockBooks, mockUsers := newBookHandler(t)
			tt.setupMock(mockBooks, mockUsers)

			w := httptest.NewRecorder()
			handler.Add(w, testutil.NewRequest(http.MethodPost, "/api/books/add", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBookHandler_Update(t *testing.T) {
	body := map[string]interface{}{
		"title":          "T2",
		"author":         "A2",
		"genre":          "G2",
		"published_year": 2021,
		"username":       testutil.TestAuthor.Username,
	}

	t.Run("owner updates", func(t *testing.T) {
		handler, mockBooks, mockUsers := newBookHandler(t)
		mockUsers.EXPECT().
			GetByUsername(gomock.Any(), testutil.TestAuthor.Username).
			Return(testutil.TestAuthor, nil)
		mockBooks.EXPECT().
			GetByID(gomock.Any(), testutil.TestBook.ID).
			Return(testutil.TestBook, nil)
		mockBooks.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		w := httptest.NewRecorder()
		handler.Update(w, testutil.NewRequest(http.MethodPut, "/api/books/update/1", body))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-owning author is forbidden", func(t *testing.T) {
		handler, mockBooks, mockUsers := newBookHandler(t)
		otherAuthor := entity.User{ID: 42, Username: testutil.TestAuthor.Username, Role: entity.RoleAuthor}
		mockUsers.EXPECT().
			GetByUsername(gomock.Any(), testutil.TestAuthor.Username).
			Return(otherAuthor, nil)
		mockBooks.EXPECT().
			GetByID(gomock.Any(), testutil.TestBook.ID).
			Return(testutil.TestBook, nil)

		w := httptest.NewRecorder()
		handler.Update(w, testutil.NewRequest(http.MethodPut, "/api/books/update/1", body))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing book", func(t *testing.T) {
		handler, mockBooks, mockUsers := newBookHandler(t)
		mockUsers.EXPECT().
			GetByUsername(gomock.Any(), testutil.TestAuthor.Username).
			Return(testutil.TestAuthor, nil)
		mockBooks.EXPECT().
			GetByID(gomock.Any(), int64(99)).
			Return(entity.Book{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		handler.Update(w, testutil.NewRequest(http.MethodPut, "/api/books/update/99", body))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad request - non-numeric id", func(t *testing.T) {
		handler, _, _ := newBookHandler(t)

		w := httptest.NewRecorder()
		handler.Update(w, testutil.NewRequest(http.MethodPut, "/api/books/update/abc", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookHandler_Delete(t *testing.T) {
	t.Run("owner deletes", func(t *testing.T) {
		handler, mockBooks, mockUsers := newBookHandler(t)
		mockBooks.EXPECT().
			GetByID(gomock.Any(), testutil.TestBook.ID).
			Return(testutil.TestBook, nil)
		mockUsers.EXPECT().
			GetByUsername(gomock.Any(), testutil.TestAuthor.Username).
			Return(testutil.TestAuthor, nil)
		mockBooks.EXPECT().
			Delete(gomock.Any(), testutil.TestBook.ID).
			Return(nil)

		w := httptest.NewRecorder()
		handler.Delete(w, testutil.NewRequest(http.MethodDelete, "/api/books/delete/1?username="+testutil.TestAuthor.Username, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing username", func(t *testing.T) {
		handler, _, _ := newBookHandler(t)

		w := httptest.NewRecorder()
		handler.Delete(w, testutil.NewRequest(http.MethodDelete, "/api/books/delete/1", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing book", func(t *testing.T) {
		handler, mockBooks, _ := newBookHandler(t)
		mockBooks.EXPECT().
			GetByID(gomock.Any(), int64(99)).
			Return(entity.Book{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		handler.Delete(w, testutil.NewRequest(http.MethodDelete, "/api/books/delete/99?username=whoever", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
