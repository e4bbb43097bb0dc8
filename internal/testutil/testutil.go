package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bookstore/internal/entity"
)

// TestUser is a mock reader-role user for testing
var TestUser = entity.User{
	ID:        1,
	Username:  "testuser",
	Email:     "test@example.com",
	Password:  "pw1234",
	Role:      entity.RoleUser,
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// TestAuthor is a mock author-role user for testing
var TestAuthor = entity.User{
	ID:        2,
	Username:  "testauthor",
	Email:     "author@example.com",
	Password:  "pw1234",
	Role:      entity.RoleAuthor,
	CreatedAt: time.Now(),
	UpdatedAt: time.Now(),
}

// TestBook is a mock book owned by TestAuthor
var TestBook = entity.Book{
	ID:            1,
	Title:         "Test Book Title",
	Author:        "Test Book Author",
	Genre:         "Fiction",
	PublishedYear: 2020,
	UserID:        TestAuthor.ID,
	CreatedAt:     time.Now(),
	UpdatedAt:     time.Now(),
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// ErrorCode digs the error.code field out of a recorded error envelope.
func (r RecordResponse) ErrorCode() string {
	errBody, ok := r.Body["error"].(map[string]interface{})
	if !ok {
		return ""
	}
	code, _ := errBody["code"].(string)
	return code
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}
