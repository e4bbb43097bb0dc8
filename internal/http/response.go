package http

import (
	"encoding/json"
	"net/http"

	"bookstore/internal/usecase"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Success bool              `json:"success"`
	Error   ErrorResponseBody `json:"error"`
}

type ErrorResponseBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func JSONSuccess(w http.ResponseWriter, data interface{}, meta interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

func JSONSuccessCreated(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Data:    data,
	})
}

func JSONError(w http.ResponseWriter, statusCode int, code string, message string, details []ErrorDetail) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// JSONFault dispatches a usecase error into a status code plus the
// two-part code/message payload. Errors that carry no Fault are
// infrastructure failures and become a generic 500.
func JSONFault(w http.ResponseWriter, err error) {
	fault, ok := usecase.AsFault(err)
	if !ok {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	status := http.StatusInternalServerError
	switch fault.Kind {
	case usecase.FaultInvalidInput:
		status = http.StatusBadRequest
	case usecase.FaultConflict:
		status = http.StatusConflict
	case usecase.FaultNotFound:
		status = http.StatusNotFound
	case usecase.FaultUnauthorized:
		status = http.StatusUnauthorized
	case usecase.FaultForbidden:
		status = http.StatusForbidden
	}
	JSONError(w, status, fault.Code, fault.Message, nil)
}
