package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/tinhat/dirtysecrets/internal/constants"
)

// Response represents a standardized API response structure
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorInfo contains detailed error information for API responses
type ErrorInfo struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError reports one rejected request field. Errors keep the order in
// which the rule chains evaluated the fields.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Meta contains pagination and listing metadata
type Meta struct {
	Total int `json:"total"`
}

// JSON writes a JSON response with the given status code and data
func JSON(w http.ResponseWriter, status int, data interface{}) {
	response := Response{
		Success: status >= 200 && status < 300,
		Data:    data,
	}
	writeJSON(w, status, response)
}

// JSONWithMeta writes a JSON response that includes listing metadata
func JSONWithMeta(w http.ResponseWriter, status int, data interface{}, meta *Meta) {
	response := Response{
		Success: status >= 200 && status < 300,
		Data:    data,
		Meta:    meta,
	}
	writeJSON(w, status, response)
}

// Error writes a JSON error response with the given status code, error code, and message
func Error(w http.ResponseWriter, status int, code string, message string, details []FieldError) {
	response := Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
	writeJSON(w, status, response)
}

// ErrorFromAppError writes a JSON error response based on an AppError.
// The DevInfo field is logged server-side and never serialized to the client.
func ErrorFromAppError(w http.ResponseWriter, appErr *AppError) {
	if appErr.DevInfo != "" {
		log.Error().
			Int("status_code", appErr.StatusCode).
			Str("dev_info", appErr.DevInfo).
			Msg(appErr.Message)
	}

	code := constants.CodeInternalError
	switch appErr.StatusCode {
	case http.StatusBadRequest:
		code = constants.CodeBadRequest
		if IsValidationError(appErr) {
			code = constants.CodeValidationError
		}
	case http.StatusNotFound:
		code = constants.CodeNotFound
	case http.StatusMethodNotAllowed:
		code = constants.CodeMethodNotAllowed
	case http.StatusServiceUnavailable:
		code = constants.CodeServiceUnavailable
	}

	var details []FieldError
	if appErr.Field != "" {
		details = []FieldError{{Field: appErr.Field, Message: appErr.Message}}
	}
	Error(w, appErr.StatusCode, code, appErr.Message, details)
}

// BadRequest writes a 400 Bad Request response
func BadRequest(w http.ResponseWriter, message string, details []FieldError) {
	if message == "" {
		message = constants.MsgValidationFailed
	}
	Error(w, http.StatusBadRequest, constants.CodeBadRequest, message, details)
}

// ValidationFailed writes a 400 response carrying the ordered list of field errors
func ValidationFailed(w http.ResponseWriter, details []FieldError) {
	Error(w, http.StatusBadRequest, constants.CodeValidationError, constants.MsgValidationFailed, details)
}

// NotFound writes a 404 Not Found response
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgResourceNotFound
	}
	Error(w, http.StatusNotFound, constants.CodeNotFound, message, nil)
}

// MethodNotAllowed writes a 405 Method Not Allowed response
func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, http.StatusMethodNotAllowed, constants.CodeMethodNotAllowed, constants.MsgMethodNotAllowed, nil)
}

// ServiceUnavailable writes a 503 Service Unavailable response
func ServiceUnavailable(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgStoreUnavailable
	}
	Error(w, http.StatusServiceUnavailable, constants.CodeServiceUnavailable, message, nil)
}

// InternalServerError writes a 500 Internal Server Error response
func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgInternalServerError
	}
	Error(w, http.StatusInternalServerError, constants.CodeInternalError, message, nil)
}

// writeJSON marshals and writes a JSON response
func writeJSON(w http.ResponseWriter, status int, response Response) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
