package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/roomplan/pkg/errors"
)

// errorBody is the JSON error envelope.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain error codes onto HTTP statuses. Unknown errors
// become 500 without leaking their message.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if code == "" {
		code = errors.ErrCodeInternal
		msg = "internal error"
	}

	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = msg

	writeJSON(w, statusFor(code), body)
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidRoom,
		errors.ErrCodeInvalidDoor,
		errors.ErrCodeInvalidPattern,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidCatalog,
		errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeFurnitureNotFound,
		errors.ErrCodePlanNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
