package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/wifikeeper/internal/common"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps a service error onto an HTTP status and the uniform
// {"error","message"} body.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"

	switch {
	case errors.Is(err, common.ErrorValidation):
		status, code = http.StatusBadRequest, "validation_error"
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		status, code = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, common.ErrorForbidden):
		status, code = http.StatusForbidden, "forbidden"
	case errors.Is(err, common.ErrorNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, common.ErrorEmailTaken):
		status, code = http.StatusConflict, "email_taken"
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// do not leak internals
		message = "internal server error"
	}

	respondJSON(w, status, errorResponse{Error: code, Message: message})
}
