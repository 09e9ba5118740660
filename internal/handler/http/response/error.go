package response

import (
	"errors"
	"net/http"

	"github.com/staffdeck/workforce-console/internal/domain/leave"
	"github.com/staffdeck/workforce-console/internal/domain/session"
	"github.com/staffdeck/workforce-console/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Session domain errors
	switch {
	case errors.Is(err, session.ErrSessionMissing):
		Unauthorized(w, err.Error())
	case errors.Is(err, session.ErrAdminRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, session.ErrDepartmentMissing):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Invalid leave decision", nil)

	// Default: the remote HR API failed or returned something unexpected
	default:
		BadGateway(w, err.Error())
	}
}
