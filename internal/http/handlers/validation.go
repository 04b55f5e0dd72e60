package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes one rejected field in a request body.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

type validationResponse struct {
	Error   string            `json:"error"`
	Details []ValidationError `json:"details"`
}

// respondIfValidation writes a 400 with field details when err is a
// validator.ValidationErrors and reports whether it handled the error.
func respondIfValidation(w http.ResponseWriter, err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}

	details := make([]ValidationError, 0, len(verrs))
	for _, verr := range verrs {
		details = append(details, ValidationError{
			Field:   verr.Field(),
			Message: validationMessage(verr),
			Type:    verr.Tag(),
		})
	}

	writeJSON(w, http.StatusBadRequest, validationResponse{
		Error:   "invalid request data",
		Details: details,
	})
	return true
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "len":
		return "Expected exactly " + err.Param() + " elements"
	case "min":
		return "Expected at least " + err.Param() + " elements"
	case "eq":
		return "Value must equal " + err.Param()
	case "gte":
		return "Value must be greater than or equal to " + err.Param()
	default:
		return "Invalid value"
	}
}
