package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "cellwatch/internal/errors"
	"cellwatch/pkg/contracts/domain"
)

// SectionQuery is the input of the section and export endpoints
type SectionQuery struct {
	Kind string `validate:"required,kind"`
	File string `validate:"omitempty,docname"`
}

// DocumentQuery is the input of the report endpoints
type DocumentQuery struct {
	File string `validate:"omitempty,docname"`
}

// QueryValidator validates request parameters with go-playground/validator
type QueryValidator struct {
	validate *validator.Validate
}

// NewQueryValidator creates a validator with the "kind" and "docname" tags registered
func NewQueryValidator() *QueryValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("kind", validateKind)
	_ = v.RegisterValidation("docname", validateDocName)
	return &QueryValidator{validate: v}
}

// Validate checks a query struct and returns an APIError listing every
// offending parameter
func (q *QueryValidator) Validate(query interface{}) error {
	err := q.validate.Struct(query)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.InvalidRequestWithError(err)
	}
	fields := make([]apperrors.ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperrors.ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: message(fe),
		})
	}
	return apperrors.NewValidationErrors(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "kind":
		return fmt.Sprintf("unknown section kind %q", fe.Value())
	case "docname":
		return fmt.Sprintf("invalid document name %q", fe.Value())
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}

func validateKind(fl validator.FieldLevel) bool {
	_, err := domain.ParseKind(fl.Field().String())
	return err == nil
}

// validateDocName accepts a bare file name: no separators and no dot entries
func validateDocName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return false
	}
	return !strings.ContainsRune(name, 0)
}
