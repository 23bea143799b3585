package service

import (
	"errors"
	"fmt"

	apperrors "studio-ops-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validateRequest runs struct validation and reports the first failing field
// as a ValidationError
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return apperrors.NewValidationError("", err.Error())
}
