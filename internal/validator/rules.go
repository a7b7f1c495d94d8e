package validator

import (
	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain enums into the validator.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		return models.UserRole(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}

	if err := v.RegisterValidation("jobtype", func(fl validator.FieldLevel) bool {
		return models.JobType(fl.Field().String()).Valid()
	}); err != nil {
		return err
	}

	return v.RegisterValidation("appstatus", func(fl validator.FieldLevel) bool {
		return models.ApplicationStatus(fl.Field().String()).Valid()
	})
}
