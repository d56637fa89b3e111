package utils

import (
	"referral-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateVar checks a single value against a validator tag. The registration
// ruleset uses it to run per-field constraints against draft values.
func ValidateVar(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RoleTypePatient,
		constvars.RoleTypeDoctor,
		constvars.RoleTypeHospitalAdmin,
		constvars.RoleTypeSuperAdmin:
		return true
	}
	return false
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	return re.MatchString(fl.Field().String())
}
