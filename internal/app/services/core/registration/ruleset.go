package registration

import (
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/dto/responses"
	"referral-service/internal/pkg/utils"
)

// Rule is a single constraint on a field value. Tag is a validator tag
// evaluated against the raw string value; MatchField instead compares the
// value to another field of the same draft (confirmPassword -> password).
type Rule struct {
	Tag        string
	MatchField string
	Message    string
}

// Ruleset maps a field name to its ordered constraints. The first failing
// rule produces the field's inline message; later rules are not evaluated.
type Ruleset map[string][]Rule

// Field names shared by the wizard, the step gate and the user model.
const (
	FieldRole            = "role"
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldDateOfBirth     = "dateOfBirth"
	FieldGender          = "gender"
	FieldAddress         = "address"
	FieldHospitalID      = "hospitalId"
	FieldSpecialization  = "specialization"
	FieldLicenseNumber   = "licenseNumber"
	FieldExperience      = "experience"
	FieldQualification   = "qualification"
	FieldDepartment      = "department"
	FieldPosition        = "position"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// rulesets holds one precomputed Ruleset per role. Building them once at
// package load keeps RulesetForRole a pure lookup, so the wizard can call it
// on every submission without rebuilding anything.
var rulesets map[models.Role]Ruleset

func init() {
	rulesets = make(map[models.Role]Ruleset, len(models.AllRoles()))
	for _, role := range models.AllRoles() {
		rulesets[role] = buildRuleset(role)
	}
}

// RulesetForRole returns the active ruleset for a role. Role is a closed
// type, so every value that passed models.ParseRole has an entry here.
func RulesetForRole(role models.Role) Ruleset {
	return rulesets[role]
}

func baseRuleset() Ruleset {
	return Ruleset{
		FieldRole:        {{Tag: "required", Message: "Please select a role"}},
		FieldFirstName:   {{Tag: "required", Message: "First name is required"}},
		FieldLastName:    {{Tag: "required", Message: "Last name is required"}},
		FieldEmail:       {{Tag: "required", Message: "Email is required"}, {Tag: "email", Message: "Invalid email"}},
		FieldPhone:       {{Tag: "required", Message: "Phone number is required"}},
		FieldDateOfBirth: {{Tag: "required", Message: "Date of birth is required"}},
		FieldAddress:     {{Tag: "required", Message: "Address is required"}},
		FieldPassword:    {{Tag: "required", Message: "Password is required"}, {Tag: "min=8", Message: "Password must be at least 8 characters"}},
		FieldConfirmPassword: {
			{Tag: "required", Message: "Confirm password is required"},
			{MatchField: FieldPassword, Message: "Passwords must match"},
		},
	}
}

// buildRuleset resolves the role-specific extensions over the base ruleset.
// The switch is exhaustive over the closed role set; there is deliberately no
// default branch that would let an unhandled role fall through silently.
func buildRuleset(role models.Role) Ruleset {
	rs := baseRuleset()

	switch role {
	case models.RoleDoctor:
		rs[FieldGender] = []Rule{{Tag: "required", Message: "Gender is required"}}
		rs[FieldHospitalID] = []Rule{{Tag: "required", Message: "Hospital selection is required"}}
		rs[FieldSpecialization] = []Rule{{Tag: "required", Message: "Specialization is required"}}
		rs[FieldLicenseNumber] = []Rule{{Tag: "required", Message: "Medical license number is required"}}
		rs[FieldExperience] = []Rule{
			{Tag: "required", Message: "Experience is required"},
			{Tag: "numeric", Message: "Experience must be a number"},
		}
		rs[FieldQualification] = []Rule{{Tag: "required", Message: "Qualification is required"}}
	case models.RoleHospitalAdmin:
		// Gender is intentionally absent for hospital admins.
		rs[FieldHospitalID] = []Rule{{Tag: "required", Message: "Hospital selection is required"}}
		rs[FieldDepartment] = []Rule{{Tag: "required", Message: "Department is required"}}
		rs[FieldPosition] = []Rule{{Tag: "required", Message: "Position is required"}}
	case models.RolePatient:
		rs[FieldGender] = []Rule{{Tag: "required", Message: "Gender is required"}}
	case models.RoleSuperAdmin:
		// Base ruleset only.
	}

	return rs
}

// ValidateFields runs the ruleset over the named fields against the draft
// values. Fields without a rule for the active role are ignored, so a client
// that submits gender for a hospital_admin loses nothing but gains nothing.
func ValidateFields(rs Ruleset, fields []string, values map[string]string) []responses.FieldError {
	var fieldErrors []responses.FieldError
	for _, field := range fields {
		rules, ok := rs[field]
		if !ok {
			continue
		}
		value := values[field]
		for _, rule := range rules {
			if rule.MatchField != "" {
				if value != values[rule.MatchField] {
					fieldErrors = append(fieldErrors, responses.FieldError{Field: field, Message: rule.Message})
					break
				}
				continue
			}
			if err := utils.ValidateVar(value, rule.Tag); err != nil {
				fieldErrors = append(fieldErrors, responses.FieldError{Field: field, Message: rule.Message})
				break
			}
		}
	}
	return fieldErrors
}

// ValidateAll checks every field the ruleset requires, regardless of step.
// The final submission must pass this over the merged draft.
func ValidateAll(rs Ruleset, values map[string]string) []responses.FieldError {
	fields := make([]string, 0, len(rs))
	for field := range rs {
		fields = append(fields, field)
	}
	return ValidateFields(rs, fields, values)
}

// RequiredFields lists the fields the ruleset constrains. Used by tests and
// by the final-payload merge.
func RequiredFields(rs Ruleset) []string {
	fields := make([]string, 0, len(rs))
	for field := range rs {
		fields = append(fields, field)
	}
	return fields
}
