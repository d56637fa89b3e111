package registration

import (
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/dto/responses"
)

// The wizard has exactly four steps. Their indices are wire-visible, so they
// are fixed constants rather than an iota block that could be reordered.
const (
	StepRole             = 0
	StepPersonalInfo     = 1
	StepProfessionalInfo = 2
	StepPassword         = 3

	StepCount = 4
)

var stepLabels = [StepCount]string{"Role", "Personal Info", "Professional Info", "Password"}

func StepLabel(step int) string {
	if step < 0 || step >= StepCount {
		return ""
	}
	return stepLabels[step]
}

// FieldsForStep returns the exact field set a step must pass before the
// wizard advances. Advancing validates these and nothing else.
func FieldsForStep(step int, role models.Role) []string {
	switch step {
	case StepRole:
		return []string{FieldRole}
	case StepPersonalInfo:
		fields := []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhone, FieldDateOfBirth, FieldAddress}
		// Gender is collected with personal info for every role except
		// hospital_admin, which never requires it.
		if role != models.RoleHospitalAdmin {
			fields = append(fields, FieldGender)
		}
		return fields
	case StepProfessionalInfo:
		switch role {
		case models.RoleDoctor:
			return []string{FieldHospitalID, FieldSpecialization, FieldLicenseNumber, FieldExperience, FieldQualification}
		case models.RoleHospitalAdmin:
			return []string{FieldHospitalID, FieldDepartment, FieldPosition}
		case models.RolePatient, models.RoleSuperAdmin:
			return []string{}
		}
		return []string{}
	case StepPassword:
		return []string{FieldPassword, FieldConfirmPassword}
	}
	return []string{}
}

// StepOptional reports whether a step may be skipped for the role. Only the
// professional-info step is ever optional, and only for roles that
// contribute no professional fields.
func StepOptional(step int, role models.Role) bool {
	return step == StepProfessionalInfo &&
		(role == models.RolePatient || role == models.RoleSuperAdmin)
}

func OptionalSteps(role models.Role) []int {
	steps := []int{}
	for step := 0; step < StepCount; step++ {
		if StepOptional(step, role) {
			steps = append(steps, step)
		}
	}
	return steps
}

// ValidateStep gates advancement: it validates exactly FieldsForStep(step,
// role) against the role's ruleset. An empty result admits the step.
func ValidateStep(step int, role models.Role, values map[string]string) []responses.FieldError {
	return ValidateFields(RulesetForRole(role), FieldsForStep(step, role), values)
}
