package registration

import (
	"referral-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseFields() []string {
	return []string{
		FieldRole, FieldFirstName, FieldLastName, FieldEmail, FieldPhone,
		FieldDateOfBirth, FieldAddress, FieldPassword, FieldConfirmPassword,
	}
}

func validBaseValues() map[string]string {
	return map[string]string{
		FieldRole:            "patient",
		FieldFirstName:       "Jane",
		FieldLastName:        "Doe",
		FieldEmail:           "jane@example.com",
		FieldPhone:           "08123456789",
		FieldDateOfBirth:     "1990-01-01",
		FieldGender:          "female",
		FieldAddress:         "1 Main St",
		FieldPassword:        "verysecret",
		FieldConfirmPassword: "verysecret",
	}
}

func TestRulesetForRole(t *testing.T) {
	t.Run("patient gets base plus gender", func(t *testing.T) {
		rs := RulesetForRole(models.RolePatient)
		for _, field := range baseFields() {
			assert.Contains(t, rs, field)
		}
		assert.Contains(t, rs, FieldGender)
		assert.NotContains(t, rs, FieldHospitalID)
		assert.NotContains(t, rs, FieldSpecialization)
		assert.NotContains(t, rs, FieldDepartment)
	})

	t.Run("doctor gets professional fields", func(t *testing.T) {
		rs := RulesetForRole(models.RoleDoctor)
		assert.Contains(t, rs, FieldGender)
		assert.Contains(t, rs, FieldHospitalID)
		assert.Contains(t, rs, FieldSpecialization)
		assert.Contains(t, rs, FieldLicenseNumber)
		assert.Contains(t, rs, FieldExperience)
		assert.Contains(t, rs, FieldQualification)
		assert.NotContains(t, rs, FieldDepartment)
		assert.NotContains(t, rs, FieldPosition)
	})

	t.Run("hospital admin has no gender rule", func(t *testing.T) {
		rs := RulesetForRole(models.RoleHospitalAdmin)
		assert.NotContains(t, rs, FieldGender)
		assert.Contains(t, rs, FieldHospitalID)
		assert.Contains(t, rs, FieldDepartment)
		assert.Contains(t, rs, FieldPosition)
		assert.NotContains(t, rs, FieldSpecialization)
	})

	t.Run("super admin gets base only", func(t *testing.T) {
		rs := RulesetForRole(models.RoleSuperAdmin)
		assert.Len(t, rs, len(baseFields()))
		assert.NotContains(t, rs, FieldGender)
		assert.NotContains(t, rs, FieldHospitalID)
	})

	t.Run("same ruleset instance on repeated calls", func(t *testing.T) {
		first := RulesetForRole(models.RoleDoctor)
		second := RulesetForRole(models.RoleDoctor)
		assert.Equal(t, first, second)
	})
}

func TestValidateFields(t *testing.T) {
	t.Run("valid values pass", func(t *testing.T) {
		rs := RulesetForRole(models.RolePatient)
		errs := ValidateFields(rs, baseFields(), validBaseValues())
		assert.Empty(t, errs)
	})

	t.Run("missing required field produces its message", func(t *testing.T) {
		rs := RulesetForRole(models.RolePatient)
		values := validBaseValues()
		values[FieldFirstName] = ""
		errs := ValidateFields(rs, []string{FieldFirstName}, values)
		assert.Len(t, errs, 1)
		assert.Equal(t, FieldFirstName, errs[0].Field)
		assert.Equal(t, "First name is required", errs[0].Message)
	})

	t.Run("first failing rule wins", func(t *testing.T) {
		rs := RulesetForRole(models.RolePatient)
		values := validBaseValues()
		values[FieldEmail] = ""
		errs := ValidateFields(rs, []string{FieldEmail}, values)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Email is required", errs[0].Message)

		values[FieldEmail] = "not-an-email"
		errs = ValidateFields(rs, []string{FieldEmail}, values)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Invalid email", errs[0].Message)
	})

	t.Run("short password", func(t *testing.T) {
		rs := RulesetForRole(models.RolePatient)
		values := validBaseValues()
		values[FieldPassword] = "short"
		errs := ValidateFields(rs, []string{FieldPassword}, values)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Password must be at least 8 characters", errs[0].Message)
	})

	t.Run("confirm password must match", func(t *testing.T) {
		rs := RulesetForRole(models.RolePatient)
		values := validBaseValues()
		values[FieldConfirmPassword] = "different1"
		errs := ValidateFields(rs, []string{FieldConfirmPassword}, values)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Passwords must match", errs[0].Message)
	})

	t.Run("experience must be numeric for doctors", func(t *testing.T) {
		rs := RulesetForRole(models.RoleDoctor)
		values := validBaseValues()
		values[FieldExperience] = "five"
		errs := ValidateFields(rs, []string{FieldExperience}, values)
		assert.Len(t, errs, 1)
		assert.Equal(t, "Experience must be a number", errs[0].Message)

		values[FieldExperience] = "5"
		errs = ValidateFields(rs, []string{FieldExperience}, values)
		assert.Empty(t, errs)
	})

	t.Run("fields outside the ruleset are ignored", func(t *testing.T) {
		rs := RulesetForRole(models.RoleHospitalAdmin)
		values := map[string]string{FieldGender: ""}
		errs := ValidateFields(rs, []string{FieldGender}, values)
		assert.Empty(t, errs)
	})
}

func TestValidateAll(t *testing.T) {
	t.Run("reports every missing field", func(t *testing.T) {
		rs := RulesetForRole(models.RoleDoctor)
		values := validBaseValues()
		// No professional fields supplied.
		errs := ValidateAll(rs, values)

		failed := make(map[string]string, len(errs))
		for _, fe := range errs {
			failed[fe.Field] = fe.Message
		}
		assert.Equal(t, "Hospital selection is required", failed[FieldHospitalID])
		assert.Equal(t, "Specialization is required", failed[FieldSpecialization])
		assert.Equal(t, "Medical license number is required", failed[FieldLicenseNumber])
		assert.Equal(t, "Experience is required", failed[FieldExperience])
		assert.Equal(t, "Qualification is required", failed[FieldQualification])
		assert.NotContains(t, failed, FieldFirstName)
	})

	t.Run("complete super admin draft passes", func(t *testing.T) {
		rs := RulesetForRole(models.RoleSuperAdmin)
		values := validBaseValues()
		values[FieldRole] = "super_admin"
		delete(values, FieldGender)
		errs := ValidateAll(rs, values)
		assert.Empty(t, errs)
	})
}
