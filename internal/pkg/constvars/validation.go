package constvars

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
	"oneof":    "must be one of %s",
	"eqfield":  "must match %s",
	"numeric":  "must be a number",
	"datetime": "must be a valid date",
	"role":     "must be a valid role",
	"phone_number": "must be a valid phone number",
}

var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"oneof":   true,
	"eqfield": true,
}
