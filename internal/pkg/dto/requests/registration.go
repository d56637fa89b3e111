package requests

// BeginRegistration opens a wizard draft. Selecting the role is step 0, so
// the role is the only field it carries.
type BeginRegistration struct {
	Role string `json:"role" validate:"required,role"`
}

// SubmitStep carries the raw form values of a single wizard step. Values stay
// strings the whole way through; the ruleset owns typing concerns such as the
// numeric check on experience.
type SubmitStep struct {
	Fields map[string]string `json:"fields" validate:"required"`
}
