package responses

// FieldError is scoped to a single form field so the client can render it
// inline next to the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type BeginRegistration struct {
	DraftID       string `json:"draftId"`
	Role          string `json:"role"`
	NextStep      int    `json:"nextStep"`
	OptionalSteps []int  `json:"optionalSteps"`
}

type SubmitStep struct {
	DraftID     string       `json:"draftId"`
	Step        int          `json:"step"`
	NextStep    int          `json:"nextStep"`
	Completed   bool         `json:"completed"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}
