package models

// RegistrationDraft accumulates wizard form values across steps. It lives in
// Redis with a TTL; abandoning the wizard simply lets it expire.
//
// NextStep is the lowest step the client has not passed yet. A step may be
// re-submitted (going back never re-validates, but re-advancing does), it
// just cannot be skipped ahead of NextStep.
type RegistrationDraft struct {
	ID       string            `json:"id"`
	Role     string            `json:"role"`
	NextStep int               `json:"next_step"`
	Fields   map[string]string `json:"fields"`
}
