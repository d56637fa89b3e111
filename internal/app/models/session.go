package models

// Session is the payload stored in Redis under the session ID the JWT wraps.
// The guard reads it on every request; it is never cached between requests.
type Session struct {
	UserID         string `json:"user_id"`
	Role           string `json:"role"`
	Email          string `json:"email"`
	ApprovalStatus string `json:"approval_status"`
}
