package responses

type Login struct {
	Token string `json:"token"`
	User  *UserProfile `json:"user"`
}

type UserProfile struct {
	ID             string `json:"id"`
	Role           string `json:"role"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	ApprovalStatus string `json:"approvalStatus"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
}
