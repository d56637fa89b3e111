package responses

type User struct {
	ID             string `json:"id"`
	Role           string `json:"role"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ApprovalStatus string `json:"approvalStatus"`
	HospitalID     string `json:"hospitalId,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Department     string `json:"department,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

type ApprovalStats struct {
	PendingUsers     int `json:"pendingUsers"`
	PendingDoctors   int `json:"pendingDoctors"`
	PendingHospitals int `json:"pendingHospitals"`
	ApprovedUsers    int `json:"approvedUsers"`
	RejectedUsers    int `json:"rejectedUsers"`
}
