package responses

type Referral struct {
	ID             string `json:"id"`
	PatientID      string `json:"patientId"`
	FromUserID     string `json:"fromUserId"`
	ToHospitalID   string `json:"toHospitalId"`
	Reason         string `json:"reason"`
	Urgency        string `json:"urgency"`
	Notes          string `json:"notes,omitempty"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}
