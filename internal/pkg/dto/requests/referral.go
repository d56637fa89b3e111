package requests

type CreateReferral struct {
	PatientID    string `json:"patientId" validate:"required"`
	ToHospitalID string `json:"toHospitalId" validate:"required"`
	Reason       string `json:"reason" validate:"required"`
	Urgency      string `json:"urgency" validate:"required,oneof=low medium high"`
	Notes        string `json:"notes"`
}

type UpdateReferral struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected completed"`
	Notes  string `json:"notes"`
}
