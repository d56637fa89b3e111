package responses

type Appointment struct {
	ID         string `json:"id"`
	PatientID  string `json:"patientId"`
	DoctorID   string `json:"doctorId"`
	HospitalID string `json:"hospitalId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Reason     string `json:"reason"`
	Notes      string `json:"notes,omitempty"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}
