package responses

type HospitalAddress struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode,omitempty"`
}

type Hospital struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Address HospitalAddress `json:"address"`
	Phone   string          `json:"phone,omitempty"`
	Email   string          `json:"email,omitempty"`
	Status  string          `json:"status"`
}

// ApprovedHospital is the trimmed shape the registration wizard's hospital
// selector consumes.
type ApprovedHospital struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Address HospitalAddress `json:"address"`
}
