package requests

type HospitalAddress struct {
	Street  string `json:"street"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode"`
}

type CreateHospital struct {
	Name    string          `json:"name" validate:"required"`
	Address HospitalAddress `json:"address" validate:"required"`
	Phone   string          `json:"phone" validate:"omitempty,phone_number"`
	Email   string          `json:"email" validate:"omitempty,email"`
}

type UpdateHospital struct {
	Name    string          `json:"name" validate:"required"`
	Address HospitalAddress `json:"address" validate:"required"`
	Phone   string          `json:"phone" validate:"omitempty,phone_number"`
	Email   string          `json:"email" validate:"omitempty,email"`
}
