package requests

type BookAppointment struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
	Reason   string `json:"reason" validate:"required"`
}

type UpdateAppointment struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
	Notes  string `json:"notes"`
}
