package models

type Appointment struct {
	ID         string `bson:"_id,omitempty"`
	PatientID  string `bson:"patientId"`
	DoctorID   string `bson:"doctorId"`
	HospitalID string `bson:"hospitalId"`
	Date       string `bson:"date"`
	Time       string `bson:"time"`
	Reason     string `bson:"reason"`
	Notes      string `bson:"notes,omitempty"`
	Status     string `bson:"status"`

	TimeModel `bson:",inline"`
}
