package models

type Referral struct {
	ID           string `bson:"_id,omitempty"`
	PatientID    string `bson:"patientId"`
	FromUserID   string `bson:"fromUserId"`
	ToHospitalID string `bson:"toHospitalId"`
	Reason       string `bson:"reason"`
	Urgency      string `bson:"urgency"`
	Notes        string `bson:"notes,omitempty"`
	Status       string `bson:"status"`

	TimeModel `bson:",inline"`
}
