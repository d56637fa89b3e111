package models

type HospitalAddress struct {
	Street  string `bson:"street,omitempty"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	ZipCode string `bson:"zipCode,omitempty"`
}

type Hospital struct {
	ID      string          `bson:"_id,omitempty"`
	Name    string          `bson:"name"`
	Address HospitalAddress `bson:"address"`
	Phone   string          `bson:"phone,omitempty"`
	Email   string          `bson:"email,omitempty"`
	Status  string          `bson:"status"`

	ApprovalMessage string `bson:"approvalMessage,omitempty"`
	RejectionReason string `bson:"rejectionReason,omitempty"`

	TimeModel `bson:",inline"`
}
