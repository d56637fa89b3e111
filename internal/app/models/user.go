package models

import "referral-service/internal/pkg/dto/requests"

type User struct {
	ID             string `bson:"_id,omitempty"`
	Role           string `bson:"role"`
	FirstName      string `bson:"firstName"`
	LastName       string `bson:"lastName"`
	Email          string `bson:"email"`
	Phone          string `bson:"phone"`
	DateOfBirth    string `bson:"dateOfBirth"`
	Gender         string `bson:"gender,omitempty"`
	Address        string `bson:"address"`
	Password       string `bson:"password"`

	// Professional info, populated per role.
	HospitalID     string `bson:"hospitalId,omitempty"`
	Specialization string `bson:"specialization,omitempty"`
	LicenseNumber  string `bson:"licenseNumber,omitempty"`
	Experience     string `bson:"experience,omitempty"`
	Qualification  string `bson:"qualification,omitempty"`
	Department     string `bson:"department,omitempty"`
	Position       string `bson:"position,omitempty"`

	ApprovalStatus    string `bson:"approvalStatus"`
	ApprovalMessage   string `bson:"approvalMessage,omitempty"`
	RejectionReason   string `bson:"rejectionReason,omitempty"`
	ProfilePictureURL string `bson:"profilePictureUrl,omitempty"`

	TimeModel `bson:",inline"`
}

func (u *User) SetDataForUpdateProfile(request *requests.UpdateProfile) {
	u.FirstName = request.FirstName
	u.LastName = request.LastName
	u.Phone = request.Phone
	u.Address = request.Address
	if request.ProfilePictureURL != "" {
		u.ProfilePictureURL = request.ProfilePictureURL
	}
}
