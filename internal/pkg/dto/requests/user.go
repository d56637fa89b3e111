package requests

type UpdateProfile struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Phone          string `json:"phone" validate:"required,phone_number"`
	Address        string `json:"address" validate:"required"`
	ProfilePicture string `json:"profilePicture"`

	// Set by the usecase after the picture lands in object storage.
	ProfilePictureURL string `json:"-"`
}
