package requests

type ApproveRecord struct {
	Message string `json:"message"`
}

type RejectRecord struct {
	Reason string `json:"reason" validate:"required"`
}
