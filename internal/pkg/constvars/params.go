package constvars

const (
	URLParamUserID        = "user_id"
	URLParamHospitalID    = "hospital_id"
	URLParamReferralID    = "referral_id"
	URLParamAppointmentID = "appointment_id"
	URLParamDraftID       = "draft_id"
	URLParamStep          = "step"
)

const (
	URLQueryParamRole     = "role"
	URLQueryParamStatus   = "status"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
)
