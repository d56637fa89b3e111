package constvars

const (
	ResponseUnknown = "unknown"

	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	RegistrationSuccess      = "registration successful, please check your email for verification"
	RegistrationStepAccepted = "step accepted"
	RegistrationDraftStarted = "registration started"

	ProfileGetSuccess    = "get profile successfully"
	ProfileUpdateSuccess = "profile updated successfully"

	UserListSuccess    = "users retrieved successfully"
	UserApprovedSuccess = "user approved successfully"
	UserRejectedSuccess = "user rejected successfully"

	HospitalCreatedSuccess  = "hospital submitted for approval"
	HospitalListSuccess     = "hospitals retrieved successfully"
	HospitalGetSuccess      = "hospital retrieved successfully"
	HospitalUpdatedSuccess  = "hospital updated successfully"
	HospitalDeletedSuccess  = "hospital deleted successfully"
	HospitalApprovedSuccess = "hospital approved successfully"
	HospitalRejectedSuccess = "hospital rejected successfully"

	ApprovalStatsSuccess   = "approval statistics retrieved successfully"
	PendingListSuccess     = "pending records retrieved successfully"

	AppointmentBookedSuccess    = "appointment booked successfully"
	AppointmentListSuccess      = "appointments retrieved successfully"
	AppointmentGetSuccess       = "appointment retrieved successfully"
	AppointmentUpdatedSuccess   = "appointment updated successfully"
	AppointmentCancelledSuccess = "appointment cancelled successfully"

	ReferralCreatedSuccess = "referral created successfully"
	ReferralListSuccess    = "referrals retrieved successfully"
	ReferralGetSuccess     = "referral retrieved successfully"
	ReferralUpdatedSuccess = "referral updated successfully"
	ReferralDeletedSuccess = "referral deleted successfully"
)
