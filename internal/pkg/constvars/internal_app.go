package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "RFRL_SVC_"
)

const (
	RoleTypePatient       = "patient"
	RoleTypeDoctor        = "doctor"
	RoleTypeHospitalAdmin = "hospital_admin"
	RoleTypeSuperAdmin    = "super_admin"
)

const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
)

const (
	HospitalStatusPending  = "pending"
	HospitalStatusApproved = "approved"
	HospitalStatusRejected = "rejected"
)

const (
	ReferralStatusPending   = "pending"
	ReferralStatusAccepted  = "accepted"
	ReferralStatusRejected  = "rejected"
	ReferralStatusCompleted = "completed"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionHospitals    = "hospitals"
	MongoCollectionReferrals    = "referrals"
	MongoCollectionAppointments = "appointments"
)

const (
	RedisKeyRegistrationDraftPrefix = "registration_draft:"
)

const (
	// Route paths the guard redirects to. The client treats these as
	// view locations, not API endpoints.
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	NotificationTypeRegistration     = "registration_verification"
	NotificationTypeUserApproved     = "user_approved"
	NotificationTypeUserRejected     = "user_rejected"
	NotificationTypeHospitalApproved = "hospital_approved"
	NotificationTypeHospitalRejected = "hospital_rejected"
	NotificationTypeAppointment      = "appointment_booked"
)
