package constvars

// Client messages are safe to surface to the end user. Dev messages carry the
// detail that ends up in logs only.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientRoleNotSelected               = "please select a role"
	ErrClientUnknownRole                   = "unknown role"
	ErrClientRegistrationFailed            = "registration failed, please try again"
	ErrClientDraftNotFound                 = "your registration session expired, please start over"
	ErrClientStepNotReached                = "complete the previous steps first"
	ErrClientAccountPendingApproval        = "your account is awaiting approval"
	ErrClientAccountRejected               = "your account registration was rejected"
	ErrClientHospitalNotFound              = "hospital not found"
	ErrClientUserNotFound                  = "user not found"
	ErrClientReferralNotFound              = "referral not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientDoctorNotFound                = "doctor not found"
)

const (
	ErrDevValidationFailed        = "request validation failed"
	ErrDevInvalidInput            = "invalid input"
	ErrDevCannotParseJSON         = "cannot parse JSON body"
	ErrDevCannotMarshalJSON       = "cannot marshal value to JSON"
	ErrDevServerDeadlineExceeded  = "context deadline exceeded"
	ErrDevURLParamMissing         = "missing URL parameter: %s"
	ErrDevInvalidCredentials      = "user supplied invalid credentials"
	ErrDevEmailAlreadyExists      = "email already exists"
	ErrDevFailedToHashPassword    = "failed to hash password"
	ErrDevUserNotExists           = "user does not exist"
	ErrDevHospitalNotExists       = "hospital does not exist"
	ErrDevReferralNotExists       = "referral does not exist"
	ErrDevAppointmentNotExists    = "appointment does not exist"
	ErrDevDoctorNotExists         = "doctor does not exist or is not approved"
	ErrDevNotificationQueueFull   = "notification buffer full, message dropped"
	ErrDevUnknownRole             = "role is not one of patient, doctor, hospital_admin, super_admin"
	ErrDevDraftNotFound           = "registration draft not found or expired"
	ErrDevDraftStepOutOfRange     = "step index out of range"
	ErrDevDraftStepNotReached     = "draft has not advanced to the requested step"
	ErrDevAuthTokenMissing        = "authorization token missing"
	ErrDevAuthTokenInvalid        = "authorization token invalid"
	ErrDevAuthTokenExpired        = "authorization token expired or invalid"
	ErrDevAuthGenerateToken       = "failed to generate token"
	ErrDevAuthSigningMethod       = "unexpected token signing method"
	ErrDevAccountPendingApproval  = "account approval status is pending"
	ErrDevAccountRejected         = "account approval status is rejected"
	ErrDevRoleNotAllowedForRoute  = "user role is not in the route allow-list"
	ErrDevRedisStoreSession       = "failed to store session in redis"
	ErrDevRedisGetData            = "failed to get data from redis"
	ErrDevRedisSetData            = "failed to set data in redis"
	ErrDevRedisDeleteData         = "failed to delete data from redis"
	ErrDevDBFailedToFindDocument  = "failed to find document"
	ErrDevDBFailedToInsertDocument = "failed to insert document"
	ErrDevDBFailedToUpdateDocument = "failed to update document"
	ErrDevDBFailedToDeleteDocument = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID     = "string is not a valid ObjectID"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevRabbitMQPublishMessage  = "failed to publish message to queue %s"
)
