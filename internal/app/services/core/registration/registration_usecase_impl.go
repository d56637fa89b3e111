package registration

import (
	"context"
	"referral-service/internal/app/config"
	"referral-service/internal/app/models"
	"referral-service/internal/app/services/core/hospitals"
	"referral-service/internal/app/services/core/users"
	"referral-service/internal/app/services/shared/notifications"
	redisRepo "referral-service/internal/app/services/shared/redis"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
	"referral-service/internal/pkg/exceptions"
	"referral-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type registrationUsecase struct {
	UserRepository      users.UserRepository
	HospitalRepository  hospitals.HospitalRepository
	RedisRepository     redisRepo.RedisRepository
	NotificationService notifications.NotificationService
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

func NewRegistrationUsecase(
	userMongoRepository users.UserRepository,
	hospitalMongoRepository hospitals.HospitalRepository,
	redisRepository redisRepo.RedisRepository,
	notificationService notifications.NotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) RegistrationUsecase {
	return &registrationUsecase{
		UserRepository:      userMongoRepository,
		HospitalRepository:  hospitalMongoRepository,
		RedisRepository:     redisRepository,
		NotificationService: notificationService,
		InternalConfig:      internalConfig,
		Log:                 logger,
	}
}

func (uc *registrationUsecase) draftTTL() time.Duration {
	return time.Minute * time.Duration(uc.InternalConfig.App.RegistrationDraftTTLInMinute)
}

// Begin opens a new draft. Selecting the role is step 0; an empty or unknown
// role never produces a draft, so the wizard cannot proceed without one.
func (uc *registrationUsecase) Begin(ctx context.Context, request *requests.BeginRegistration) (*responses.BeginRegistration, error) {
	role, err := models.ParseRole(request.Role)
	if err != nil {
		return nil, err
	}

	draft := &models.RegistrationDraft{
		ID:       utils.GenerateDraftID(),
		Role:     role.String(),
		NextStep: StepPersonalInfo,
		Fields:   map[string]string{FieldRole: role.String()},
	}

	if err := uc.RedisRepository.SaveDraft(ctx, draft, uc.draftTTL()); err != nil {
		return nil, err
	}

	return &responses.BeginRegistration{
		DraftID:       draft.ID,
		Role:          draft.Role,
		NextStep:      draft.NextStep,
		OptionalSteps: OptionalSteps(role),
	}, nil
}

// SubmitStep merges a step's values into the draft and gates advancement on
// the step's field set. Submitting the password step with a fully valid
// merged draft completes registration.
func (uc *registrationUsecase) SubmitStep(ctx context.Context, draftID string, step int, request *requests.SubmitStep) (*responses.SubmitStep, error) {
	if step < 0 || step >= StepCount {
		return nil, exceptions.ErrDraftStepOutOfRange(nil)
	}

	draft, err := uc.RedisRepository.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, exceptions.ErrDraftNotFound(nil)
	}

	// Re-selecting the role restarts the wizard: every previously entered
	// value is discarded and only the new role survives. Observed behavior
	// of the original flow, kept as-is.
	if step == StepRole {
		if newRole, ok := request.Fields[FieldRole]; ok && newRole != draft.Role {
			role, err := models.ParseRole(newRole)
			if err != nil {
				return nil, err
			}
			draft.Role = role.String()
			draft.Fields = map[string]string{FieldRole: role.String()}
			draft.NextStep = StepPersonalInfo
			if err := uc.RedisRepository.SaveDraft(ctx, draft, uc.draftTTL()); err != nil {
				return nil, err
			}
			return &responses.SubmitStep{
				DraftID:  draft.ID,
				Step:     step,
				NextStep: draft.NextStep,
			}, nil
		}
	}

	if step > draft.NextStep {
		return nil, exceptions.ErrDraftStepNotReached(nil)
	}

	role, err := models.ParseRole(draft.Role)
	if err != nil {
		return nil, err
	}

	for field, value := range request.Fields {
		draft.Fields[field] = value
	}
	// The role is owned by step 0; later steps cannot mutate it sideways.
	draft.Fields[FieldRole] = draft.Role

	fieldErrors := ValidateStep(step, role, draft.Fields)
	if len(fieldErrors) > 0 {
		return &responses.SubmitStep{
			DraftID:     draft.ID,
			Step:        step,
			NextStep:    draft.NextStep,
			FieldErrors: fieldErrors,
		}, nil
	}

	if step == StepPassword {
		return uc.complete(ctx, draft, role)
	}

	if step == draft.NextStep {
		draft.NextStep++
	}
	if err := uc.RedisRepository.SaveDraft(ctx, draft, uc.draftTTL()); err != nil {
		return nil, err
	}

	return &responses.SubmitStep{
		DraftID:  draft.ID,
		Step:     step,
		NextStep: draft.NextStep,
	}, nil
}

// complete validates the merged draft against the full ruleset and creates
// the account. The draft is deleted only after the user record exists.
func (uc *registrationUsecase) complete(ctx context.Context, draft *models.RegistrationDraft, role models.Role) (*responses.SubmitStep, error) {
	ruleset := RulesetForRole(role)
	if fieldErrors := ValidateAll(ruleset, draft.Fields); len(fieldErrors) > 0 {
		return &responses.SubmitStep{
			DraftID:     draft.ID,
			Step:        StepPassword,
			NextStep:    draft.NextStep,
			FieldErrors: fieldErrors,
		}, nil
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, draft.Fields[FieldEmail])
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	if hospitalID := draft.Fields[FieldHospitalID]; hospitalID != "" {
		hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
		if err != nil {
			return nil, err
		}
		if hospital == nil || hospital.Status != constvars.HospitalStatusApproved {
			return nil, exceptions.ErrHospitalNotExist(nil)
		}
	}

	hashedPassword, err := utils.HashPassword(draft.Fields[FieldPassword])
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Role:           draft.Role,
		FirstName:      draft.Fields[FieldFirstName],
		LastName:       draft.Fields[FieldLastName],
		Email:          draft.Fields[FieldEmail],
		Phone:          draft.Fields[FieldPhone],
		DateOfBirth:    draft.Fields[FieldDateOfBirth],
		Gender:         draft.Fields[FieldGender],
		Address:        draft.Fields[FieldAddress],
		Password:       hashedPassword,
		HospitalID:     draft.Fields[FieldHospitalID],
		Specialization: draft.Fields[FieldSpecialization],
		LicenseNumber:  draft.Fields[FieldLicenseNumber],
		Experience:     draft.Fields[FieldExperience],
		Qualification:  draft.Fields[FieldQualification],
		Department:     draft.Fields[FieldDepartment],
		Position:       draft.Fields[FieldPosition],
		ApprovalStatus: initialApprovalStatus(role),
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	// Notification delivery is best-effort; the account already exists and
	// the user can retry verification from the login screen.
	notifyErr := uc.NotificationService.Publish(ctx, &notifications.NotificationMessage{
		Type:      constvars.NotificationTypeRegistration,
		Recipient: user.Email,
		Data: map[string]string{
			"userId":    userID,
			"firstName": user.FirstName,
			"role":      user.Role,
		},
	})
	if notifyErr != nil {
		uc.Log.Warn("registration notification publish failed", zap.Error(notifyErr))
	}

	if err := uc.RedisRepository.DeleteDraft(ctx, draft.ID); err != nil {
		uc.Log.Warn("registration draft cleanup failed", zap.Error(err))
	}

	return &responses.SubmitStep{
		DraftID:   draft.ID,
		Step:      StepPassword,
		NextStep:  StepCount,
		Completed: true,
	}, nil
}

// Staff roles wait for an explicit approval; patients and the bootstrap
// super admin can sign in right away.
func initialApprovalStatus(role models.Role) string {
	switch role {
	case models.RoleDoctor, models.RoleHospitalAdmin:
		return constvars.ApprovalStatusPending
	case models.RolePatient, models.RoleSuperAdmin:
		return constvars.ApprovalStatusApproved
	}
	return constvars.ApprovalStatusPending
}
