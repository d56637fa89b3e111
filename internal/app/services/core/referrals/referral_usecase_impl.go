package referrals

import (
	"context"
	"referral-service/internal/app/models"
	"referral-service/internal/app/services/core/hospitals"
	"referral-service/internal/app/services/core/users"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
	"referral-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type referralUsecase struct {
	ReferralRepository ReferralRepository
	UserRepository     users.UserRepository
	HospitalRepository hospitals.HospitalRepository
	Log                *zap.Logger
}

func NewReferralUsecase(
	referralMongoRepository ReferralRepository,
	userMongoRepository users.UserRepository,
	hospitalMongoRepository hospitals.HospitalRepository,
	logger *zap.Logger,
) ReferralUsecase {
	return &referralUsecase{
		ReferralRepository: referralMongoRepository,
		UserRepository:     userMongoRepository,
		HospitalRepository: hospitalMongoRepository,
		Log:                logger,
	}
}

func (uc *referralUsecase) CreateReferral(ctx context.Context, session *models.Session, request *requests.CreateReferral) (*responses.Referral, error) {
	patient, err := uc.UserRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Role != constvars.RoleTypePatient {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	hospital, err := uc.HospitalRepository.FindByID(ctx, request.ToHospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil || hospital.Status != constvars.HospitalStatusApproved {
		return nil, exceptions.ErrHospitalNotExist(nil)
	}

	now := time.Now()
	referral := &models.Referral{
		PatientID:    request.PatientID,
		FromUserID:   session.UserID,
		ToHospitalID: request.ToHospitalID,
		Reason:       request.Reason,
		Urgency:      request.Urgency,
		Notes:        request.Notes,
		Status:       constvars.ReferralStatusPending,
	}
	referral.CreatedAt = now
	referral.UpdatedAt = now

	referralID, err := uc.ReferralRepository.CreateReferral(ctx, referral)
	if err != nil {
		return nil, err
	}
	referral.ID = referralID

	response := buildReferralResponse(referral)
	return &response, nil
}

func (uc *referralUsecase) GetReferral(ctx context.Context, session *models.Session, referralID string) (*responses.Referral, error) {
	referral, err := uc.findVisible(ctx, session, referralID)
	if err != nil {
		return nil, err
	}
	response := buildReferralResponse(referral)
	return &response, nil
}

// ListReferrals scopes the listing to what the caller may see: patients see
// referrals about them, doctors the ones they wrote, hospital admins the ones
// addressed to their hospital, super admins everything.
func (uc *referralUsecase) ListReferrals(ctx context.Context, session *models.Session, status string, pagination requests.Pagination) ([]responses.Referral, int, error) {
	filter, err := uc.visibilityFilter(ctx, session)
	if err != nil {
		return nil, 0, err
	}
	filter.Status = status

	referralModels, total, err := uc.ReferralRepository.FindByFilter(ctx, filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	referralList := make([]responses.Referral, 0, len(referralModels))
	for _, referral := range referralModels {
		referralList = append(referralList, buildReferralResponse(&referral))
	}
	return referralList, total, nil
}

func (uc *referralUsecase) UpdateReferral(ctx context.Context, session *models.Session, referralID string, request *requests.UpdateReferral) (*responses.Referral, error) {
	referral, err := uc.findVisible(ctx, session, referralID)
	if err != nil {
		return nil, err
	}

	referral.Status = request.Status
	if request.Notes != "" {
		referral.Notes = request.Notes
	}
	referral.UpdatedAt = time.Now()

	if err := uc.ReferralRepository.UpdateReferral(ctx, referral); err != nil {
		return nil, err
	}

	response := buildReferralResponse(referral)
	return &response, nil
}

func (uc *referralUsecase) DeleteReferral(ctx context.Context, session *models.Session, referralID string) error {
	referral, err := uc.findVisible(ctx, session, referralID)
	if err != nil {
		return err
	}
	return uc.ReferralRepository.DeleteByID(ctx, referral.ID)
}

// findVisible loads a referral and applies the caller's visibility filter.
// A referral outside the caller's scope reads as not found, not forbidden.
func (uc *referralUsecase) findVisible(ctx context.Context, session *models.Session, referralID string) (*models.Referral, error) {
	referral, err := uc.ReferralRepository.FindByID(ctx, referralID)
	if err != nil {
		return nil, err
	}
	if referral == nil {
		return nil, exceptions.ErrReferralNotExist(nil)
	}

	filter, err := uc.visibilityFilter(ctx, session)
	if err != nil {
		return nil, err
	}
	if filter.PatientID != "" && referral.PatientID != filter.PatientID {
		return nil, exceptions.ErrReferralNotExist(nil)
	}
	if filter.FromUserID != "" && referral.FromUserID != filter.FromUserID {
		return nil, exceptions.ErrReferralNotExist(nil)
	}
	if filter.ToHospitalID != "" && referral.ToHospitalID != filter.ToHospitalID {
		return nil, exceptions.ErrReferralNotExist(nil)
	}
	return referral, nil
}

func (uc *referralUsecase) visibilityFilter(ctx context.Context, session *models.Session) (ReferralFilter, error) {
	switch session.Role {
	case constvars.RoleTypePatient:
		return ReferralFilter{PatientID: session.UserID}, nil
	case constvars.RoleTypeDoctor:
		return ReferralFilter{FromUserID: session.UserID}, nil
	case constvars.RoleTypeHospitalAdmin:
		admin, err := uc.UserRepository.FindByID(ctx, session.UserID)
		if err != nil {
			return ReferralFilter{}, err
		}
		if admin == nil {
			return ReferralFilter{}, exceptions.ErrUserNotExist(nil)
		}
		return ReferralFilter{ToHospitalID: admin.HospitalID}, nil
	}
	// super_admin
	return ReferralFilter{}, nil
}

func buildReferralResponse(referral *models.Referral) responses.Referral {
	return responses.Referral{
		ID:           referral.ID,
		PatientID:    referral.PatientID,
		FromUserID:   referral.FromUserID,
		ToHospitalID: referral.ToHospitalID,
		Reason:       referral.Reason,
		Urgency:      referral.Urgency,
		Notes:        referral.Notes,
		Status:       referral.Status,
		CreatedAt:    referral.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    referral.UpdatedAt.Format(time.RFC3339),
	}
}
