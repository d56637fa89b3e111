package referrals

import (
	"context"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
)

type ReferralRepository interface {
	CreateReferral(ctx context.Context, referralModel *models.Referral) (referralID string, err error)
	FindByID(ctx context.Context, referralID string) (*models.Referral, error)
	FindByFilter(ctx context.Context, filter ReferralFilter, page, pageSize int) ([]models.Referral, int, error)
	UpdateReferral(ctx context.Context, referral *models.Referral) error
	DeleteByID(ctx context.Context, referralID string) error
}

// ReferralFilter narrows a listing to the caller's visibility. Empty fields
// are ignored.
type ReferralFilter struct {
	PatientID    string
	FromUserID   string
	ToHospitalID string
	Status       string
}

type ReferralUsecase interface {
	CreateReferral(ctx context.Context, session *models.Session, request *requests.CreateReferral) (*responses.Referral, error)
	GetReferral(ctx context.Context, session *models.Session, referralID string) (*responses.Referral, error)
	ListReferrals(ctx context.Context, session *models.Session, status string, pagination requests.Pagination) ([]responses.Referral, int, error)
	UpdateReferral(ctx context.Context, session *models.Session, referralID string, request *requests.UpdateReferral) (*responses.Referral, error)
	DeleteReferral(ctx context.Context, session *models.Session, referralID string) error
}
