package hospitals

import (
	"context"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
)

type HospitalRepository interface {
	CreateHospital(ctx context.Context, hospitalModel *models.Hospital) (hospitalID string, err error)
	FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error)
	FindByStatus(ctx context.Context, status string, page, pageSize int) ([]models.Hospital, int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	UpdateHospital(ctx context.Context, hospital *models.Hospital) error
	DeleteByID(ctx context.Context, hospitalID string) error
}

type HospitalUsecase interface {
	ListApproved(ctx context.Context) ([]responses.ApprovedHospital, error)
	ListHospitals(ctx context.Context, status string, pagination requests.Pagination) ([]responses.Hospital, int, error)
	GetHospital(ctx context.Context, hospitalID string) (*responses.Hospital, error)
	CreateHospital(ctx context.Context, request *requests.CreateHospital) (*responses.Hospital, error)
	UpdateHospital(ctx context.Context, hospitalID string, request *requests.UpdateHospital) (*responses.Hospital, error)
	DeleteHospital(ctx context.Context, hospitalID string) error
}
