package approvals

import (
	"context"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
)

type ApprovalUsecase interface {
	ListPendingUsers(ctx context.Context, role string, pagination requests.Pagination) ([]responses.User, int, error)
	ListPendingDoctors(ctx context.Context, session *models.Session, pagination requests.Pagination) ([]responses.User, int, error)
	ListPendingHospitals(ctx context.Context, pagination requests.Pagination) ([]responses.Hospital, int, error)

	ApproveUser(ctx context.Context, session *models.Session, userID string, request *requests.ApproveRecord) error
	RejectUser(ctx context.Context, session *models.Session, userID string, request *requests.RejectRecord) error
	ApproveHospital(ctx context.Context, hospitalID string, request *requests.ApproveRecord) error
	RejectHospital(ctx context.Context, hospitalID string, request *requests.RejectRecord) error

	Stats(ctx context.Context) (*responses.ApprovalStats, error)
}
