package users

import (
	"context"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRoleAndStatus(ctx context.Context, role, status string, page, pageSize int) ([]models.User, int, error)
	FindByHospitalAndStatus(ctx context.Context, hospitalID, role, status string, page, pageSize int) ([]models.User, int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	CountByRoleAndStatus(ctx context.Context, role, status string) (int, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID string) error
}

type UserUsecase interface {
	GetProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error)
	ListUsers(ctx context.Context, role, status string, pagination requests.Pagination) ([]responses.User, int, error)
	ListDoctors(ctx context.Context, session *models.Session, pagination requests.Pagination) ([]responses.User, int, error)
	ListPatients(ctx context.Context, pagination requests.Pagination) ([]responses.User, int, error)
}
