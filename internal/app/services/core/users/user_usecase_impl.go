package users

import (
	"context"
	"encoding/base64"
	"fmt"
	"referral-service/internal/app/config"
	"referral-service/internal/app/models"
	"referral-service/internal/app/services/shared/storage"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
	"referral-service/internal/pkg/exceptions"
	"time"
)

type userUsecase struct {
	UserRepository UserRepository
	MinioStorage   storage.Storage
	InternalConfig *config.InternalConfig
}

func NewUserUsecase(
	userMongoRepository UserRepository,
	minioStorage storage.Storage,
	internalConfig *config.InternalConfig,
) UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
		MinioStorage:   minioStorage,
		InternalConfig: internalConfig,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return buildUserProfile(user), nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	existingUser, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if existingUser == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.ProfilePicture != "" {
		request.ProfilePictureURL, err = uc.uploadProfilePicture(ctx, session.UserID, request)
		if err != nil {
			return nil, err
		}
	}

	existingUser.SetDataForUpdateProfile(request)
	existingUser.UpdatedAt = time.Now()

	if err := uc.UserRepository.UpdateUser(ctx, existingUser); err != nil {
		return nil, err
	}

	return buildUserProfile(existingUser), nil
}

func (uc *userUsecase) uploadProfilePicture(ctx context.Context, userID string, request *requests.UpdateProfile) (string, error) {
	imageData, err := base64.StdEncoding.DecodeString(request.ProfilePicture)
	if err != nil {
		return "", exceptions.ErrCannotParseJSON(err)
	}

	fileName := fmt.Sprintf("profile_%s.png", userID)
	bucketName := uc.InternalConfig.App.ProfilePictureBucket
	return uc.MinioStorage.UploadBase64Image(ctx, imageData, bucketName, fileName, ".png")
}

func (uc *userUsecase) ListUsers(ctx context.Context, role, status string, pagination requests.Pagination) ([]responses.User, int, error) {
	userModels, total, err := uc.UserRepository.FindByRoleAndStatus(ctx, role, status, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildUserList(userModels), total, nil
}

// ListDoctors scopes hospital admins to their own hospital; super admins see
// every doctor.
func (uc *userUsecase) ListDoctors(ctx context.Context, session *models.Session, pagination requests.Pagination) ([]responses.User, int, error) {
	if session.Role == constvars.RoleTypeHospitalAdmin {
		admin, err := uc.UserRepository.FindByID(ctx, session.UserID)
		if err != nil {
			return nil, 0, err
		}
		if admin == nil {
			return nil, 0, exceptions.ErrUserNotExist(nil)
		}
		userModels, total, err := uc.UserRepository.FindByHospitalAndStatus(ctx, admin.HospitalID, constvars.RoleTypeDoctor, "", pagination.Page, pagination.PageSize)
		if err != nil {
			return nil, 0, err
		}
		return buildUserList(userModels), total, nil
	}

	userModels, total, err := uc.UserRepository.FindByRoleAndStatus(ctx, constvars.RoleTypeDoctor, "", pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildUserList(userModels), total, nil
}

func (uc *userUsecase) ListPatients(ctx context.Context, pagination requests.Pagination) ([]responses.User, int, error) {
	userModels, total, err := uc.UserRepository.FindByRoleAndStatus(ctx, constvars.RoleTypePatient, "", pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildUserList(userModels), total, nil
}

func buildUserProfile(user *models.User) *responses.UserProfile {
	return &responses.UserProfile{
		ID:                user.ID,
		Role:              user.Role,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Email:             user.Email,
		Phone:             user.Phone,
		Address:           user.Address,
		ApprovalStatus:    user.ApprovalStatus,
		ProfilePictureURL: user.ProfilePictureURL,
	}
}

func buildUserList(userModels []models.User) []responses.User {
	userList := make([]responses.User, 0, len(userModels))
	for _, user := range userModels {
		userList = append(userList, responses.User{
			ID:             user.ID,
			Role:           user.Role,
			FirstName:      user.FirstName,
			LastName:       user.LastName,
			Email:          user.Email,
			Phone:          user.Phone,
			ApprovalStatus: user.ApprovalStatus,
			HospitalID:     user.HospitalID,
			Specialization: user.Specialization,
			Department:     user.Department,
			CreatedAt:      user.CreatedAt.Format(time.RFC3339),
		})
	}
	return userList
}
