package auth

import (
	"context"
	"referral-service/internal/app/config"
	"referral-service/internal/app/models"
	"referral-service/internal/app/services/core/users"
	redisRepo "referral-service/internal/app/services/shared/redis"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
	"referral-service/internal/pkg/exceptions"
	"referral-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  users.UserRepository
	RedisRepository redisRepo.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	userMongoRepository users.UserRepository,
	redisRepository redisRepo.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		UserRepository:  userMongoRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

// Login checks credentials and opens a session. Users awaiting approval can
// still sign in; route guarding surfaces their approval status instead of a
// dashboard.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	// Identical failure for unknown email and wrong password.
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionExp := time.Hour * time.Duration(uc.InternalConfig.App.SessionExpTimeInHour)
	sessionID := utils.GenerateSessionID()
	session := &models.Session{
		UserID:         user.ID,
		Role:           user.Role,
		Email:          user.Email,
		ApprovalStatus: user.ApprovalStatus,
	}
	if err := uc.RedisRepository.CreateSession(ctx, sessionID, session, sessionExp); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, sessionExp)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token: token,
		User: &responses.UserProfile{
			ID:                user.ID,
			Role:              user.Role,
			FirstName:         user.FirstName,
			LastName:          user.LastName,
			Email:             user.Email,
			Phone:             user.Phone,
			Address:           user.Address,
			ApprovalStatus:    user.ApprovalStatus,
			ProfilePictureURL: user.ProfilePictureURL,
		},
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.DeleteSession(ctx, sessionID)
}
