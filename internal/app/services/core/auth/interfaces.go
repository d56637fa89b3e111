package auth

import (
	"context"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
}
