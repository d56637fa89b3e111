package redis

import (
	"context"
	"referral-service/internal/app/models"
	"time"
)

type RedisRepository interface {
	CreateSession(ctx context.Context, sessionID string, session *models.Session, exp time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error

	SaveDraft(ctx context.Context, draft *models.RegistrationDraft, exp time.Duration) error
	GetDraft(ctx context.Context, draftID string) (*models.RegistrationDraft, error)
	DeleteDraft(ctx context.Context, draftID string) error

	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
