package redis

import (
	"context"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) CreateSession(ctx context.Context, sessionID string, session *models.Session, exp time.Duration) error {
	return r.Set(ctx, sessionID, session, exp)
}

func (r *redisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := r.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &session, nil
}

func (r *redisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Delete(ctx, sessionID)
}

func (r *redisRepository) SaveDraft(ctx context.Context, draft *models.RegistrationDraft, exp time.Duration) error {
	return r.Set(ctx, constvars.RedisKeyRegistrationDraftPrefix+draft.ID, draft, exp)
}

func (r *redisRepository) GetDraft(ctx context.Context, draftID string) (*models.RegistrationDraft, error) {
	data, err := r.Get(ctx, constvars.RedisKeyRegistrationDraftPrefix+draftID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}
	var draft models.RegistrationDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &draft, nil
}

func (r *redisRepository) DeleteDraft(ctx context.Context, draftID string) error {
	return r.Delete(ctx, constvars.RedisKeyRegistrationDraftPrefix+draftID)
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := r.client.Set(ctx, key, jsonValue, exp).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return data, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
