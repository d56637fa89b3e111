package middlewares

import (
	"referral-service/internal/app/config"
	redisRepo "referral-service/internal/app/services/shared/redis"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	RedisRepository redisRepo.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(redisRepository redisRepo.RedisRepository, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		Log:             logger,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}
