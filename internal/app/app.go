package app

import (
	"go-cuti/internal/rbac"
	"go-cuti/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg Config) error {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, 5)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
		logger.Info("redis connection established")
	} else {
		logger.Warn("REDIS_ADDR not set, leave history cache disabled")
	}

	// --- RBAC Core ---
	rbacService, err := rbac.NewServiceForRoles(cfg.ElevatedRoles)
	if err != nil {
		return err
	}

	registerModules(router, cfg, gormDB, redisClient, rbacService)
	return nil
}
