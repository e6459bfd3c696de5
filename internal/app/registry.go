package app

import (
	"go-cuti/internal/employee"
	"go-cuti/internal/leave"
	"go-cuti/internal/leavehistory"
	"go-cuti/internal/middleware"
	"go-cuti/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	rbacService rbac.Service,
) {
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L()),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	)

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)

	// --- Sources ---
	source := leavehistory.NewRepositorySource(employeeRepo, leaveRepo)
	if rdb != nil {
		source = leavehistory.NewCachedSource(source, leavehistory.NewSnapshotCache(rdb, cfg.CacheTTL))
	}

	// --- Services ---
	historyService := leavehistory.NewService(source, rbacService)

	// --- Handlers ---
	historyHandler := leavehistory.NewHandler(historyService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	leavehistory.RegisterRoutes(&router.RouterGroup, api, historyHandler, cfg.JWTSecret)
}
