package app

import (
	"go-leave/internal/leave"
	"go-leave/internal/ledger"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"
	"go-leave/internal/shared/txmanager"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	txm := txmanager.NewTransactionManager(gormDB)

	// --- Repositories ---
	ledgerRepo := ledger.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	ledgerService := ledger.NewService(txm, ledgerRepo, rdb)
	leaveService := leave.NewServiceWithOutbox(txm, leaveRepo, ledgerService, outboxRepo)

	// --- Handlers ---
	ledgerHandler := ledger.NewHandler(ledgerService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)

	// --- Routes Registration ---
	router.NoRoute(func(c *gin.Context) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	})

	api := router.Group("/api/v1")
	api.Use(middleware.RequestID(), middleware.RateLimitByIP(50, 100))
	{
		leave.RegisterRoutes(api, leaveHandler, rbacService, rdb)
		ledger.RegisterRoutes(api, ledgerHandler, rbacService)
	}

	return nil
}
