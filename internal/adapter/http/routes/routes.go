package routes

import (
	"net/http"

	_ "crpms_ledger/docs"
	"crpms_ledger/internal/adapter/http/handlers"
	"crpms_ledger/internal/adapter/http/middleware"
	"crpms_ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the HTTP engine: public ping and swagger, everything else behind operator auth.
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(router)

	api := router.Group(cfg.APIBasePath)
	if cfg.AuthDisabled {
		log.Warn("[routes] AUTH_DISABLED is set, requests run as the local operator")
		api.Use(middleware.Anonymous())
	} else {
		api.Use(middleware.Auth([]byte(cfg.JWTSecret)))
	}

	addLedgerRoutes(api, ledgerHandlers{
		cars:     handlers.NewCarHandler(deps.Cars),
		services: handlers.NewServiceHandler(deps.Services),
		records:  handlers.NewServiceRecordHandler(deps.Records, cfg.ReportLocation),
		payments: handlers.NewPaymentHandler(deps.Payments, cfg.ReportLocation),
		reports:  handlers.NewReportHandler(deps.Reports, cfg.ReportLocation),
	})
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("[routes] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.StoreTimeout(cfg.StoreTimeout))
}

func addPingRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
