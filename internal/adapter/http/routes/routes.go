package routes

import (
	_ "billing_codes/docs" // registers the swagger spec
	"billing_codes/internal/adapter/http/handlers"
	"billing_codes/internal/infrastructure/config"
	"billing_codes/internal/infrastructure/payments"
	"billing_codes/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run will start the server
func Run(cfg config.Config, logger *zap.Logger) error {
	router := NewRouter(cfg, logger)
	logger.Info("[http][server] listening", zap.String("addr", cfg.Addr()))
	return router.Run(cfg.Addr())
}

// NewRouter wires the translator use case, handlers and middlewares.
func NewRouter(cfg config.Config, logger *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	translationUseCase := usecase.NewTranslationUseCase(
		logger,
		payments.NewGooglePlayStatusTranslator(),
		payments.NewMercadoPagoStatusTranslator(),
	)
	translationHandler := handlers.NewTranslationHandler(translationUseCase, logger)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCodeRoutes(v1, translationHandler)

	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(RequestID())
	router.Use(AccessLog(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("[http][server] recovered from panic",
			zap.Any("panic", recovered),
			zap.String("request_id", c.GetString(RequestIDKey)))
		c.AbortWithStatus(500)
	}))
}
