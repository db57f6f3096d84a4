package main

import (
	"fmt"
	"os"

	"billing_codes/internal/adapter/http/routes"
	"billing_codes/internal/infrastructure/config"
	"billing_codes/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Billing Codes API
// @version         1.0
// @description     Translates Google Play in-app billing codes into the internal purchase vocabulary.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create zap logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Billing codes service starting...", zap.Int("port", cfg.Port), zap.String("gin_mode", cfg.GinMode))

	if err := routes.Run(cfg, appLogger); err != nil {
		appLogger.Fatal("Failed to startup the application", zap.Error(err))
	}
}
