// File: marhaba/main.go
package main

import (
	"marhaba/config"
	"marhaba/database"
	sessionRepo "marhaba/database/repository/session"
	"marhaba/services/auth"
	"marhaba/services/catalog"
	"marhaba/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	collections, err := database.InitDB()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load seed dataset: %v", err)
	}

	// services.
	catalogService := catalog.NewDefaultCatalogService(
		collections.Experiences,
		collections.Bookings,
		collections.Reviews,
	)
	catalogService.MarkReady()

	sessions := sessionRepo.NewFileSessionRepo(config.AppConfig.SessionFile)
	authService := auth.NewDefaultAuthService(sessions, auth.FixedDelay{D: config.AuthLatency()})

	experiences, err := catalogService.Experiences()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to read catalog: %v", err)
	}

	logger.Info("marhaba catalog ready",
		zap.Int("experiences", len(experiences)),
		zap.Bool("authenticated", authService.IsAuthenticated()),
	)
}
