package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sppd-activity/config"
	_ "sppd-activity/docs" // Swagger docs
	activityHTTP "sppd-activity/internal/activity/delivery/http"
	gcalRepo "sppd-activity/internal/activity/repository/gcal"
	sheetsRepo "sppd-activity/internal/activity/repository/gsheets"
	"sppd-activity/internal/activity/usecase"
	"sppd-activity/internal/eventmeta"
	"sppd-activity/internal/httpserver"
	"sppd-activity/internal/middleware"
	"sppd-activity/pkg/datemath"
	"sppd-activity/pkg/gauth"
	"sppd-activity/pkg/gcalendar"
	"sppd-activity/pkg/gsheets"
	"sppd-activity/pkg/log"
)

// @title       SPPD Activity Matrix API
// @description Records calendar events into the monthly activity matrix and manages their dispositions.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey ApiKeyAuth
// @in   header
// @name X-API-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SPPD activity service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Spreadsheet: %s, calendar: %s", cfg.Google.SpreadsheetID, cfg.Google.CalendarID)

	// 3. Date math + matrix layout
	dateMathParser, err := datemath.NewParser(cfg.Google.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Google.Timezone, err)
		return
	}
	layout, err := cfg.Matrix.Layout(dateMathParser.Location())
	if err != nil {
		logger.Errorf(ctx, "Invalid matrix layout: %v", err)
		return
	}

	// 4. Google clients
	httpClient, err := gauth.HTTPClientFromFile(ctx, cfg.Google.CredentialsPath, cfg.Google.TokenPath, gauth.Scopes...)
	if err != nil {
		logger.Errorf(ctx, "Google credentials not usable: %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		return
	}
	calendarClient, err := gcalendar.NewClient(ctx, httpClient, dateMathParser.Location())
	if err != nil {
		logger.Errorf(ctx, "Failed to create Google Calendar client: %v", err)
		return
	}
	sheetsClient, err := gsheets.NewClient(ctx, httpClient)
	if err != nil {
		logger.Errorf(ctx, "Failed to create Google Sheets client: %v", err)
		return
	}
	logger.Info(ctx, "✅ Google Calendar and Sheets initialized")

	// 5. Activity domain
	matrixRepo := sheetsRepo.New(sheetsClient, cfg.Google.SpreadsheetID, layout, logger)
	eventRepo := gcalRepo.New(calendarClient, cfg.Google.CalendarID, logger)

	vocab := eventmeta.DefaultVocabulary()
	vocab.StorageHost = cfg.Description.StorageHost
	parser := eventmeta.NewParser(vocab)

	activityUC := usecase.New(logger, matrixRepo, eventRepo, parser, dateMathParser, usecase.Config{
		Layout:             layout,
		SheetPrefix:        cfg.Matrix.SheetPrefix,
		VerifyBeforeCommit: cfg.Matrix.VerifyBeforeCommit,
	})
	activityHandler := activityHTTP.New(logger, activityUC, dateMathParser)

	if cfg.Security.APIKey == "" {
		logger.Warn(ctx, "security.api_key is empty, API routes are not protected")
	}
	mw := middleware.New(logger, middleware.Config{
		APIKey:          cfg.Security.APIKey,
		RateLimitPerMin: cfg.Security.RateLimitPerMin,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Backends: httpserver.Backends{
			SpreadsheetID: cfg.Google.SpreadsheetID,
			CalendarID:    cfg.Google.CalendarID,
			Timezone:      cfg.Google.Timezone,
			AuthEnabled:   cfg.Security.APIKey != "",
		},
		ActivityHandler: activityHandler,
		Middleware:      mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
