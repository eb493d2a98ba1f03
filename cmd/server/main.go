package main

import (
	"log"
	"net/http"
	"strings"

	_ "lostfound/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"lostfound/internal/auth"
	"lostfound/internal/cache"
	"lostfound/internal/config"
	"lostfound/internal/db"
	"lostfound/internal/detect"
	"lostfound/internal/handler"
	"lostfound/internal/notify"
	"lostfound/internal/repository"
	"lostfound/internal/router"
	"lostfound/internal/service"
)

// @title Lost and Found API
// @version 1.0
// @description Registry of lost and found items, their owners and administrators.
// @host localhost:3001
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.DSN())
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		db.Reset(gormDB)
		log.Println("Tables dropped")
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	// Initialize repositories
	itemRepo := repository.NewItemRepository(gormDB)
	ownerRepo := repository.NewOwnerRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	var notifier notify.Notifier = notify.NewLogNotifier(nil)
	if cfg.Mail.SMTPHost != "" {
		notifier = notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			User:     cfg.Mail.SMTPUser,
			Password: cfg.Mail.SMTPPassword,
			From:     cfg.Mail.From,
		})
	}

	// Initialize services
	itemService := service.NewItemService(itemRepo, cacheClient, notifier)
	userService := service.NewUserService(ownerRepo, itemRepo, cacheClient)
	adminService := service.NewAdminService(adminRepo, jwtService, tokenStore)

	// Initialize handlers
	itemHandler := handler.NewItemHandler(itemService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(adminService)
	detectionHandler := handler.NewDetectionHandler(detect.NewSimulated(nil))

	router.Register(
		e,
		cfg,
		itemHandler,
		userHandler,
		adminHandler,
		detectionHandler,
		tokenStore,
	)

	log.Printf("Swagger documentation available at: %s", swaggerURL(cfg))

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// swaggerURL builds the documentation URL from SWAGGER_HOST, which may
// already carry a scheme.
func swaggerURL(cfg *config.Config) string {
	host := cfg.SwaggerHost
	if host == "" {
		host = "localhost:" + cfg.ServerPort
	}
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return host + "/swagger/index.html"
}
