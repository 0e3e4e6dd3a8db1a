package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/temirov/blogapi/internal/api/http/handler"
	"github.com/temirov/blogapi/internal/api/http/middleware"
	"github.com/temirov/blogapi/internal/api/http/router"
	"github.com/temirov/blogapi/internal/api/http/server"
	"github.com/temirov/blogapi/internal/config"
	"github.com/temirov/blogapi/internal/logger"
	"github.com/temirov/blogapi/internal/password"
	"github.com/temirov/blogapi/internal/repository/postgres"
	"github.com/temirov/blogapi/internal/service"
	"github.com/temirov/blogapi/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	articleRepo := postgres.NewArticleRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	pageViewRepo := postgres.NewPageViewRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	hasher := password.NewHasher(password.DefaultCost)

	authService := service.NewAuth(userRepo, sessionRepo, tokenManager, hasher, logger)
	userService := service.NewUser(userRepo, hasher, logger)
	articleService := service.NewArticle(articleRepo, userRepo, pageViewRepo, logger)
	pageViewService := service.NewPageView(pageViewRepo, articleRepo, logger)

	handlers := router.Handlers{
		Auth:     handler.NewAuth(authService, logger),
		User:     handler.NewUser(userService, logger),
		Article:  handler.NewArticle(articleService, logger),
		PageView: handler.NewPageView(pageViewService, logger),
		Health:   handler.NewHealth(db, logger),
	}

	gate := middleware.NewAuthenticate(tokenManager, logger)
	logging := middleware.NewLogging(logger)

	mux := router.New(handlers, gate, logging)

	srv := server.New(mux, server.Config{
		Port:               cfg.HTTP.Port,
		EnableHTTPS:        cfg.HTTP.EnableHTTPS,
		CertFileName:       cfg.HTTP.CertFileName,
		PrivateKeyFileName: cfg.HTTP.PrivateKeyFileName,
	}, logger)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := srv.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
