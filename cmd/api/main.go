package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/emon00007/easysubstech/docs"
	"github.com/emon00007/easysubstech/internal/api"
	"github.com/emon00007/easysubstech/internal/core/ports"
	"github.com/emon00007/easysubstech/internal/core/service"
	"github.com/emon00007/easysubstech/internal/infrastructure/config"
	"github.com/emon00007/easysubstech/internal/infrastructure/db/memory"
	mongodb "github.com/emon00007/easysubstech/internal/infrastructure/db/mongo"
	redisdb "github.com/emon00007/easysubstech/internal/infrastructure/db/redis"
	"github.com/emon00007/easysubstech/internal/infrastructure/mail"
	"github.com/emon00007/easysubstech/internal/infrastructure/payment"
	"github.com/emon00007/easysubstech/internal/infrastructure/queue"
	"github.com/emon00007/easysubstech/pkg/logger"
)

// @title           EasySubsTech API
// @version         1.0
// @description     HTTP API for the EasySubsTech platform: users, service catalog, payments, and email OTP verification.
// @BasePath        /
func main() {
	// A missing .env file is fine in containerized deployments.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure user indexes")
	}
	if err := serviceRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure service indexes")
	}
	if err := paymentRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure payment indexes")
	}

	// --- OTP store (in-process by default, Redis when configured) ---
	var (
		rdb      *redis.Client
		otpStore ports.OTPStore
	)
	if cfg.OTPStore == "redis" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = rdb.Close()
		}()
		otpStore = redisdb.NewOTPStore(rdb)
	} else {
		otpStore = memory.NewOTPStore()
	}

	// --- Collaborators ---
	mailer := mail.NewMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey)

	dispatcher := queue.NewMailDispatcher(cfg.MailWorkers, mailer, log)
	dispatcher.Start(ctx)

	// --- Services ---
	deps := api.Deps{
		Users:    service.NewUserService(userRepo, log),
		Catalog:  service.NewCatalogService(serviceRepo, log),
		Payments: service.NewPaymentService(paymentRepo, gateway, dispatcher, log),
		OTP:      service.NewOTPService(otpStore, userRepo, mailer, log),
		Mongo:    db,
		Redis:    rdb,
	}

	e := api.NewRouter(deps, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	// Stop mail workers after the server has drained in-flight requests.
	cancel()
}
