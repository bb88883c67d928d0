package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	businessapp "github.com/muhammadheryan/tamirse/application/business"
	notificationapp "github.com/muhammadheryan/tamirse/application/notification"
	requestapp "github.com/muhammadheryan/tamirse/application/request"
	userapp "github.com/muhammadheryan/tamirse/application/user"
	"github.com/muhammadheryan/tamirse/cmd/config"
	redisclient "github.com/muhammadheryan/tamirse/cmd/redis"
	_ "github.com/muhammadheryan/tamirse/docs"
	"github.com/muhammadheryan/tamirse/migration"
	businessRepo "github.com/muhammadheryan/tamirse/repository/business"
	messageRepo "github.com/muhammadheryan/tamirse/repository/message"
	notificationRepo "github.com/muhammadheryan/tamirse/repository/notification"
	redisRepo "github.com/muhammadheryan/tamirse/repository/redis"
	requestRepo "github.com/muhammadheryan/tamirse/repository/request"
	txRepo "github.com/muhammadheryan/tamirse/repository/tx"
	userRepo "github.com/muhammadheryan/tamirse/repository/user"
	"github.com/muhammadheryan/tamirse/thirdparty/rabbitmq"
	"github.com/muhammadheryan/tamirse/transport"
	"github.com/muhammadheryan/tamirse/utils/logger"
	"github.com/muhammadheryan/tamirse/utils/metrics"
	"go.uber.org/zap"
)

// @title TAMIRSE API
// @version 1.0
// @description Repair marketplace API: customers request vehicle repairs, businesses manage them
// @host localhost:8000
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	db, err := sqlx.Connect("postgres", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migration.Up(db.DB); err != nil {
			logger.Fatal("err migrate db", zap.Error(err))
		}
		logger.Info("database schema up to date")
	}

	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	publisher, err := rabbitmq.NewPublisher(cfg.GetAMQPURL())
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer publisher.Close()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	BusinessRepo := businessRepo.NewBusinessRepository(db)
	RequestRepo := requestRepo.NewRequestRepository(db)
	MessageRepo := messageRepo.NewMessageRepository(db)
	NotificationRepo := notificationRepo.NewNotificationRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, TxRepo, UserRepo, BusinessRepo, RedisRepo)
	BusinessApp := businessapp.NewBusinessApp(BusinessRepo)
	RequestApp := requestapp.NewRequestApp(TxRepo, RequestRepo, BusinessRepo, MessageRepo, publisher)
	NotificationApp := notificationapp.NewNotificationApp(NotificationRepo)

	httpTransport := transport.NewTransport(cfg, metrics.New(), UserApp, BusinessApp, RequestApp, NotificationApp)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := serve(ctx, server, 10*time.Second); err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}

// serve runs server until it fails or ctx is done, then drains in-flight
// requests for up to grace
func serve(ctx context.Context, server *http.Server, grace time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
