package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/tamirse/cmd/config"
	"github.com/muhammadheryan/tamirse/thirdparty/rabbitmq"
	"github.com/muhammadheryan/tamirse/utils/logger"
	"go.uber.org/zap"
)

// Drains notification_queue and stores each event through the API's
// internal endpoint.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	log := logger.Named("consumer")
	if cfg.Internal.APIKey == "" {
		log.Fatal("INTERNAL_API_KEY is required")
	}

	consumer, err := rabbitmq.NewConsumer(cfg.GetAMQPURL(), cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		log.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done, err := consumer.Start(ctx)
	if err != nil {
		log.Fatal("err start consumer", zap.Error(err))
	}
	log.Info("notification consumer running", zap.String("api_url", cfg.Internal.APIURL))

	<-done
	if ctx.Err() == nil {
		// the broker went away; exit so the supervisor restarts us
		log.Error("notification consumer stopped: delivery channel closed")
		consumer.Close()
		logger.Close()
		os.Exit(1)
	}
	log.Info("notification consumer stopping")
}
