package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/seatbook/config"
	"github.com/Domenick1991/seatbook/internal/kafka"
	"github.com/Domenick1991/seatbook/internal/logger"
	"github.com/Domenick1991/seatbook/internal/notify"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.New(logger.Config{}).Fatal("load config", "path", cfgPath, "error", err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Service: "seatbook-worker"})

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("kafka brokers are not configured")
	}

	topic := cfg.Kafka.NotificationsTopic
	if topic == "" {
		topic = cfg.Kafka.BookingEventsTopic
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, topic)
	defer consumer.Close()

	notifier := notify.NewNotifier(log)

	log.Info("worker started", "topic", topic, "group_id", cfg.Kafka.GroupID)

	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeBookingEvent(msg)
		if err != nil {
			log.Warn("skipping malformed event", "error", err)
			return nil
		}
		return notifier.Send(ctx, event)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("consumer stopped", "error", err)
	}
	log.Info("worker stopped")
}
