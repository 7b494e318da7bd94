package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/malidadi/storefront/internal/config"
	kafkax "github.com/malidadi/storefront/internal/kafka"
	"github.com/malidadi/storefront/internal/mailer"
	"github.com/malidadi/storefront/internal/notifier"
	"github.com/malidadi/storefront/internal/orders"
	"github.com/malidadi/storefront/internal/redisx"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &notifier.Service{
		Redis:       rdb,
		Mailer:      mailer.New(cfg.MailerURL),
		ServiceName: cfg.ServiceName + "-notifier",
	}

	group := getenv("NOTIFIER_GROUP", "notifier-svc")
	workers := mustAtoi(os.Getenv("NOTIFIER_WORKERS"), "4")

	ordersCons := kafkax.NewConsumer(cfg.KafkaBrokers, group, orders.TopicOrderPlaced, workers)
	newsCons := kafkax.NewConsumer(cfg.KafkaBrokers, group, orders.TopicNewsletterSubscribed, workers)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("notifier consumer started: group=%s topic=%s workers=%d", group, orders.TopicOrderPlaced, workers)
		return ordersCons.Start(gctx, svc.HandleOrderPlaced)
	})
	g.Go(func() error {
		log.Printf("notifier consumer started: group=%s topic=%s workers=%d", group, orders.TopicNewsletterSubscribed, workers)
		return newsCons.Start(gctx, svc.HandleNewsletterSubscribed)
	})

	if err := g.Wait(); err != nil {
		log.Printf("consumer exit: %v", err)
	}
	log.Println("notifier stopped")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}
