package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/malidadi/storefront/internal/admin"
	"github.com/malidadi/storefront/internal/cart"
	"github.com/malidadi/storefront/internal/catalog"
	"github.com/malidadi/storefront/internal/checkout"
	"github.com/malidadi/storefront/internal/config"
	"github.com/malidadi/storefront/internal/httpx"
	kafkax "github.com/malidadi/storefront/internal/kafka"
	"github.com/malidadi/storefront/internal/orders"
	"github.com/malidadi/storefront/internal/postgres"
	"github.com/malidadi/storefront/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB (admin product overlay)
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producers
	orderProd := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicOrderPlaced, 1024)
	orderProd.Start(ctx)
	newsProd := kafkax.NewProducer(cfg.KafkaBrokers, orders.TopicNewsletterSubscribed, 1024)
	newsProd.Start(ctx)

	// Stores & services
	cartStore := cart.NewStore(redisx.NewCartStorage(rdb))
	unsub := cartStore.Subscribe(func(sessionID string, count int) {
		log.Printf("cart updated: session=%s items=%d", sessionID, count)
	})
	defer unsub()

	productRepo := &admin.Repo{DB: db}
	catalogSvc := admin.NewService(catalog.Seed, productRepo)
	machine := checkout.NewMachine(cartStore)

	auth, err := admin.NewAuth(cfg.AdminEmail, cfg.AdminPassword, rdb)
	if err != nil {
		log.Fatalf("admin auth: %v", err)
	}

	// Router & handlers
	router := httpx.NewRouter()
	sh := &httpx.StorefrontHandler{
		Catalog:     catalogSvc,
		Cart:        cartStore,
		Checkout:    machine,
		OrderEvents: orderProd,
		NewsEvents:  newsProd,
		Redis:       rdb,
		Service:     cfg.ServiceName,
	}
	sh.Register(router)
	ah := &httpx.AdminHandler{Auth: auth, Products: productRepo, Catalog: catalogSvc}
	ah.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	orderProd.Close() // close inbox -> flush & close writer
	newsProd.Close()
	cancel()
	orderProd.WaitClosed()
	newsProd.WaitClosed()
}
