package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/nikolayk812/foodorder-demo/internal/cart"
	"github.com/nikolayk812/foodorder-demo/internal/catalog"
	"github.com/nikolayk812/foodorder-demo/internal/checkout"
	"github.com/nikolayk812/foodorder-demo/internal/config"
	"github.com/nikolayk812/foodorder-demo/internal/db"
	"github.com/nikolayk812/foodorder-demo/internal/events"
	"github.com/nikolayk812/foodorder-demo/internal/httpapi"
	"github.com/nikolayk812/foodorder-demo/internal/payment"
	"github.com/nikolayk812/foodorder-demo/internal/repository"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	repo, err := repository.NewCatalog(pool)
	if err != nil {
		log.Fatalf("create catalog repository: %v", err)
	}

	cat, err := catalog.Load(ctx, repo)
	if err != nil || len(cat.All()) == 0 {
		if err != nil {
			log.Printf("load catalog from database: %v, falling back to built-in data", err)
		} else {
			log.Printf("catalog table is empty, falling back to built-in data")
		}
		cat = catalog.Default()
	}

	var publisher checkout.OrderPublisher
	if cfg.RabbitURL != "" {
		conn, err := amqp.Dial(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("connect to RabbitMQ: %v", err)
		}
		defer conn.Close()

		p, err := events.NewPublisher(conn)
		if err != nil {
			log.Fatalf("create event publisher: %v", err)
		}
		defer p.Close()

		publisher = p
	}

	intents, err := payment.NewClient(cfg.PaymentEndpoint, &http.Client{Timeout: cfg.PaymentTimeout})
	if err != nil {
		log.Fatalf("create payment client: %v", err)
	}

	orchestrator, err := checkout.New(intents, &payment.AutoConfirmSheet{}, publisher, checkout.Config{
		MerchantName: cfg.MerchantName,
		Currency:     cfg.Currency,
		DeliveryFee:  cfg.DeliveryFee,
		Discount:     cfg.Discount,
	})
	if err != nil {
		log.Fatalf("create checkout orchestrator: %v", err)
	}

	carts := cart.NewRegistry(cfg.Currency)

	router := httpapi.NewRouter(
		httpapi.NewMenuHandler(repo, cat),
		httpapi.NewCartHandler(carts, repo),
		httpapi.NewCheckoutHandler(orchestrator, carts),
		30*time.Second,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
