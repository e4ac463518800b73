package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/avdeyev/order_crm/internal/config"
	"github.com/avdeyev/order_crm/internal/es"
	"github.com/avdeyev/order_crm/internal/handlers"
	"github.com/avdeyev/order_crm/internal/logging"
	"github.com/avdeyev/order_crm/internal/loggingmw"
	"github.com/avdeyev/order_crm/internal/metrics"
	"github.com/avdeyev/order_crm/internal/mykafka"
	"github.com/avdeyev/order_crm/internal/query"
	"github.com/avdeyev/order_crm/internal/repo"
	"github.com/avdeyev/order_crm/internal/service"
	httpserver "github.com/avdeyev/order_crm/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	db, err := config.InitDB(context.Background(), configuration)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	prod := mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})

	esClient, err := es.NewClient(configuration)
	if err != nil {
		log.Fatalf("elasticsearch init: %v", err)
	}

	store := repo.NewStore(db)
	jwtSecret := []byte(configuration.JWT_SECRET)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler: &handlers.AuthHandler{Store: store, JWTSecret: jwtSecret},
		CustomerHandler: &handlers.CustomerHandler{
			Service:  service.NewCustomerService(store),
			Producer: prod,
		},
		ProductHandler: &handlers.ProductHandler{
			Service:  service.NewProductService(store),
			Producer: prod,
			Indexer:  es.NewProductIndexer(esClient, "product"),
		},
		OrderHandler: &handlers.OrderHandler{
			Service:  service.NewOrderService(store),
			Reader:   query.NewOrderReader(store),
			Producer: prod,
			Metrics:  metrics.NewOrderMetrics(),
		},
		SearchHandler: &handlers.SearchHandler{ES: esClient, Index: "product"},
		JWTSecret:     jwtSecret,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":8080",
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
