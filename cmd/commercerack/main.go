package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/commercerack/commercerack-go/internal/cart"
	"github.com/commercerack/commercerack-go/internal/config"
	"github.com/commercerack/commercerack-go/internal/customer"
	"github.com/commercerack/commercerack-go/internal/db"
	"github.com/commercerack/commercerack-go/internal/events"
	httpserver "github.com/commercerack/commercerack-go/internal/http"
	"github.com/commercerack/commercerack-go/internal/order"
	"github.com/commercerack/commercerack-go/internal/product"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[commercerack] ", log.LstdFlags|log.Lshortfile)

	if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	database, err := db.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer database.Close()

	customerRepo := customer.NewRepository(database)
	productRepo := product.NewRepository(database)
	orderRepo := order.NewRepository(database)

	// Carts are ephemeral session state: one in-process store for the
	// whole server, gone on restart.
	cartStore := cart.NewStore()

	rabbitConn := events.MustDial(cfg.RabbitURL)
	defer rabbitConn.Close()

	sequenceRepo := events.NewSequenceRepository(database)
	cartPublisher, err := events.NewCartEventsPublisher(rabbitConn, sequenceRepo)
	if err != nil {
		logger.Fatalf("failed to create cart publisher: %v", err)
	}

	mux := httpserver.NewRouter(httpserver.RouterDeps{
		Carts:     httpserver.NewCartHandler(cartStore, orderRepo, cartPublisher),
		Customers: httpserver.NewCustomerHandler(customerRepo, cfg.JWTSecret),
		Products:  httpserver.NewProductHandler(productRepo),
		Orders:    httpserver.NewOrderHandler(orderRepo),
		JWTSecret: cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("commercerack listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
	cartStore.Close()
	if err := cartPublisher.Close(); err != nil {
		logger.Printf("publisher close error: %v", err)
	}
}
