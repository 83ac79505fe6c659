package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fashionmela/internal/catalog"
	"fashionmela/internal/config"
	"fashionmela/internal/httpserver"
	"fashionmela/internal/notify"
	cartrepo "fashionmela/internal/repository/cart"
	identityrepo "fashionmela/internal/repository/identity"
	listsrepo "fashionmela/internal/repository/lists"
	orderrepo "fashionmela/internal/repository/order"
	cartsvc "fashionmela/internal/service/cart"
	checkoutsvc "fashionmela/internal/service/checkout"
	identitysvc "fashionmela/internal/service/identity"
	listssvc "fashionmela/internal/service/lists"
	ordersvc "fashionmela/internal/service/order"
	"fashionmela/internal/session"
	"fashionmela/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		logger.Fatalf("open store: %v", err)
	}
	defer store.Close()

	sess := session.New()
	notifier := notify.NewLog(logger)
	products := catalog.New()

	identityService := identitysvc.New(identityrepo.NewStore(store), sess, notifier)
	cartService := cartsvc.New(cartrepo.NewStore(store), sess, notifier)
	listsService := listssvc.New(listsrepo.NewStore(store), notifier)
	orderService := ordersvc.New(orderrepo.NewStore(store), sess, notifier)
	checkoutService := checkoutsvc.New(cartService, orderService, products, sess)

	// Restore runs after the cart and order managers subscribe, so a saved
	// sign-in reloads their state the same way a fresh login would.
	if err := identityService.Restore(); err != nil {
		logger.Printf("restore session: %v", err)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, store, httpserver.Deps{
		Session:  sess,
		Identity: identityService,
		Cart:     cartService,
		Lists:    listsService,
		Orders:   orderService,
		Checkout: checkoutService,
		Catalog:  products,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
