// Command storefront is a terminal storefront over the product catalog API.
// The cart and wishlist live in the key-value store picked by STORAGE_DRIVER.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/infra/kvrepo"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/fakestore"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/storefront/internal/navigation"
	"github.com/dwikikusuma/storefront/internal/screens"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Output:  os.Stderr,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Error("open storage failed", slog.String("driver", cfg.StorageDriver), slog.Any("err", err))
		os.Exit(1)
	}
	defer closeStore()

	// Catalog
	client, err := fakestore.NewClient(cfg.CatalogBaseURL, &http.Client{Timeout: cfg.CatalogTimeout})
	if err != nil {
		log.Error("catalog client failed", slog.Any("err", err))
		os.Exit(1)
	}
	catalogSvc := catalogapp.NewService(client)

	// Cart
	cartMgr := cartapp.NewManager(kvrepo.New(store), log)

	// Checkout (adapters)
	checkoutSvc := checkoutapp.NewService(checkoutadapter.NewCartManagerReader(cartMgr))

	sh := newShell(os.Stdout, log)
	app := screens.NewApp(screens.Deps{
		Catalog:  catalogSvc,
		Cart:     cartMgr,
		Checkout: checkoutSvc,
		Nav:      navigation.NewNavigator(),
		Alerts:   sh,
		Sharer:   sh,
		Log:      log,
	})
	sh.app = app

	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx, os.Stdin) }()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-done:
		if err != nil {
			log.Error("shell stopped", slog.Any("err", err))
			closeStore()
			os.Exit(1)
		}
	}
}
