// Package app contains the application setup for the inventory console.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/abgdnv/inventory/internal/config"
	"github.com/abgdnv/inventory/internal/product/console"
	"github.com/abgdnv/inventory/internal/product/service"
	"github.com/abgdnv/inventory/internal/product/store"
)

type Dependencies struct {
	ProductService service.ProductService
	Logger         *slog.Logger
}

// seedProduct is the sample record available at start-up when seeding is enabled.
var seedProduct = service.ProductCreateDto{
	Name:  "Phone S",
	Brand: store.BrandSamsung,
	Price: 1000.5,
	Stock: 10,
}

// SetupDependencies builds the product store and service, seeding the store if configured.
func SetupDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...store.Option) (*Dependencies, error) {
	pService := service.NewService(store.NewInMemoryStore(opts...), logger)

	if cfg.Seed.Enabled {
		if _, err := pService.Create(ctx, seedProduct); err != nil {
			return nil, fmt.Errorf("failed to seed inventory: %w", err)
		}
	}

	return &Dependencies{
		ProductService: pService,
		Logger:         logger,
	}, nil
}

// SetupConsole creates the interactive console over the given input and output.
func SetupConsole(deps *Dependencies, cfg *config.Config, in io.Reader, out io.Writer) *console.Console {
	return console.New(deps.ProductService, in, out, console.Options{
		ClearScreen: cfg.Console.ClearScreen,
		Pause:       cfg.Console.Pause,
	}, deps.Logger)
}
