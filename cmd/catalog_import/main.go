// Command catalog_import seeds the configured catalog backend from a destinations.json file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/app"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/catalog"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/config"
	"github.com/wb-go/wbf/logger"
)

func main() {
	seedPath := flag.String("file", "data/destinations.json", "destinations seed file")
	flag.Parse()

	if err := run(context.Background(), config.MustLoad(), *seedPath); err != nil {
		log.Fatalf("catalog import: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, seedPath string) error {
	if cfg.Storage.Driver == config.DriverFile {
		return fmt.Errorf("storage driver %q reads %s directly, nothing to import",
			cfg.Storage.Driver, cfg.Storage.DestinationsFile())
	}

	lg, err := app.NewLogger(cfg)
	if err != nil {
		return err
	}

	storage, err := app.OpenStorage(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if cerr := storage.Close(); cerr != nil {
			lg.Error("failed to close storage", logger.String("error", cerr.Error()))
		}
	}()

	f, err := os.Open(seedPath)
	if err != nil {
		return fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	res, err := catalog.Import(ctx, storage.Destinations, f)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	lg.LogAttrs(ctx, logger.InfoLevel, "catalog imported",
		logger.String("file", seedPath),
		logger.Int("imported", res.Imported),
		logger.Int("skipped", res.Skipped),
	)
	return nil
}
