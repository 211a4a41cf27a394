package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/StarSailors_Go/internal/catalog"
	"github.com/osse101/StarSailors_Go/internal/classification"
	"github.com/osse101/StarSailors_Go/internal/config"
	"github.com/osse101/StarSailors_Go/internal/storage"
)

// GameData is the static configuration embedded in the binary
type GameData struct {
	Catalog *catalog.Catalog
	Forms   *classification.Forms
}

// LoadGameData parses and validates the embedded data source catalog and classification forms
func LoadGameData() (*GameData, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	forms, err := classification.LoadForms()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadForms, err)
	}

	slog.Info(LogMsgGameDataLoaded, "catalog_entries", len(cat.Entries()))
	return &GameData{Catalog: cat, Forms: forms}, nil
}

// Storage bundles the object store and the base image fetcher
type Storage struct {
	Store   *storage.S3Store
	Fetcher *storage.HTTPFetcher
}

// InitializeStorage builds the S3 client against the hosted backend's gateway
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	store, err := storage.NewS3Store(ctx, storage.S3Options{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		PublicURL: cfg.StorageBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedStorageSetup, err)
	}
	return &Storage{
		Store:   store,
		Fetcher: storage.NewHTTPFetcher(cfg.ImageFetchTimeout, cfg.ImageFetchMaxBytes),
	}, nil
}
