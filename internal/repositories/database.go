package repository

import (
	"database/sql"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aureliabotanicals/storefront-platform/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

// Repository bundles the postgres pool and every per-entity repository.
type Repository struct {
	DB       *sql.DB
	User     UserRepository
	Product  ProductRepository
	Category CategoryRepository
	Offer    OfferRepository
	Bundle   KitRepository
	GiftBox  KitRepository
	Order    OrderRepository
	Settings SettingsRepository
}

func New(cfg *config.Config) (*Repository, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// make sure the DB is reachable before serving anything
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repository{
		DB:       db,
		User:     NewUserRepo(db),
		Product:  NewProductRepo(db),
		Category: NewCategoryRepo(db),
		Offer:    NewOfferRepo(db),
		Bundle:   NewBundleKitRepo(db),
		GiftBox:  NewGiftBoxRepo(db),
		Order:    NewOrderRepo(db),
		Settings: NewSettingsRepo(db),
	}, nil
}

func (r *Repository) Close() error {
	return r.DB.Close()
}
