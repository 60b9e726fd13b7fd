package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aureliabotanicals/storefront-platform/internal/models"
	"github.com/aureliabotanicals/storefront-platform/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// KitRepository serves both bundle kits and gift boxes; the two tables share
// one shape, line items ride along as jsonb.
type KitRepository interface {
	CreateKit(ctx context.Context, kit *models.Kit) error
	GetKitByID(ctx context.Context, id uuid.UUID) (*models.Kit, error)
	GetKitBySlug(ctx context.Context, slug string) (*models.Kit, error)
	UpdateKit(ctx context.Context, kit *models.Kit) error
	DeleteKit(ctx context.Context, id uuid.UUID) error
	ListKits(ctx context.Context) ([]*models.Kit, error)
}

type kitRepository struct {
	DB    *sql.DB
	table string
}

func NewBundleKitRepo(db *sql.DB) KitRepository {
	return &kitRepository{DB: db, table: "bundle_kits"}
}

func NewGiftBoxRepo(db *sql.DB) KitRepository {
	return &kitRepository{DB: db, table: "gift_boxes"}
}

const kitColumns = `id, name, slug, description, price, images, products, featured, status, is_customizable, created_at, updated_at`

func scanKit(row interface{ Scan(dest ...any) error }) (*models.Kit, error) {
	kit := &models.Kit{}

	var productsJSON []byte

	err := row.Scan(&kit.ID, &kit.Name, &kit.Slug, &kit.Description, &kit.Price,
		pq.Array(&kit.Images), &productsJSON, &kit.Featured, &kit.Status,
		&kit.IsCustomizable, &kit.CreatedAt, &kit.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(productsJSON, &kit.Products); err != nil {
		return nil, fmt.Errorf("failed to unmarshal kit products: %w", err)
	}

	return kit, nil
}

func (r *kitRepository) CreateKit(ctx context.Context, kit *models.Kit) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	products, err := json.Marshal(kit.Products)
	if err != nil {
		return fmt.Errorf("failed to marshal kit products: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (name, slug, description, price, images, products, featured, status, is_customizable)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at, updated_at`, r.table)

	return r.DB.QueryRowContext(dbCtx, query,
		kit.Name, kit.Slug, kit.Description, kit.Price, pq.Array(kit.Images),
		products, kit.Featured, kit.Status, kit.IsCustomizable,
	).Scan(&kit.ID, &kit.CreatedAt, &kit.UpdatedAt)
}

func (r *kitRepository) GetKitByID(ctx context.Context, id uuid.UUID) (*models.Kit, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, kitColumns, r.table)

	return scanKit(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *kitRepository) GetKitBySlug(ctx context.Context, slug string) (*models.Kit, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE slug = $1`, kitColumns, r.table)

	return scanKit(r.DB.QueryRowContext(dbCtx, query, slug))
}

func (r *kitRepository) UpdateKit(ctx context.Context, kit *models.Kit) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	products, err := json.Marshal(kit.Products)
	if err != nil {
		return fmt.Errorf("failed to marshal kit products: %w", err)
	}

	query := fmt.Sprintf(`UPDATE %s
			  SET name = $1, slug = $2, description = $3, price = $4, images = $5,
				  products = $6, featured = $7, status = $8, is_customizable = $9, updated_at = NOW()
			  WHERE id = $10
			  RETURNING updated_at`, r.table)

	return r.DB.QueryRowContext(dbCtx, query,
		kit.Name, kit.Slug, kit.Description, kit.Price, pq.Array(kit.Images),
		products, kit.Featured, kit.Status, kit.IsCustomizable, kit.ID,
	).Scan(&kit.UpdatedAt)
}

func (r *kitRepository) DeleteKit(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *kitRepository) ListKits(ctx context.Context) ([]*models.Kit, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at DESC`, kitColumns, r.table)

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var kits []*models.Kit

	for rows.Next() {
		kit, err := scanKit(rows)
		if err != nil {
			return nil, err
		}

		kits = append(kits, kit)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return kits, nil
}
