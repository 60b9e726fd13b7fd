package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aureliabotanicals/storefront-platform/internal/models"
	"github.com/aureliabotanicals/storefront-platform/internal/utils"
	"github.com/google/uuid"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

// Subcategories are stored embedded in a jsonb column, mirroring the original
// document layout; deleting a category therefore cascades to them for free.
type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

func scanCategory(row interface{ Scan(dest ...any) error }) (*models.Category, error) {
	category := &models.Category{}

	var subcategoriesJSON []byte

	err := row.Scan(&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.Image, &category.Featured, &category.Status, &subcategoriesJSON,
		&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(subcategoriesJSON, &category.Subcategories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal subcategories: %w", err)
	}

	return category, nil
}

const categoryColumns = `id, name, slug, description, image, featured, status, subcategories, created_at, updated_at`

func (r *categoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	subcategories, err := json.Marshal(category.Subcategories)
	if err != nil {
		return fmt.Errorf("failed to marshal subcategories: %w", err)
	}

	query := `INSERT INTO categories (name, slug, description, image, featured, status, subcategories)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		category.Name, category.Slug, category.Description, category.Image,
		category.Featured, category.Status, subcategories,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	return scanCategory(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *categoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`

	return scanCategory(r.DB.QueryRowContext(dbCtx, query, slug))
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	subcategories, err := json.Marshal(category.Subcategories)
	if err != nil {
		return fmt.Errorf("failed to marshal subcategories: %w", err)
	}

	query := `UPDATE categories
			  SET name = $1, slug = $2, description = $3, image = $4,
				  featured = $5, status = $6, subcategories = $7, updated_at = NOW()
			  WHERE id = $8
			  RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		category.Name, category.Slug, category.Description, category.Image,
		category.Featured, category.Status, subcategories, category.ID,
	).Scan(&category.UpdatedAt)
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM categories WHERE id = $1`, id)
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

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var categories []*models.Category

	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
