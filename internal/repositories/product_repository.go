package repository

import (
	"context"
	"database/sql"

	"github.com/aureliabotanicals/storefront-platform/internal/models"
	"github.com/aureliabotanicals/storefront-platform/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, status string, page, size int) ([]*models.Product, int, error)
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Product, error)
	ListProductsBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]*models.Product, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, slug, description, price, discounted_price, images,
	category_id, category_name, subcategory_id, subcategory_name,
	stock, featured, status, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {
	product := &models.Product{}

	err := row.Scan(&product.ID, &product.Name, &product.Slug, &product.Description,
		&product.Price, &product.DiscountedPrice, pq.Array(&product.Images),
		&product.CategoryID, &product.CategoryName,
		&product.SubcategoryID, &product.SubcategoryName,
		&product.Stock, &product.Featured, &product.Status,
		&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (name, slug, description, price, images,
				category_id, category_name, subcategory_id, subcategory_name,
				stock, featured, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		product.Name, product.Slug, product.Description, product.Price, pq.Array(product.Images),
		product.CategoryID, product.CategoryName, product.SubcategoryID, product.SubcategoryName,
		product.Stock, product.Featured, product.Status,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	return scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
}

func (r *productRepository) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1`

	return scanProduct(r.DB.QueryRowContext(dbCtx, query, slug))
}

// UpdateProduct writes every catalog field. discounted_price is deliberately
// absent: only the offer lifecycle touches it.
func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE products
			  SET name = $1, slug = $2, description = $3, price = $4, images = $5,
				  category_id = $6, category_name = $7, subcategory_id = $8, subcategory_name = $9,
				  stock = $10, featured = $11, status = $12, updated_at = NOW()
			  WHERE id = $13
			  RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		product.Name, product.Slug, product.Description, product.Price, pq.Array(product.Images),
		product.CategoryID, product.CategoryName, product.SubcategoryID, product.SubcategoryName,
		product.Stock, product.Featured, product.Status, product.ID,
	).Scan(&product.UpdatedAt)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
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

func (r *productRepository) ListProducts(ctx context.Context, status string, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM products WHERE ($1 = '' OR status = $1)`

	err := r.DB.QueryRowContext(dbCtx, countQuery, status).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `SELECT ` + productColumns + `
			  FROM products
			  WHERE ($1 = '' OR status = $1)
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, status, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Product, error) {
	return r.listByColumn(ctx, "category_id", categoryID)
}

func (r *productRepository) ListProductsBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]*models.Product, error) {
	return r.listByColumn(ctx, "subcategory_id", subcategoryID)
}

func (r *productRepository) listByColumn(ctx context.Context, column string, id uuid.UUID) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + `
			  FROM products
			  WHERE ` + column + ` = $1 AND status = 'active'
			  ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, id)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
