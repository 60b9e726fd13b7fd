package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aureliabotanicals/storefront-platform/internal/models"
	"github.com/aureliabotanicals/storefront-platform/internal/utils"
	"github.com/google/uuid"
)

// OfferRepository owns the offers table and the derived discounted_price column
// on products. Every lifecycle write pairs the offer mutation with the product
// sync in one transaction, so the cached price can never drift from the offer
// that produced it.
type OfferRepository interface {
	CreateOffer(ctx context.Context, offer *models.Offer) error
	GetOfferByID(ctx context.Context, id uuid.UUID) (*models.Offer, error)
	GetOfferByProductID(ctx context.Context, productID uuid.UUID) (*models.Offer, error)
	ListOffers(ctx context.Context) ([]*models.Offer, error)
	UpdateOffer(ctx context.Context, offer *models.Offer, productDiscount *float64) error
	DeleteOffer(ctx context.Context, id, productID uuid.UUID) error
	ListActiveOffers(ctx context.Context, today string) ([]*models.ActiveOffer, error)
	GetActiveOfferByProduct(ctx context.Context, productID uuid.UUID, today string) (*models.ActiveOffer, error)
}

type offerRepository struct {
	DB *sql.DB
}

func NewOfferRepo(db *sql.DB) OfferRepository {
	return &offerRepository{DB: db}
}

const offerColumns = `id, product_id, product_name, product_slug, product_image,
	original_price, discounted_price, discount_percentage,
	start_date, end_date, status, created_at, updated_at`

func scanOffer(row interface{ Scan(dest ...any) error }) (*models.Offer, error) {
	offer := &models.Offer{}

	err := row.Scan(&offer.ID, &offer.ProductID, &offer.ProductName, &offer.ProductSlug,
		&offer.ProductImage, &offer.OriginalPrice, &offer.DiscountedPrice,
		&offer.DiscountPercentage, &offer.StartDate, &offer.EndDate, &offer.Status,
		&offer.CreatedAt, &offer.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return offer, nil
}

// CreateOffer inserts the offer and pushes its discounted price onto the
// product, atomically.
func (r *offerRepository) CreateOffer(ctx context.Context, offer *models.Offer) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	query := `INSERT INTO offers (product_id, product_name, product_slug, product_image,
				original_price, discounted_price, discount_percentage,
				start_date, end_date, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRowContext(dbCtx, query,
		offer.ProductID, offer.ProductName, offer.ProductSlug, offer.ProductImage,
		offer.OriginalPrice, offer.DiscountedPrice, offer.DiscountPercentage,
		offer.StartDate, offer.EndDate, offer.Status,
	).Scan(&offer.ID, &offer.CreatedAt, &offer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert offer: %w", err)
	}

	_, err = tx.ExecContext(dbCtx,
		`UPDATE products SET discounted_price = $1, updated_at = NOW() WHERE id = $2`,
		offer.DiscountedPrice, offer.ProductID)
	if err != nil {
		return fmt.Errorf("failed to sync product discount: %w", err)
	}

	return tx.Commit()
}

func (r *offerRepository) GetOfferByID(ctx context.Context, id uuid.UUID) (*models.Offer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	return scanOffer(r.DB.QueryRowContext(dbCtx, query, id))
}

// GetOfferByProductID backs the one-offer-per-product existence check; the
// active window is not considered here.
func (r *offerRepository) GetOfferByProductID(ctx context.Context, productID uuid.UUID) (*models.Offer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + offerColumns + ` FROM offers WHERE product_id = $1`

	return scanOffer(r.DB.QueryRowContext(dbCtx, query, productID))
}

// ListOffers returns every offer regardless of status or window, newest first.
// This backs the admin listing.
func (r *offerRepository) ListOffers(ctx context.Context) ([]*models.Offer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + offerColumns + ` FROM offers ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	offers := []*models.Offer{}

	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}

		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}

// UpdateOffer persists the offer fields and sets the product's cached discount
// to productDiscount (NULL when the offer went inactive), atomically.
func (r *offerRepository) UpdateOffer(ctx context.Context, offer *models.Offer, productDiscount *float64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	query := `UPDATE offers
			  SET discount_percentage = $1, discounted_price = $2,
				  start_date = $3, end_date = $4, status = $5, updated_at = NOW()
			  WHERE id = $6
			  RETURNING updated_at`

	err = tx.QueryRowContext(dbCtx, query,
		offer.DiscountPercentage, offer.DiscountedPrice,
		offer.StartDate, offer.EndDate, offer.Status, offer.ID,
	).Scan(&offer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update offer: %w", err)
	}

	_, err = tx.ExecContext(dbCtx,
		`UPDATE products SET discounted_price = $1, updated_at = NOW() WHERE id = $2`,
		productDiscount, offer.ProductID)
	if err != nil {
		return fmt.Errorf("failed to sync product discount: %w", err)
	}

	return tx.Commit()
}

// DeleteOffer clears the product's cached discount and removes the offer,
// atomically.
func (r *offerRepository) DeleteOffer(ctx context.Context, id, productID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	_, err = tx.ExecContext(dbCtx,
		`UPDATE products SET discounted_price = NULL, updated_at = NOW() WHERE id = $1`,
		productID)
	if err != nil {
		return fmt.Errorf("failed to clear product discount: %w", err)
	}

	result, err := tx.ExecContext(dbCtx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

const activeOfferQuery = `
	SELECT o.id, o.product_id, p.name, p.slug, p.category_id, p.category_name,
		   COALESCE(p.images[1], ''), p.description,
		   p.price, o.discounted_price, o.discount_percentage
	FROM offers o
	JOIN products p ON p.id = o.product_id
	WHERE o.status = 'active' AND o.start_date <= $1 AND o.end_date >= $1`

func scanActiveOffer(row interface{ Scan(dest ...any) error }) (*models.ActiveOffer, error) {
	offer := &models.ActiveOffer{}

	err := row.Scan(&offer.ID, &offer.ProductID, &offer.Name, &offer.Slug,
		&offer.CategoryID, &offer.CategoryName, &offer.Image, &offer.Description,
		&offer.OriginalPrice, &offer.DiscountedPrice, &offer.DiscountPercentage)
	if err != nil {
		return nil, err
	}

	return offer, nil
}

// ListActiveOffers returns offers whose inclusive date window contains today
// (ISO YYYY-MM-DD), joined with the product fields the storefront displays.
func (r *offerRepository) ListActiveOffers(ctx context.Context, today string) ([]*models.ActiveOffer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, activeOfferQuery+` ORDER BY o.created_at DESC`, today)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	offers := []*models.ActiveOffer{}

	for rows.Next() {
		offer, err := scanActiveOffer(rows)
		if err != nil {
			return nil, err
		}

		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return offers, nil
}

func (r *offerRepository) GetActiveOfferByProduct(ctx context.Context, productID uuid.UUID, today string) (*models.ActiveOffer, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return scanActiveOffer(r.DB.QueryRowContext(dbCtx, activeOfferQuery+` AND o.product_id = $2`, today, productID))
}
