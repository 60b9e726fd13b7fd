package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"
	"math"
	"time"

	"github.com/aureliabotanicals/storefront-platform/internal/cache"
	"github.com/aureliabotanicals/storefront-platform/internal/errors"
	"github.com/aureliabotanicals/storefront-platform/internal/metrics"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	repository "github.com/aureliabotanicals/storefront-platform/internal/repositories"
	"github.com/google/uuid"
)

// OfferService owns the offer lifecycle and, through it, every write to a
// product's discounted price. No other service touches that column.
type OfferService interface {
	CreateOffer(ctx context.Context, req *models.CreateOfferRequest) (*models.Offer, error)
	GetOfferByID(ctx context.Context, id uuid.UUID) (*models.Offer, error)
	ListOffers(ctx context.Context) ([]*models.Offer, error)
	UpdateOffer(ctx context.Context, id uuid.UUID, req *models.UpdateOfferRequest) (*models.Offer, error)
	DeleteOffer(ctx context.Context, id uuid.UUID) error
	ListActiveOffers(ctx context.Context) ([]*models.ActiveOffer, error)
	GetActiveOfferByProduct(ctx context.Context, productID uuid.UUID) (*models.ActiveOffer, error)
}

type offerService struct {
	repo         repository.OfferRepository
	productRepo  repository.ProductRepository
	cache        cache.Cache
	offerListTTL time.Duration
}

func NewOfferService(repo repository.OfferRepository, productRepo repository.ProductRepository, c cache.Cache, offerListTTL time.Duration) OfferService {
	return &offerService{
		repo:         repo,
		productRepo:  productRepo,
		cache:        c,
		offerListTTL: offerListTTL,
	}
}

// computeDiscountedPrice rounds to the nearest whole unit, matching what the
// storefront displays.
func computeDiscountedPrice(price float64, percentage int) float64 {
	return math.Round(price * (1 - float64(percentage)/100))
}

// today returns the current calendar date in the format offer windows are
// stored in. Window bounds compare lexically, which for ISO dates is
// chronological order.
func today() string {
	return time.Now().Format("2006-01-02")
}

func (s *offerService) CreateOffer(ctx context.Context, req *models.CreateOfferRequest) (*models.Offer, error) {

	if req.StartDate > req.EndDate {
		return nil, errors.ValidationError("startDate must not be after endDate")
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	existing, err := s.repo.GetOfferByProductID(ctx, req.ProductID)
	if err != nil && !stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.DatabaseError("Failed to check for an existing offer").WithError(err)
	}

	if existing != nil {
		return nil, errors.ConflictError("An offer already exists for this product")
	}

	var image string
	if len(product.Images) > 0 {
		image = product.Images[0]
	}

	offer := &models.Offer{
		ProductID:          product.ID,
		ProductName:        product.Name,
		ProductSlug:        product.Slug,
		ProductImage:       image,
		OriginalPrice:      product.Price,
		DiscountedPrice:    computeDiscountedPrice(product.Price, req.DiscountPercentage),
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Status:             models.OfferStatusActive,
	}

	// Inserts the offer and stamps the product's discounted price in one
	// transaction.
	if err := s.repo.CreateOffer(ctx, offer); err != nil {
		return nil, errors.DatabaseError("Failed to create offer").WithError(err)
	}

	metrics.RecordOfferSync("create")
	s.invalidateActiveOffers(ctx)

	return offer, nil
}

func (s *offerService) GetOfferByID(ctx context.Context, id uuid.UUID) (*models.Offer, error) {

	offer, err := s.repo.GetOfferByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Offer not found").WithError(err)
	}

	return offer, nil
}

func (s *offerService) ListOffers(ctx context.Context) ([]*models.Offer, error) {

	offers, err := s.repo.ListOffers(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch offers").WithError(err)
	}

	return offers, nil
}

func (s *offerService) UpdateOffer(ctx context.Context, id uuid.UUID, req *models.UpdateOfferRequest) (*models.Offer, error) {

	if req.StartDate > req.EndDate {
		return nil, errors.ValidationError("startDate must not be after endDate")
	}

	offer, err := s.repo.GetOfferByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Offer not found").WithError(err)
	}

	// The discount is recomputed from the product's current list price, not
	// from the price snapshot taken when the offer was created.
	product, err := s.productRepo.GetProductByID(ctx, offer.ProductID)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	offer.OriginalPrice = product.Price
	offer.DiscountPercentage = req.DiscountPercentage
	offer.DiscountedPrice = computeDiscountedPrice(product.Price, req.DiscountPercentage)
	offer.StartDate = req.StartDate
	offer.EndDate = req.EndDate

	if req.Status != "" {
		offer.Status = models.OfferStatus(req.Status)
	}

	// An inactive offer clears the product's discounted price instead of
	// carrying a stale value.
	var productDiscount *float64
	if offer.Status == models.OfferStatusActive {
		productDiscount = &offer.DiscountedPrice
	}

	if err := s.repo.UpdateOffer(ctx, offer, productDiscount); err != nil {
		return nil, errors.DatabaseError("Failed to update offer").WithError(err)
	}

	metrics.RecordOfferSync("update")
	s.invalidateActiveOffers(ctx)

	return offer, nil
}

func (s *offerService) DeleteOffer(ctx context.Context, id uuid.UUID) error {

	offer, err := s.repo.GetOfferByID(ctx, id)
	if err != nil {
		return errors.NotFoundError("Offer not found").WithError(err)
	}

	if err := s.repo.DeleteOffer(ctx, offer.ID, offer.ProductID); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Offer not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete offer").WithError(err)
	}

	metrics.RecordOfferSync("delete")
	s.invalidateActiveOffers(ctx)

	return nil
}

func (s *offerService) ListActiveOffers(ctx context.Context) ([]*models.ActiveOffer, error) {

	var cached []*models.ActiveOffer

	hit, err := s.cache.Get(ctx, cache.ActiveOffersKey, &cached)
	if err != nil {
		slog.Warn("active offer cache lookup failed", slog.String("error", err.Error()))
	}

	if hit {
		metrics.RecordCacheHit(cache.ActiveOffersKey)

		return cached, nil
	}

	metrics.RecordCacheMiss(cache.ActiveOffersKey)

	offers, err := s.repo.ListActiveOffers(ctx, today())
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch active offers").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.ActiveOffersKey, offers, s.offerListTTL); err != nil {
		slog.Warn("failed to cache active offers", slog.String("error", err.Error()))
	}

	return offers, nil
}

func (s *offerService) GetActiveOfferByProduct(ctx context.Context, productID uuid.UUID) (*models.ActiveOffer, error) {

	offer, err := s.repo.GetActiveOfferByProduct(ctx, productID, today())
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundError("No active offer for this product").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to fetch active offer").WithError(err)
	}

	return offer, nil
}

// invalidateActiveOffers drops the cached listing after a lifecycle write. The
// cache is best effort; failures are logged and the write still succeeds.
func (s *offerService) invalidateActiveOffers(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.ActiveOffersKey); err != nil {
		slog.Warn("failed to invalidate active offer cache", slog.String("error", err.Error()))
	}
}
