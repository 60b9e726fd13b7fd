package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	cacheMocks "github.com/aureliabotanicals/storefront-platform/internal/cache/mocks"
	appErrors "github.com/aureliabotanicals/storefront-platform/internal/errors"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	"github.com/aureliabotanicals/storefront-platform/internal/repositories/mocks"
	service "github.com/aureliabotanicals/storefront-platform/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOfferServiceWithMocks() (service.OfferService, *mocks.OfferRepository, *mocks.ProductRepository, *cacheMocks.Cache) {
	offerRepo := new(mocks.OfferRepository)
	productRepo := new(mocks.ProductRepository)
	c := new(cacheMocks.Cache)

	return service.NewOfferService(offerRepo, productRepo, c, 0), offerRepo, productRepo, c
}

func TestCreateOffer(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	product := &models.Product{
		ID:     productID,
		Name:   "Rose Face Oil",
		Slug:   "rose-face-oil",
		Price:  1000,
		Images: []string{"https://cdn.example.com/rose.jpg"},
	}

	req := &models.CreateOfferRequest{
		ProductID:          productID,
		DiscountPercentage: 20,
		StartDate:          "2026-08-01",
		EndDate:            "2026-09-30",
	}

	t.Run("Success - creates offer and derives discounted price", func(t *testing.T) {
		offerService, offerRepo, productRepo, c := newOfferServiceWithMocks()

		productRepo.On("GetProductByID", mock.Anything, productID).Return(product, nil).Once()
		offerRepo.On("GetOfferByProductID", mock.Anything, productID).Return(nil, sql.ErrNoRows).Once()
		offerRepo.On("CreateOffer", mock.Anything, mock.MatchedBy(func(o *models.Offer) bool {
			// 20% off 1000 is 800, rounded to the nearest whole unit
			return o.DiscountedPrice == 800 &&
				o.OriginalPrice == 1000 &&
				o.ProductName == "Rose Face Oil" &&
				o.Status == models.OfferStatusActive
		})).Return(nil).Once()
		c.On("Delete", mock.Anything, "offers:active").Return(nil).Once()

		offer, err := offerService.CreateOffer(ctx, req)

		assert.NoError(t, err)
		assert.NotNil(t, offer)
		assert.Equal(t, float64(800), offer.DiscountedPrice)
		assert.Equal(t, "rose-face-oil", offer.ProductSlug)
		assert.Equal(t, "https://cdn.example.com/rose.jpg", offer.ProductImage)
		offerRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
		c.AssertExpectations(t)
	})

	t.Run("Success - rounds half up", func(t *testing.T) {
		offerService, offerRepo, productRepo, c := newOfferServiceWithMocks()

		oddProduct := &models.Product{ID: productID, Name: "Balm", Slug: "balm", Price: 99}

		productRepo.On("GetProductByID", mock.Anything, productID).Return(oddProduct, nil).Once()
		offerRepo.On("GetOfferByProductID", mock.Anything, productID).Return(nil, sql.ErrNoRows).Once()
		offerRepo.On("CreateOffer", mock.Anything, mock.MatchedBy(func(o *models.Offer) bool {
			// 50% off 99 is 49.5, which rounds to 50
			return o.DiscountedPrice == 50
		})).Return(nil).Once()
		c.On("Delete", mock.Anything, "offers:active").Return(nil).Once()

		offer, err := offerService.CreateOffer(ctx, &models.CreateOfferRequest{
			ProductID:          productID,
			DiscountPercentage: 50,
			StartDate:          "2026-08-01",
			EndDate:            "2026-09-30",
		})

		assert.NoError(t, err)
		assert.Equal(t, float64(50), offer.DiscountedPrice)
	})

	t.Run("Failure - product does not exist", func(t *testing.T) {
		offerService, _, productRepo, _ := newOfferServiceWithMocks()

		productRepo.On("GetProductByID", mock.Anything, productID).Return(nil, sql.ErrNoRows).Once()

		offer, err := offerService.CreateOffer(ctx, req)

		assert.Error(t, err)
		assert.Nil(t, offer)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - offer already exists for the product", func(t *testing.T) {
		offerService, offerRepo, productRepo, _ := newOfferServiceWithMocks()

		productRepo.On("GetProductByID", mock.Anything, productID).Return(product, nil).Once()
		offerRepo.On("GetOfferByProductID", mock.Anything, productID).Return(&models.Offer{ID: uuid.New()}, nil).Once()

		offer, err := offerService.CreateOffer(ctx, req)

		assert.Error(t, err)
		assert.Nil(t, offer)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeConflict, appErr.Code)
	})

	t.Run("Failure - start date after end date", func(t *testing.T) {
		offerService, _, _, _ := newOfferServiceWithMocks()

		offer, err := offerService.CreateOffer(ctx, &models.CreateOfferRequest{
			ProductID:          productID,
			DiscountPercentage: 20,
			StartDate:          "2026-10-01",
			EndDate:            "2026-09-30",
		})

		assert.Error(t, err)
		assert.Nil(t, offer)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
	})
}

func TestUpdateOffer(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()
	productID := uuid.New()

	existingOffer := func() *models.Offer {
		return &models.Offer{
			ID:                 offerID,
			ProductID:          productID,
			ProductName:        "Rose Face Oil",
			OriginalPrice:      1000,
			DiscountedPrice:    800,
			DiscountPercentage: 20,
			StartDate:          "2026-08-01",
			EndDate:            "2026-09-30",
			Status:             models.OfferStatusActive,
		}
	}

	req := &models.UpdateOfferRequest{
		DiscountPercentage: 30,
		StartDate:          "2026-08-01",
		EndDate:            "2026-10-31",
	}

	t.Run("Success - recomputes from the product's current price", func(t *testing.T) {
		offerService, offerRepo, productRepo, c := newOfferServiceWithMocks()

		// The list price went up since the offer was created.
		productRepo.On("GetProductByID", mock.Anything, productID).
			Return(&models.Product{ID: productID, Price: 1200}, nil).Once()
		offerRepo.On("GetOfferByID", mock.Anything, offerID).Return(existingOffer(), nil).Once()
		offerRepo.On("UpdateOffer", mock.Anything, mock.MatchedBy(func(o *models.Offer) bool {
			return o.DiscountedPrice == 840 && o.OriginalPrice == 1200
		}), mock.MatchedBy(func(discount *float64) bool {
			return discount != nil && *discount == 840
		})).Return(nil).Once()
		c.On("Delete", mock.Anything, "offers:active").Return(nil).Once()

		offer, err := offerService.UpdateOffer(ctx, offerID, req)

		assert.NoError(t, err)
		assert.Equal(t, float64(840), offer.DiscountedPrice)
		offerRepo.AssertExpectations(t)
	})

	t.Run("Success - deactivating clears the product discount", func(t *testing.T) {
		offerService, offerRepo, productRepo, c := newOfferServiceWithMocks()

		productRepo.On("GetProductByID", mock.Anything, productID).
			Return(&models.Product{ID: productID, Price: 1000}, nil).Once()
		offerRepo.On("GetOfferByID", mock.Anything, offerID).Return(existingOffer(), nil).Once()
		offerRepo.On("UpdateOffer", mock.Anything, mock.MatchedBy(func(o *models.Offer) bool {
			return o.Status == models.OfferStatusInactive
		}), (*float64)(nil)).Return(nil).Once()
		c.On("Delete", mock.Anything, "offers:active").Return(nil).Once()

		inactive := &models.UpdateOfferRequest{
			DiscountPercentage: 20,
			StartDate:          "2026-08-01",
			EndDate:            "2026-09-30",
			Status:             "inactive",
		}

		offer, err := offerService.UpdateOffer(ctx, offerID, inactive)

		assert.NoError(t, err)
		assert.Equal(t, models.OfferStatusInactive, offer.Status)
		offerRepo.AssertExpectations(t)
	})

	t.Run("Failure - offer not found", func(t *testing.T) {
		offerService, offerRepo, _, _ := newOfferServiceWithMocks()

		offerRepo.On("GetOfferByID", mock.Anything, offerID).Return(nil, sql.ErrNoRows).Once()

		offer, err := offerService.UpdateOffer(ctx, offerID, req)

		assert.Error(t, err)
		assert.Nil(t, offer)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestDeleteOffer(t *testing.T) {
	ctx := context.Background()
	offerID := uuid.New()
	productID := uuid.New()

	t.Run("Success - deletes offer and invalidates cache", func(t *testing.T) {
		offerService, offerRepo, _, c := newOfferServiceWithMocks()

		offerRepo.On("GetOfferByID", mock.Anything, offerID).
			Return(&models.Offer{ID: offerID, ProductID: productID}, nil).Once()
		offerRepo.On("DeleteOffer", mock.Anything, offerID, productID).Return(nil).Once()
		c.On("Delete", mock.Anything, "offers:active").Return(nil).Once()

		err := offerService.DeleteOffer(ctx, offerID)

		assert.NoError(t, err)
		offerRepo.AssertExpectations(t)
		c.AssertExpectations(t)
	})

	t.Run("Failure - already deleted", func(t *testing.T) {
		offerService, offerRepo, _, _ := newOfferServiceWithMocks()

		offerRepo.On("GetOfferByID", mock.Anything, offerID).Return(nil, sql.ErrNoRows).Once()

		err := offerService.DeleteOffer(ctx, offerID)

		assert.Error(t, err)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - row vanished between read and delete", func(t *testing.T) {
		offerService, offerRepo, _, _ := newOfferServiceWithMocks()

		offerRepo.On("GetOfferByID", mock.Anything, offerID).
			Return(&models.Offer{ID: offerID, ProductID: productID}, nil).Once()
		offerRepo.On("DeleteOffer", mock.Anything, offerID, productID).Return(sql.ErrNoRows).Once()

		err := offerService.DeleteOffer(ctx, offerID)

		assert.Error(t, err)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestListActiveOffers(t *testing.T) {
	ctx := context.Background()

	active := []*models.ActiveOffer{
		{ID: uuid.New(), Name: "Rose Face Oil", OriginalPrice: 1000, DiscountedPrice: 800, DiscountPercentage: 20},
	}

	t.Run("Cache miss - fetches from repository and caches", func(t *testing.T) {
		offerService, offerRepo, _, c := newOfferServiceWithMocks()

		c.On("Get", mock.Anything, "offers:active", mock.Anything).Return(false, nil).Once()
		offerRepo.On("ListActiveOffers", mock.Anything, mock.MatchedBy(func(today string) bool {
			return len(today) == 10
		})).Return(active, nil).Once()
		c.On("Set", mock.Anything, "offers:active", active, mock.Anything).Return(nil).Once()

		offers, err := offerService.ListActiveOffers(ctx)

		assert.NoError(t, err)
		assert.Equal(t, active, offers)
		offerRepo.AssertExpectations(t)
		c.AssertExpectations(t)
	})

	t.Run("Cache hit - skips the repository", func(t *testing.T) {
		offerService, offerRepo, _, c := newOfferServiceWithMocks()

		c.On("Get", mock.Anything, "offers:active", mock.Anything).Return(true, nil).Once()

		_, err := offerService.ListActiveOffers(ctx)

		assert.NoError(t, err)
		offerRepo.AssertNotCalled(t, "ListActiveOffers")
	})

	t.Run("Empty result is a valid listing", func(t *testing.T) {
		offerService, offerRepo, _, c := newOfferServiceWithMocks()

		c.On("Get", mock.Anything, "offers:active", mock.Anything).Return(false, nil).Once()
		offerRepo.On("ListActiveOffers", mock.Anything, mock.Anything).Return([]*models.ActiveOffer{}, nil).Once()
		c.On("Set", mock.Anything, "offers:active", mock.Anything, mock.Anything).Return(nil).Once()

		offers, err := offerService.ListActiveOffers(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, offers)
		assert.Empty(t, offers)
	})
}

func TestGetActiveOfferByProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		offerService, offerRepo, _, _ := newOfferServiceWithMocks()

		expected := &models.ActiveOffer{ID: uuid.New(), ProductID: productID}
		offerRepo.On("GetActiveOfferByProduct", mock.Anything, productID, mock.Anything).
			Return(expected, nil).Once()

		offer, err := offerService.GetActiveOfferByProduct(ctx, productID)

		assert.NoError(t, err)
		assert.Equal(t, expected, offer)
	})

	t.Run("Failure - no active offer", func(t *testing.T) {
		offerService, offerRepo, _, _ := newOfferServiceWithMocks()

		offerRepo.On("GetActiveOfferByProduct", mock.Anything, productID, mock.Anything).
			Return(nil, sql.ErrNoRows).Once()

		offer, err := offerService.GetActiveOfferByProduct(ctx, productID)

		assert.Error(t, err)
		assert.Nil(t, offer)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}
