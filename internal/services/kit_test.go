package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	appErrors "github.com/aureliabotanicals/storefront-platform/internal/errors"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	"github.com/aureliabotanicals/storefront-platform/internal/repositories/mocks"
	service "github.com/aureliabotanicals/storefront-platform/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateKit(t *testing.T) {
	ctx := context.Background()

	oilID := uuid.New()
	soapID := uuid.New()

	oil := &models.Product{ID: oilID, Name: "Rose Face Oil", Price: 450}
	soap := &models.Product{ID: soapID, Name: "Lavender Soap", Price: 120}

	t.Run("Success - price is recomputed from line items", func(t *testing.T) {
		// Arrange
		kitRepo := new(mocks.KitRepository)
		productRepo := new(mocks.ProductRepository)
		kitService := service.NewBundleKitService(kitRepo, productRepo)

		kitRepo.On("GetKitBySlug", mock.Anything, "spa-evening").Return(nil, sql.ErrNoRows).Once()
		productRepo.On("GetProductByID", mock.Anything, oilID).Return(oil, nil).Once()
		productRepo.On("GetProductByID", mock.Anything, soapID).Return(soap, nil).Once()
		kitRepo.On("CreateKit", mock.Anything, mock.MatchedBy(func(k *models.Kit) bool {
			// 1x450 + 2x120
			return k.Price == 690 && len(k.Products) == 2 && k.IsCustomizable == nil
		})).Return(nil).Once()

		// Act
		kit, err := kitService.CreateKit(ctx, &models.CreateKitRequest{
			Name: "Spa Evening",
			Slug: "spa-evening",
			Products: []models.KitItemInput{
				{ProductID: oilID, Quantity: 1},
				{ProductID: soapID, Quantity: 2},
			},
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, float64(690), kit.Price)
		assert.Equal(t, "active", kit.Status)
		kitRepo.AssertExpectations(t)
		productRepo.AssertExpectations(t)
	})

	t.Run("Success - duplicate product lines merge", func(t *testing.T) {
		// Arrange
		kitRepo := new(mocks.KitRepository)
		productRepo := new(mocks.ProductRepository)
		kitService := service.NewBundleKitService(kitRepo, productRepo)

		kitRepo.On("GetKitBySlug", mock.Anything, "oil-duo").Return(nil, sql.ErrNoRows).Once()
		productRepo.On("GetProductByID", mock.Anything, oilID).Return(oil, nil).Twice()
		kitRepo.On("CreateKit", mock.Anything, mock.MatchedBy(func(k *models.Kit) bool {
			return len(k.Products) == 1 && k.Products[0].Quantity == 3 && k.Price == 1350
		})).Return(nil).Once()

		// Act
		kit, err := kitService.CreateKit(ctx, &models.CreateKitRequest{
			Name: "Oil Duo",
			Slug: "oil-duo",
			Products: []models.KitItemInput{
				{ProductID: oilID, Quantity: 1},
				{ProductID: oilID, Quantity: 2},
			},
		})

		// Assert
		require.NoError(t, err)
		assert.Len(t, kit.Products, 1)
		kitRepo.AssertExpectations(t)
	})

	t.Run("Success - gift box defaults the customizable flag", func(t *testing.T) {
		// Arrange
		kitRepo := new(mocks.KitRepository)
		productRepo := new(mocks.ProductRepository)
		giftBoxService := service.NewGiftBoxService(kitRepo, productRepo)

		kitRepo.On("GetKitBySlug", mock.Anything, "petite-box").Return(nil, sql.ErrNoRows).Once()
		productRepo.On("GetProductByID", mock.Anything, soapID).Return(soap, nil).Once()
		kitRepo.On("CreateKit", mock.Anything, mock.MatchedBy(func(k *models.Kit) bool {
			return k.IsCustomizable != nil && !*k.IsCustomizable
		})).Return(nil).Once()

		// Act
		kit, err := giftBoxService.CreateKit(ctx, &models.CreateKitRequest{
			Name:     "Petite Box",
			Slug:     "petite-box",
			Products: []models.KitItemInput{{ProductID: soapID, Quantity: 1}},
		})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, kit.IsCustomizable)
		assert.False(t, *kit.IsCustomizable)
		kitRepo.AssertExpectations(t)
	})

	t.Run("Failure - slug already taken", func(t *testing.T) {
		// Arrange
		kitRepo := new(mocks.KitRepository)
		productRepo := new(mocks.ProductRepository)
		kitService := service.NewBundleKitService(kitRepo, productRepo)

		kitRepo.On("GetKitBySlug", mock.Anything, "spa-evening").
			Return(&models.Kit{ID: uuid.New()}, nil).Once()

		// Act
		kit, err := kitService.CreateKit(ctx, &models.CreateKitRequest{
			Name:     "Spa Evening",
			Slug:     "spa-evening",
			Products: []models.KitItemInput{{ProductID: oilID, Quantity: 1}},
		})

		// Assert
		require.Error(t, err)
		assert.Nil(t, kit)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeConflict, appErr.Code)
	})

	t.Run("Failure - unknown product in the lines", func(t *testing.T) {
		// Arrange
		kitRepo := new(mocks.KitRepository)
		productRepo := new(mocks.ProductRepository)
		kitService := service.NewBundleKitService(kitRepo, productRepo)

		missingID := uuid.New()
		kitRepo.On("GetKitBySlug", mock.Anything, "spa-evening").Return(nil, sql.ErrNoRows).Once()
		productRepo.On("GetProductByID", mock.Anything, missingID).Return(nil, sql.ErrNoRows).Once()

		// Act
		kit, err := kitService.CreateKit(ctx, &models.CreateKitRequest{
			Name:     "Spa Evening",
			Slug:     "spa-evening",
			Products: []models.KitItemInput{{ProductID: missingID, Quantity: 1}},
		})

		// Assert
		require.Error(t, err)
		assert.Nil(t, kit)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestUpdateKit(t *testing.T) {
	ctx := context.Background()

	kitID := uuid.New()
	oilID := uuid.New()

	existingKit := func() *models.Kit {
		return &models.Kit{
			ID:    kitID,
			Name:  "Spa Evening",
			Slug:  "spa-evening",
			Price: 690,
			Products: models.KitItems{
				{ProductID: oilID, ProductName: "Rose Face Oil", Quantity: 1, Price: 450},
			},
			Status: "active",
		}
	}

	t.Run("Success - replacing products recomputes the price", func(t *testing.T) {
		// Arrange
		kitRepo := new(mocks.KitRepository)
		productRepo := new(mocks.ProductRepository)
		kitService := service.NewBundleKitService(kitRepo, productRepo)

		kitRepo.On("GetKitByID", mock.Anything, kitID).Return(existingKit(), nil).Once()
		productRepo.On("GetProductByID", mock.Anything, oilID).
			Return(&models.Product{ID: oilID, Name: "Rose Face Oil", Price: 500}, nil).Once()
		kitRepo.On("UpdateKit", mock.Anything, mock.MatchedBy(func(k *models.Kit) bool {
			return k.Price == 1000
		})).Return(nil).Once()

		// Act
		kit, err := kitService.UpdateKit(ctx, kitID, &models.UpdateKitRequest{
			Products: []models.KitItemInput{{ProductID: oilID, Quantity: 2}},
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, float64(1000), kit.Price)
		kitRepo.AssertExpectations(t)
	})

	t.Run("Success - bundle kits ignore the customizable flag", func(t *testing.T) {
		// Arrange
		kitRepo := new(mocks.KitRepository)
		productRepo := new(mocks.ProductRepository)
		kitService := service.NewBundleKitService(kitRepo, productRepo)

		customizable := true
		kitRepo.On("GetKitByID", mock.Anything, kitID).Return(existingKit(), nil).Once()
		kitRepo.On("UpdateKit", mock.Anything, mock.MatchedBy(func(k *models.Kit) bool {
			return k.IsCustomizable == nil
		})).Return(nil).Once()

		// Act
		kit, err := kitService.UpdateKit(ctx, kitID, &models.UpdateKitRequest{
			IsCustomizable: &customizable,
		})

		// Assert
		require.NoError(t, err)
		assert.Nil(t, kit.IsCustomizable)
		kitRepo.AssertExpectations(t)
	})

	t.Run("Failure - kit not found", func(t *testing.T) {
		// Arrange
		kitRepo := new(mocks.KitRepository)
		productRepo := new(mocks.ProductRepository)
		kitService := service.NewBundleKitService(kitRepo, productRepo)

		kitRepo.On("GetKitByID", mock.Anything, kitID).Return(nil, sql.ErrNoRows).Once()

		// Act
		kit, err := kitService.UpdateKit(ctx, kitID, &models.UpdateKitRequest{})

		// Assert
		require.Error(t, err)
		assert.Nil(t, kit)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestDeleteKit(t *testing.T) {
	ctx := context.Background()
	kitID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		kitRepo := new(mocks.KitRepository)
		kitService := service.NewBundleKitService(kitRepo, new(mocks.ProductRepository))

		kitRepo.On("DeleteKit", mock.Anything, kitID).Return(nil).Once()

		err := kitService.DeleteKit(ctx, kitID)

		assert.NoError(t, err)
		kitRepo.AssertExpectations(t)
	})

	t.Run("Failure - kit not found", func(t *testing.T) {
		kitRepo := new(mocks.KitRepository)
		kitService := service.NewBundleKitService(kitRepo, new(mocks.ProductRepository))

		kitRepo.On("DeleteKit", mock.Anything, kitID).Return(sql.ErrNoRows).Once()

		err := kitService.DeleteKit(ctx, kitID)

		require.Error(t, err)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}
