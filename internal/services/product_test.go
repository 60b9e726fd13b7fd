package service_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
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

func newProductServiceWithMocks() (service.ProductService, *mocks.ProductRepository, *mocks.CategoryRepository) {
	productRepo := new(mocks.ProductRepository)
	categoryRepo := new(mocks.CategoryRepository)

	return service.NewProductService(productRepo, categoryRepo), productRepo, categoryRepo
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	categoryID := uuid.New()
	subcategoryID := uuid.New()

	category := &models.Category{
		ID:   categoryID,
		Name: "Skincare",
		Slug: "skincare",
		Subcategories: []models.Subcategory{
			{ID: subcategoryID, Name: "Face Oils", Slug: "face-oils"},
		},
	}

	req := &models.CreateProductRequest{
		Name:          "Rose Face Oil",
		Slug:          "rose-face-oil",
		Description:   "<p>A calming facial oil.</p>",
		Price:         1000,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Stock:         25,
	}

	t.Run("Success - category names are denormalized", func(t *testing.T) {
		// Arrange
		productService, productRepo, categoryRepo := newProductServiceWithMocks()

		productRepo.On("GetProductBySlug", mock.Anything, req.Slug).Return(nil, sql.ErrNoRows).Once()
		categoryRepo.On("GetCategoryByID", mock.Anything, categoryID).Return(category, nil).Once()
		productRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.CategoryName == "Skincare" &&
				p.SubcategoryName == "Face Oils" &&
				p.Status == models.ProductStatusActive &&
				p.DiscountedPrice == nil
		})).Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Skincare", product.CategoryName)
		productRepo.AssertExpectations(t)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("Success - description is sanitized", func(t *testing.T) {
		// Arrange
		productService, productRepo, categoryRepo := newProductServiceWithMocks()

		dirty := *req
		dirty.Description = `<p>Lovely oil</p><script>alert("x")</script>`

		productRepo.On("GetProductBySlug", mock.Anything, req.Slug).Return(nil, sql.ErrNoRows).Once()
		categoryRepo.On("GetCategoryByID", mock.Anything, categoryID).Return(category, nil).Once()
		productRepo.On("CreateProduct", mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, &dirty)

		// Assert
		require.NoError(t, err)
		assert.NotContains(t, product.Description, "<script>")
		assert.True(t, strings.Contains(product.Description, "Lovely oil"))
	})

	t.Run("Failure - subcategory belongs to another category", func(t *testing.T) {
		// Arrange
		productService, productRepo, categoryRepo := newProductServiceWithMocks()

		foreign := *req
		foreign.SubcategoryID = uuid.New()

		productRepo.On("GetProductBySlug", mock.Anything, req.Slug).Return(nil, sql.ErrNoRows).Once()
		categoryRepo.On("GetCategoryByID", mock.Anything, categoryID).Return(category, nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, &foreign)

		// Assert
		require.Error(t, err)
		assert.Nil(t, product)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		productRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("Failure - slug already taken", func(t *testing.T) {
		// Arrange
		productService, productRepo, _ := newProductServiceWithMocks()

		productRepo.On("GetProductBySlug", mock.Anything, req.Slug).
			Return(&models.Product{ID: uuid.New()}, nil).Once()

		// Act
		product, err := productService.CreateProduct(ctx, req)

		// Assert
		require.Error(t, err)
		assert.Nil(t, product)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeConflict, appErr.Code)
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	categoryID := uuid.New()
	subcategoryID := uuid.New()

	discounted := float64(800)

	existingProduct := func() *models.Product {
		return &models.Product{
			ID:              productID,
			Name:            "Rose Face Oil",
			Slug:            "rose-face-oil",
			Price:           1000,
			DiscountedPrice: &discounted,
			CategoryID:      categoryID,
			CategoryName:    "Skincare",
			SubcategoryID:   subcategoryID,
			SubcategoryName: "Face Oils",
			Stock:           25,
			Status:          models.ProductStatusActive,
		}
	}

	t.Run("Success - price change leaves the discounted price untouched", func(t *testing.T) {
		// Arrange
		productService, productRepo, _ := newProductServiceWithMocks()

		newPrice := float64(1200)
		productRepo.On("GetProductByID", mock.Anything, productID).Return(existingProduct(), nil).Once()
		productRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			// The catalog write carries the price change only; the derived
			// discount column is owned by the offer lifecycle.
			return p.Price == 1200 && p.DiscountedPrice != nil && *p.DiscountedPrice == 800
		})).Return(nil).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, productID, &models.UpdateProductRequest{
			Price: &newPrice,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, float64(1200), product.Price)
		productRepo.AssertExpectations(t)
	})

	t.Run("Success - moving category re-resolves both names", func(t *testing.T) {
		// Arrange
		productService, productRepo, categoryRepo := newProductServiceWithMocks()

		newCategoryID := uuid.New()
		newSubcategoryID := uuid.New()
		newCategory := &models.Category{
			ID:   newCategoryID,
			Name: "Body Care",
			Subcategories: []models.Subcategory{
				{ID: newSubcategoryID, Name: "Body Oils"},
			},
		}

		productRepo.On("GetProductByID", mock.Anything, productID).Return(existingProduct(), nil).Once()
		categoryRepo.On("GetCategoryByID", mock.Anything, newCategoryID).Return(newCategory, nil).Once()
		productRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.CategoryName == "Body Care" && p.SubcategoryName == "Body Oils"
		})).Return(nil).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, productID, &models.UpdateProductRequest{
			CategoryID:    &newCategoryID,
			SubcategoryID: &newSubcategoryID,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Body Care", product.CategoryName)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("Failure - product not found", func(t *testing.T) {
		// Arrange
		productService, productRepo, _ := newProductServiceWithMocks()

		productRepo.On("GetProductByID", mock.Anything, productID).Return(nil, sql.ErrNoRows).Once()

		// Act
		product, err := productService.UpdateProduct(ctx, productID, &models.UpdateProductRequest{})

		// Assert
		require.Error(t, err)
		assert.Nil(t, product)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		productService, productRepo, _ := newProductServiceWithMocks()

		productRepo.On("DeleteProduct", mock.Anything, productID).Return(nil).Once()

		err := productService.DeleteProduct(ctx, productID)

		assert.NoError(t, err)
		productRepo.AssertExpectations(t)
	})

	t.Run("Failure - not found", func(t *testing.T) {
		productService, productRepo, _ := newProductServiceWithMocks()

		productRepo.On("DeleteProduct", mock.Anything, productID).Return(sql.ErrNoRows).Once()

		err := productService.DeleteProduct(ctx, productID)

		require.Error(t, err)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}
