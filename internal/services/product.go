package service

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/aureliabotanicals/storefront-platform/internal/errors"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	repository "github.com/aureliabotanicals/storefront-platform/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, status string, page, pageSize int) ([]*models.Product, int, error)
	ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Product, error)
	ListProductsBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]*models.Product, error)
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	sanitizer    *bluemonday.Policy
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{
		repo:         repo,
		categoryRepo: categoryRepo,
		// Descriptions arrive from a rich-text editor; UGC policy keeps basic
		// formatting and strips everything scriptable.
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// resolveCategory loads the category and the referenced subcategory so their
// names can be denormalized onto the product row.
func (s *productService) resolveCategory(ctx context.Context, categoryID, subcategoryID uuid.UUID) (*models.Category, *models.Subcategory, error) {

	category, err := s.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, nil, errors.NotFoundError("Category not found").WithError(err)
	}

	for i := range category.Subcategories {
		if category.Subcategories[i].ID == subcategoryID {
			return category, &category.Subcategories[i], nil
		}
	}

	return nil, nil, errors.BadRequestError("Subcategory does not belong to the category")
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	if existing, err := s.repo.GetProductBySlug(ctx, req.Slug); err == nil && existing != nil {
		return nil, errors.ConflictError("A product with this slug already exists")
	}

	category, subcategory, err := s.resolveCategory(ctx, req.CategoryID, req.SubcategoryID)
	if err != nil {
		return nil, err
	}

	status := models.ProductStatusActive
	if req.Status != "" {
		status = models.ProductStatus(req.Status)
	}

	product := &models.Product{
		Name:            req.Name,
		Slug:            req.Slug,
		Description:     s.sanitizer.Sanitize(req.Description),
		Price:           req.Price,
		Images:          req.Images,
		CategoryID:      category.ID,
		CategoryName:    category.Name,
		SubcategoryID:   subcategory.ID,
		SubcategoryName: subcategory.Name,
		Stock:           req.Stock,
		Featured:        req.Featured,
		Status:          status,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {

	product, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	if req.Slug != nil && *req.Slug != product.Slug {
		if existing, err := s.repo.GetProductBySlug(ctx, *req.Slug); err == nil && existing != nil {
			return nil, errors.ConflictError("A product with this slug already exists")
		}

		product.Slug = *req.Slug
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = s.sanitizer.Sanitize(*req.Description)
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.Status != nil {
		product.Status = models.ProductStatus(*req.Status)
	}

	if req.CategoryID != nil || req.SubcategoryID != nil {
		categoryID := product.CategoryID
		if req.CategoryID != nil {
			categoryID = *req.CategoryID
		}

		subcategoryID := product.SubcategoryID
		if req.SubcategoryID != nil {
			subcategoryID = *req.SubcategoryID
		}

		category, subcategory, err := s.resolveCategory(ctx, categoryID, subcategoryID)
		if err != nil {
			return nil, err
		}

		product.CategoryID = category.ID
		product.CategoryName = category.Name
		product.SubcategoryID = subcategory.ID
		product.SubcategoryName = subcategory.Name
	}

	// The update path never writes discounted_price; that column belongs to
	// the offer lifecycle.
	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.DatabaseError("Failed to update product").WithError(err)
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Product not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete product").WithError(err)
	}

	return nil
}

func (s *productService) ListProducts(ctx context.Context, status string, page, pageSize int) ([]*models.Product, int, error) {

	products, total, err := s.repo.ListProducts(ctx, status, page, pageSize)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) ListProductsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.Product, error) {

	products, err := s.repo.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *productService) ListProductsBySubcategory(ctx context.Context, subcategoryID uuid.UUID) ([]*models.Product, error) {

	products, err := s.repo.ListProductsBySubcategory(ctx, subcategoryID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}
