package service

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/aureliabotanicals/storefront-platform/internal/errors"
	"github.com/aureliabotanicals/storefront-platform/internal/models"
	repository "github.com/aureliabotanicals/storefront-platform/internal/repositories"
	"github.com/google/uuid"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

// buildSubcategories assigns ids to new subcategories and keeps the ids of
// existing ones, so product references stay valid across category updates.
func buildSubcategories(inputs []models.SubcategoryInput) []models.Subcategory {

	subcategories := make([]models.Subcategory, 0, len(inputs))

	for _, input := range inputs {
		id := uuid.New()
		if input.ID != nil {
			id = *input.ID
		}

		subcategories = append(subcategories, models.Subcategory{
			ID:          id,
			Name:        input.Name,
			Slug:        input.Slug,
			Description: input.Description,
		})
	}

	return subcategories
}

func (s *categoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {

	if existing, err := s.repo.GetCategoryBySlug(ctx, req.Slug); err == nil && existing != nil {
		return nil, errors.ConflictError("A category with this slug already exists")
	}

	status := "active"
	if req.Status != "" {
		status = req.Status
	}

	category := &models.Category{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Image:         req.Image,
		Featured:      req.Featured,
		Status:        status,
		Subcategories: buildSubcategories(req.Subcategories),
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, errors.DatabaseError("Failed to create category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {

	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Category not found").WithError(err)
	}

	return category, nil
}

func (s *categoryService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {

	category, err := s.repo.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NotFoundError("Category not found").WithError(err)
	}

	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *models.UpdateCategoryRequest) (*models.Category, error) {

	category, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Category not found").WithError(err)
	}

	if req.Slug != nil && *req.Slug != category.Slug {
		if existing, err := s.repo.GetCategoryBySlug(ctx, *req.Slug); err == nil && existing != nil {
			return nil, errors.ConflictError("A category with this slug already exists")
		}

		category.Slug = *req.Slug
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Image != nil {
		category.Image = *req.Image
	}
	if req.Featured != nil {
		category.Featured = *req.Featured
	}
	if req.Status != nil {
		category.Status = *req.Status
	}
	if req.Subcategories != nil {
		category.Subcategories = buildSubcategories(req.Subcategories)
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, errors.DatabaseError("Failed to update category").WithError(err)
	}

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Category not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete category").WithError(err)
	}

	return nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}
