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

// KitService drives both bundle kits and gift boxes; the two differ only in
// the backing table and whether the customizable flag applies.
type KitService interface {
	CreateKit(ctx context.Context, req *models.CreateKitRequest) (*models.Kit, error)
	GetKitByID(ctx context.Context, id uuid.UUID) (*models.Kit, error)
	GetKitBySlug(ctx context.Context, slug string) (*models.Kit, error)
	UpdateKit(ctx context.Context, id uuid.UUID, req *models.UpdateKitRequest) (*models.Kit, error)
	DeleteKit(ctx context.Context, id uuid.UUID) error
	ListKits(ctx context.Context) ([]*models.Kit, error)
}

type kitService struct {
	repo        repository.KitRepository
	productRepo repository.ProductRepository
	giftBox     bool
}

func NewBundleKitService(repo repository.KitRepository, productRepo repository.ProductRepository) KitService {
	return &kitService{repo: repo, productRepo: productRepo}
}

func NewGiftBoxService(repo repository.KitRepository, productRepo repository.ProductRepository) KitService {
	return &kitService{repo: repo, productRepo: productRepo, giftBox: true}
}

// buildItems resolves each referenced product and folds the lines through
// KitItems.Add, so duplicate product ids merge into one line. Unit prices come
// from the catalog, never from the client.
func (s *kitService) buildItems(ctx context.Context, inputs []models.KitItemInput) (models.KitItems, error) {

	items := models.KitItems{}

	for _, input := range inputs {
		product, err := s.productRepo.GetProductByID(ctx, input.ProductID)
		if err != nil {
			return nil, errors.NotFoundError("Product not found").WithError(err)
		}

		items = items.Add(product.ID, product.Name, input.Quantity, product.Price)
	}

	return items, nil
}

func (s *kitService) CreateKit(ctx context.Context, req *models.CreateKitRequest) (*models.Kit, error) {

	if existing, err := s.repo.GetKitBySlug(ctx, req.Slug); err == nil && existing != nil {
		return nil, errors.ConflictError("A kit with this slug already exists")
	}

	items, err := s.buildItems(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	status := "active"
	if req.Status != "" {
		status = req.Status
	}

	kit := &models.Kit{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       items.Total(),
		Images:      req.Images,
		Products:    items,
		Featured:    req.Featured,
		Status:      status,
	}

	if s.giftBox {
		customizable := false
		if req.IsCustomizable != nil {
			customizable = *req.IsCustomizable
		}

		kit.IsCustomizable = &customizable
	}

	if err := s.repo.CreateKit(ctx, kit); err != nil {
		return nil, errors.DatabaseError("Failed to create kit").WithError(err)
	}

	return kit, nil
}

func (s *kitService) GetKitByID(ctx context.Context, id uuid.UUID) (*models.Kit, error) {

	kit, err := s.repo.GetKitByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Kit not found").WithError(err)
	}

	return kit, nil
}

func (s *kitService) GetKitBySlug(ctx context.Context, slug string) (*models.Kit, error) {

	kit, err := s.repo.GetKitBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NotFoundError("Kit not found").WithError(err)
	}

	return kit, nil
}

func (s *kitService) UpdateKit(ctx context.Context, id uuid.UUID, req *models.UpdateKitRequest) (*models.Kit, error) {

	kit, err := s.repo.GetKitByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Kit not found").WithError(err)
	}

	if req.Slug != nil && *req.Slug != kit.Slug {
		if existing, err := s.repo.GetKitBySlug(ctx, *req.Slug); err == nil && existing != nil {
			return nil, errors.ConflictError("A kit with this slug already exists")
		}

		kit.Slug = *req.Slug
	}

	if req.Name != nil {
		kit.Name = *req.Name
	}
	if req.Description != nil {
		kit.Description = *req.Description
	}
	if req.Images != nil {
		kit.Images = req.Images
	}
	if req.Featured != nil {
		kit.Featured = *req.Featured
	}
	if req.Status != nil {
		kit.Status = *req.Status
	}
	if s.giftBox && req.IsCustomizable != nil {
		kit.IsCustomizable = req.IsCustomizable
	}

	// Replacing the line items recomputes the stored price from the catalog's
	// current unit prices.
	if req.Products != nil {
		items, err := s.buildItems(ctx, req.Products)
		if err != nil {
			return nil, err
		}

		kit.Products = items
		kit.Price = items.Total()
	}

	if err := s.repo.UpdateKit(ctx, kit); err != nil {
		return nil, errors.DatabaseError("Failed to update kit").WithError(err)
	}

	return kit, nil
}

func (s *kitService) DeleteKit(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.DeleteKit(ctx, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Kit not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete kit").WithError(err)
	}

	return nil
}

func (s *kitService) ListKits(ctx context.Context) ([]*models.Kit, error) {

	kits, err := s.repo.ListKits(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch kits").WithError(err)
	}

	return kits, nil
}
