package models

import (
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusArchived ProductStatus = "archived"
)

// Product is the catalog item. DiscountedPrice is derived state owned by the
// offer lifecycle: it is non-nil only while an active offer exists for the
// product, and catalog write paths never touch it.
type Product struct {
	ID              uuid.UUID     `json:"id"`
	Name            string        `json:"name"`
	Slug            string        `json:"slug"`
	Description     string        `json:"description"`
	Price           float64       `json:"price"`
	DiscountedPrice *float64      `json:"discountedPrice"`
	Images          []string      `json:"images"`
	CategoryID      uuid.UUID     `json:"categoryId"`
	CategoryName    string        `json:"categoryName"`
	SubcategoryID   uuid.UUID     `json:"subcategoryId"`
	SubcategoryName string        `json:"subcategoryName"`
	Stock           int           `json:"stock"`
	Featured        bool          `json:"featured"`
	Status          ProductStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name          string    `json:"name" validate:"required,min=2,max=200"`
	Slug          string    `json:"slug" validate:"required,min=2,max=200"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price" validate:"required,gt=0"`
	Images        []string  `json:"images,omitempty" validate:"omitempty,dive,url"`
	CategoryID    uuid.UUID `json:"categoryId" validate:"required"`
	SubcategoryID uuid.UUID `json:"subcategoryId" validate:"required"`
	Stock         int       `json:"stock" validate:"gte=0"`
	Featured      bool      `json:"featured"`
	Status        string    `json:"status,omitempty" validate:"omitempty,oneof=active draft archived"`
}

type UpdateProductRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Slug          *string    `json:"slug,omitempty" validate:"omitempty,min=2,max=200"`
	Description   *string    `json:"description,omitempty"`
	Price         *float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	Images        []string   `json:"images,omitempty" validate:"omitempty,dive,url"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
	SubcategoryID *uuid.UUID `json:"subcategoryId,omitempty"`
	Stock         *int       `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Featured      *bool      `json:"featured,omitempty"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=active draft archived"`
}
