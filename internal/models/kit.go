package models

import (
	"time"

	"github.com/google/uuid"
)

// Kit is the shared shape of bundle kits and gift boxes: a named, priced
// aggregate of product line items. Gift boxes additionally carry the
// IsCustomizable flag (nil for bundle kits). Price is always the recomputed
// line-item total, never a client-supplied value.
type Kit struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description,omitempty"`
	Price          float64   `json:"price"`
	Images         []string  `json:"images"`
	Products       KitItems  `json:"products"`
	Featured       bool      `json:"featured"`
	Status         string    `json:"status"`
	IsCustomizable *bool     `json:"isCustomizable,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// KitItem is one line of a kit. Price is the product's unit price captured when
// the line was added.
type KitItem struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
}

type KitItemInput struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}

type CreateKitRequest struct {
	Name           string         `json:"name" validate:"required,min=2,max=200"`
	Slug           string         `json:"slug" validate:"required,min=2,max=200"`
	Description    string         `json:"description,omitempty"`
	Images         []string       `json:"images,omitempty" validate:"omitempty,dive,url"`
	Products       []KitItemInput `json:"products" validate:"required,min=1,dive"`
	Featured       bool           `json:"featured"`
	Status         string         `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	IsCustomizable *bool          `json:"isCustomizable,omitempty"`
}

type UpdateKitRequest struct {
	Name           *string        `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Slug           *string        `json:"slug,omitempty" validate:"omitempty,min=2,max=200"`
	Description    *string        `json:"description,omitempty"`
	Images         []string       `json:"images,omitempty" validate:"omitempty,dive,url"`
	Products       []KitItemInput `json:"products,omitempty" validate:"omitempty,min=1,dive"`
	Featured       *bool          `json:"featured,omitempty"`
	Status         *string        `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	IsCustomizable *bool          `json:"isCustomizable,omitempty"`
}
