package models

import (
	"time"

	"github.com/google/uuid"
)

// Subcategories live embedded inside their category (one jsonb column), so
// deleting a category removes them with it. Each one still carries a generated
// id so products can reference it.
type Subcategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
}

type Category struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description,omitempty"`
	Image         string        `json:"image,omitempty"`
	Featured      bool          `json:"featured"`
	Status        string        `json:"status"`
	Subcategories []Subcategory `json:"subcategories"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type SubcategoryInput struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Name        string     `json:"name" validate:"required,min=2,max=100"`
	Slug        string     `json:"slug" validate:"required,min=2,max=100"`
	Description string     `json:"description,omitempty"`
}

type CreateCategoryRequest struct {
	Name          string             `json:"name" validate:"required,min=2,max=100"`
	Slug          string             `json:"slug" validate:"required,min=2,max=100"`
	Description   string             `json:"description,omitempty"`
	Image         string             `json:"image,omitempty" validate:"omitempty,url"`
	Featured      bool               `json:"featured"`
	Status        string             `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Subcategories []SubcategoryInput `json:"subcategories,omitempty" validate:"omitempty,dive"`
}

type UpdateCategoryRequest struct {
	Name          *string            `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Slug          *string            `json:"slug,omitempty" validate:"omitempty,min=2,max=100"`
	Description   *string            `json:"description,omitempty"`
	Image         *string            `json:"image,omitempty" validate:"omitempty,url"`
	Featured      *bool              `json:"featured,omitempty"`
	Status        *string            `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Subcategories []SubcategoryInput `json:"subcategories,omitempty" validate:"omitempty,dive"`
}
