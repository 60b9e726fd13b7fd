package models

import (
	"time"

	"github.com/google/uuid"
)

type OfferStatus string

const (
	OfferStatusActive   OfferStatus = "active"
	OfferStatusInactive OfferStatus = "inactive"
)

// Offer is a time-boxed percentage discount on exactly one product. At most one
// offer may exist per product. Product name, slug and image are denormalized at
// creation time for admin listings; OriginalPrice is the list price snapshot at
// creation and is NOT used for recomputation on update (the product is refetched).
type Offer struct {
	ID                 uuid.UUID   `json:"id"`
	ProductID          uuid.UUID   `json:"productId"`
	ProductName        string      `json:"productName"`
	ProductSlug        string      `json:"productSlug"`
	ProductImage       string      `json:"productImage,omitempty"`
	OriginalPrice      float64     `json:"originalPrice"`
	DiscountedPrice    float64     `json:"discountedPrice"`
	DiscountPercentage int         `json:"discountPercentage"`
	StartDate          string      `json:"startDate"`
	EndDate            string      `json:"endDate"`
	Status             OfferStatus `json:"status"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// ActiveOffer is the read-side join of a currently running offer with the
// product fields the storefront needs for display.
type ActiveOffer struct {
	ID                 uuid.UUID `json:"id"`
	ProductID          uuid.UUID `json:"productId"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	CategoryID         uuid.UUID `json:"categoryId"`
	CategoryName       string    `json:"categoryName"`
	Image              string    `json:"image,omitempty"`
	Description        string    `json:"description,omitempty"`
	OriginalPrice      float64   `json:"originalPrice"`
	DiscountedPrice    float64   `json:"discountedPrice"`
	DiscountPercentage int       `json:"discountPercentage"`
}

// Dates travel as ISO calendar dates (YYYY-MM-DD); the active window is
// inclusive on both ends.
type CreateOfferRequest struct {
	ProductID          uuid.UUID `json:"productId" validate:"required"`
	DiscountPercentage int       `json:"discountPercentage" validate:"required,min=1,max=99"`
	StartDate          string    `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate            string    `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type UpdateOfferRequest struct {
	DiscountPercentage int    `json:"discountPercentage" validate:"required,min=1,max=99"`
	StartDate          string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate            string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Status             string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}
