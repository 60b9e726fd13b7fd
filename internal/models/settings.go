package models

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the single store-settings document. One row exists; updates
// replace the payload wholesale.
type Settings struct {
	ID           uuid.UUID         `json:"id"`
	StoreName    string            `json:"storeName"`
	ContactEmail string            `json:"contactEmail,omitempty"`
	ContactPhone string            `json:"contactPhone,omitempty"`
	Address      string            `json:"address,omitempty"`
	Currency     string            `json:"currency"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

type UpsertSettingsRequest struct {
	StoreName    string            `json:"storeName" validate:"required,min=1,max=200"`
	ContactEmail string            `json:"contactEmail,omitempty" validate:"omitempty,email"`
	ContactPhone string            `json:"contactPhone,omitempty"`
	Address      string            `json:"address,omitempty"`
	Currency     string            `json:"currency" validate:"required,iso4217"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty" validate:"omitempty,dive,url"`
}
