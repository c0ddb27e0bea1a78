package dto

import (
	"time"

	"github.com/takasapp/takas-admin-api/internal/models"
	"github.com/takasapp/takas-admin-api/internal/store"
)

// BannerCreateRequest describes the payload to create a banner. The caller
// supplies the identifier.
type BannerCreateRequest struct {
	ID          string    `json:"id" validate:"required,max=64"`
	Title       string    `json:"title" validate:"required,min=1,max=120"`
	Description string    `json:"description" validate:"max=500"`
	ImageURL    string    `json:"imageUrl" validate:"required,url"`
	TargetURL   string    `json:"targetUrl" validate:"omitempty,max=500"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
	IsActive    bool      `json:"isActive"`
	Priority    int       `json:"priority" validate:"min=0"`
}

// ToModel converts the request into a banner entity.
func (r BannerCreateRequest) ToModel() models.Banner {
	return models.Banner{
		ID:          models.ID(r.ID),
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		TargetURL:   r.TargetURL,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		IsActive:    r.IsActive,
		Priority:    r.Priority,
	}
}

// BannerUpdateRequest is a partial update: absent fields keep their current
// value.
type BannerUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	ImageURL    *string    `json:"imageUrl" validate:"omitempty,url"`
	TargetURL   *string    `json:"targetUrl" validate:"omitempty,max=500"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	IsActive    *bool      `json:"isActive"`
	Priority    *int       `json:"priority" validate:"omitempty,min=0"`
}

// ToPatch converts the request into a store banner patch.
func (r BannerUpdateRequest) ToPatch() store.BannerPatch {
	return store.BannerPatch{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		TargetURL:   r.TargetURL,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		IsActive:    r.IsActive,
		Priority:    r.Priority,
	}
}
