package genre

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validation constants, matching the store-level constraints.
const (
	MinNameLength        = 2
	MaxNameLength        = 50
	MaxDescriptionLength = 200
)

// CreateGenreRequest - POST /api/genres
type CreateGenreRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Normalize trims user-supplied text before validation, so length limits
// apply to the value that will actually be stored.
func (r *CreateGenreRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		r.Description = &trimmed
	}
}

func (r CreateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("genre name is required"),
			validation.Length(MinNameLength, MaxNameLength).Error("genre name must be 2-50 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength).Error("description must not exceed 200 characters"),
		),
	)
}

// UpdateGenreRequest - PUT /api/genres/:id
// All fields optional; only supplied fields change.
type UpdateGenreRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (r *UpdateGenreRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		r.Description = &trimmed
	}
}

func (r UpdateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("genre name cannot be empty"),
			validation.Length(MinNameLength, MaxNameLength).Error("genre name must be 2-50 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength).Error("description must not exceed 200 characters"),
		),
	)
}

// ApplyTo mutates only the supplied fields on an existing genre.
func (r *UpdateGenreRequest) ApplyTo(g *Genre) {
	if r.Name != nil {
		g.Name = *r.Name
	}
	if r.Description != nil {
		g.Description = r.Description
	}
	if r.IsActive != nil {
		g.IsActive = *r.IsActive
	}
}

// ToEntity converts a create request into a genre ready for insert.
func (r *CreateGenreRequest) ToEntity() *Genre {
	return &Genre{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    true,
	}
}

// Filter carries the optional list parameters for GET /api/genres.
type Filter struct {
	Search   string
	IsActive *bool
	Sort     string
	Page     int
	Limit    int
}
