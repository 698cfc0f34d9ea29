package game

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxPrice             = 9999.0
)

// GameResponse is the read shape. Price is exposed as a plain number and the
// presentation fields formattedPrice and hasImage are computed here, never
// stored.
type GameResponse struct {
	ID             uuid.UUID  `json:"id"`
	Title          string     `json:"title"`
	Platform       Platform   `json:"platform"`
	Genre          *GenreRef  `json:"genre"`
	Status         Status     `json:"status"`
	Price          float64    `json:"price"`
	Currency       Currency   `json:"currency"`
	FormattedPrice string     `json:"formattedPrice"`
	Description    *string    `json:"description,omitempty"`
	ReleaseDate    *time.Time `json:"releaseDate,omitempty"`
	Image          *string    `json:"image,omitempty"`
	HasImage       bool       `json:"hasImage"`
	IsActive       bool       `json:"isActive"`
	DeletedAt      *time.Time `json:"deletedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (g *Game) ToResponse() *GameResponse {
	genre := g.Genre
	if genre == nil {
		genre = &GenreRef{ID: g.GenreID}
	}
	return &GameResponse{
		ID:             g.ID,
		Title:          g.Title,
		Platform:       g.Platform,
		Genre:          genre,
		Status:         g.Status,
		Price:          g.Price.InexactFloat64(),
		Currency:       g.Currency,
		FormattedPrice: g.FormattedPrice(),
		Description:    g.Description,
		ReleaseDate:    g.ReleaseDate,
		Image:          g.Image,
		HasImage:       g.HasImage(),
		IsActive:       g.IsActive,
		DeletedAt:      g.DeletedAt,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func ToResponseList(games []Game) []*GameResponse {
	out := make([]*GameResponse, len(games))
	for i := range games {
		out[i] = games[i].ToResponse()
	}
	return out
}

// CreateGameRequest carries the write shape. Genre is the referenced genre id.
type CreateGameRequest struct {
	Title       string     `json:"title"`
	Platform    string     `json:"platform"`
	Genre       string     `json:"genre"`
	Status      string     `json:"status"`
	Price       *float64   `json:"price"`
	Currency    string     `json:"currency"`
	Description *string    `json:"description"`
	ReleaseDate *time.Time `json:"releaseDate"`
	Image       *string    `json:"image"`
}

func (r *CreateGameRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		r.Description = &trimmed
	}
	if r.Status == "" {
		r.Status = string(StatusUnplayed)
	}
	if r.Currency == "" {
		r.Currency = string(CurrencyUSD)
	}
}

// Validate collects every violation; callers report the full list at once.
func (r CreateGameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength).Error("title must be between 1 and 100 characters"),
		),
		validation.Field(&r.Platform,
			validation.Required.Error("platform is required"),
			validation.By(enumRule("platform", func(s string) bool { return Platform(s).IsValid() })),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("genre is required"),
			validation.By(uuidRule("genre")),
		),
		validation.Field(&r.Status,
			validation.By(enumRule("status", func(s string) bool { return Status(s).IsValid() })),
		),
		validation.Field(&r.Price,
			validation.NotNil.Error("price is required"),
			validation.Min(0.0).Error("price cannot be negative"),
			validation.Max(MaxPrice).Error("price cannot exceed 9999"),
		),
		validation.Field(&r.Currency,
			validation.By(enumRule("currency", func(s string) bool { return Currency(s).IsValid() })),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength).Error("description cannot exceed 500 characters"),
		),
	)
}

func (r *CreateGameRequest) ToEntity() *Game {
	genreID, _ := uuid.Parse(r.Genre)
	price := decimal.NewFromFloat(0)
	if r.Price != nil {
		price = decimal.NewFromFloat(*r.Price)
	}
	return &Game{
		Title:       r.Title,
		Platform:    Platform(r.Platform),
		GenreID:     genreID,
		Status:      Status(r.Status),
		Price:       price,
		Currency:    Currency(r.Currency),
		Description: r.Description,
		ReleaseDate: r.ReleaseDate,
		Image:       r.Image,
		IsActive:    true,
	}
}

// UpdateGameRequest is a partial update; absent fields keep their value.
type UpdateGameRequest struct {
	Title       *string    `json:"title"`
	Platform    *string    `json:"platform"`
	Genre       *string    `json:"genre"`
	Status      *string    `json:"status"`
	Price       *float64   `json:"price"`
	Currency    *string    `json:"currency"`
	Description *string    `json:"description"`
	ReleaseDate *time.Time `json:"releaseDate"`
	Image       *string    `json:"image"`
	IsActive    *bool      `json:"isActive"`
}

func (r *UpdateGameRequest) Normalize() {
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		r.Title = &trimmed
	}
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		r.Description = &trimmed
	}
}

func (r UpdateGameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, MaxTitleLength).Error("title must be between 1 and 100 characters"),
		),
		validation.Field(&r.Platform,
			validation.NilOrNotEmpty.Error("platform cannot be empty"),
			validation.By(enumRule("platform", func(s string) bool { return Platform(s).IsValid() })),
		),
		validation.Field(&r.Genre,
			validation.NilOrNotEmpty.Error("genre cannot be empty"),
			validation.By(uuidRule("genre")),
		),
		validation.Field(&r.Status,
			validation.NilOrNotEmpty.Error("status cannot be empty"),
			validation.By(enumRule("status", func(s string) bool { return Status(s).IsValid() })),
		),
		validation.Field(&r.Price,
			validation.Min(0.0).Error("price cannot be negative"),
			validation.Max(MaxPrice).Error("price cannot exceed 9999"),
		),
		validation.Field(&r.Currency,
			validation.NilOrNotEmpty.Error("currency cannot be empty"),
			validation.By(enumRule("currency", func(s string) bool { return Currency(s).IsValid() })),
		),
		validation.Field(&r.Description,
			validation.Length(0, MaxDescriptionLength).Error("description cannot exceed 500 characters"),
		),
	)
}

// ApplyTo copies the present fields onto the entity.
func (r *UpdateGameRequest) ApplyTo(g *Game) {
	if r.Title != nil {
		g.Title = *r.Title
	}
	if r.Platform != nil {
		g.Platform = Platform(*r.Platform)
	}
	if r.Genre != nil {
		if id, err := uuid.Parse(*r.Genre); err == nil {
			g.GenreID = id
			g.Genre = nil
		}
	}
	if r.Status != nil {
		g.Status = Status(*r.Status)
	}
	if r.Price != nil {
		g.Price = decimal.NewFromFloat(*r.Price)
	}
	if r.Currency != nil {
		g.Currency = Currency(*r.Currency)
	}
	if r.Description != nil {
		g.Description = r.Description
	}
	if r.ReleaseDate != nil {
		g.ReleaseDate = r.ReleaseDate
	}
	if r.Image != nil {
		g.Image = r.Image
	}
	if r.IsActive != nil {
		g.IsActive = *r.IsActive
	}
}

// Filter narrows list queries. Zero values mean "no constraint".
type Filter struct {
	Platform string
	Status   string
	GenreID  string
	Search   string
	IsActive *bool
	Sort     string
	Page     int
	Limit    int
}

func enumRule(field string, valid func(string) bool) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := stringValue(value)
		if !ok || s == "" {
			return nil
		}
		if !valid(s) {
			return validation.NewError("validation_enum", field+" has an invalid value")
		}
		return nil
	}
}

func uuidRule(field string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := stringValue(value)
		if !ok || s == "" {
			return nil
		}
		if _, err := uuid.Parse(s); err != nil {
			return validation.NewError("validation_id", field+" must be a valid id")
		}
		return nil
	}
}

func stringValue(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	return "", false
}
