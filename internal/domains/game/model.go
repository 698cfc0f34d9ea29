package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Platform is the closed set of storefronts a game can belong to.
type Platform string

const (
	PlatformSteam       Platform = "Steam"
	PlatformEpic        Platform = "Epic Games"
	PlatformGamePass    Platform = "Xbox Game Pass"
	PlatformEAPlay      Platform = "EA Play"
	PlatformRiot        Platform = "Riot Games"
	PlatformUbisoft     Platform = "Ubisoft Connect"
	PlatformBattleNet   Platform = "Battle.net"
	PlatformPlayStation Platform = "PlayStation Store"
	PlatformNintendo    Platform = "Nintendo eShop"
	PlatformGOG         Platform = "GOG"
	PlatformOrigin      Platform = "Origin"
	PlatformOther       Platform = "Otros"
)

var platforms = []Platform{
	PlatformSteam, PlatformEpic, PlatformGamePass, PlatformEAPlay,
	PlatformRiot, PlatformUbisoft, PlatformBattleNet, PlatformPlayStation,
	PlatformNintendo, PlatformGOG, PlatformOrigin, PlatformOther,
}

func (p Platform) IsValid() bool {
	for _, v := range platforms {
		if p == v {
			return true
		}
	}
	return false
}

// ValidPlatforms lists the accepted values, for enum-gate error messages.
func ValidPlatforms() []string {
	out := make([]string, len(platforms))
	for i, p := range platforms {
		out[i] = string(p)
	}
	return out
}

// Status tracks where a game sits in the owner's backlog.
type Status string

const (
	StatusPlayed   Status = "Jugado"
	StatusUnplayed Status = "Sin Jugar"
	StatusToBuy    Status = "Comprar"
)

var statuses = []Status{StatusPlayed, StatusUnplayed, StatusToBuy}

func (s Status) IsValid() bool {
	for _, v := range statuses {
		if s == v {
			return true
		}
	}
	return false
}

func ValidStatuses() []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// Currency is the closed set of price currencies.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyARS Currency = "ARS"
	CurrencyCLP Currency = "CLP"
	CurrencyMXN Currency = "MXN"
)

var currencies = []Currency{CurrencyUSD, CurrencyEUR, CurrencyARS, CurrencyCLP, CurrencyMXN}

func (c Currency) IsValid() bool {
	for _, v := range currencies {
		if c == v {
			return true
		}
	}
	return false
}

func ValidCurrencies() []string {
	out := make([]string, len(currencies))
	for i, c := range currencies {
		out[i] = string(c)
	}
	return out
}

// GenreRef is the populated projection of the referenced genre attached to
// every game read.
type GenreRef struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
}

// Game is a single entry in the collection. It owns its scalar fields and
// holds a non-owning reference to a genre; deactivating or deleting the
// genre later does not cascade here.
type Game struct {
	ID          uuid.UUID       `db:"id"`
	Title       string          `db:"title"`
	Platform    Platform        `db:"platform"`
	GenreID     uuid.UUID       `db:"genre_id"`
	Genre       *GenreRef       `db:"-"` // populated by an explicit JOIN on read
	Status      Status          `db:"status"`
	Price       decimal.Decimal `db:"price"`
	Currency    Currency        `db:"currency"`
	Description *string         `db:"description"`
	ReleaseDate *time.Time      `db:"release_date"`
	Image       *string         `db:"image"`
	IsActive    bool            `db:"is_active"`
	DeletedAt   *time.Time      `db:"deleted_at"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (g *Game) IsDeleted() bool {
	return g.DeletedAt != nil
}

func (g *Game) HasImage() bool {
	return g.Image != nil && *g.Image != ""
}

// FormattedPrice renders the display string, e.g. "USD 39.99". Derived at
// serialization time; the stored numeric price is untouched.
func (g *Game) FormattedPrice() string {
	return fmt.Sprintf("%s %s", g.Currency, g.Price.StringFixed(2))
}
