package game

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormattedPrice(t *testing.T) {
	cases := []struct {
		currency Currency
		price    float64
		want     string
	}{
		{CurrencyUSD, 39.99, "USD 39.99"},
		{CurrencyEUR, 5, "EUR 5.00"},
		{CurrencyARS, 12999.5, "ARS 12999.50"},
		{CurrencyUSD, 0, "USD 0.00"},
	}
	for _, tc := range cases {
		g := Game{Currency: tc.currency, Price: decimal.NewFromFloat(tc.price)}
		assert.Equal(t, tc.want, g.FormattedPrice())
	}
}

func TestHasImage(t *testing.T) {
	g := Game{}
	assert.False(t, g.HasImage())

	empty := ""
	g.Image = &empty
	assert.False(t, g.HasImage(), "empty string counts as no image")

	url := "https://example.com/cover.jpg"
	g.Image = &url
	assert.True(t, g.HasImage())
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, PlatformSteam.IsValid())
	assert.True(t, Platform("Otros").IsValid())
	assert.False(t, Platform("steam").IsValid(), "values are case sensitive")
	assert.False(t, Platform("Itch.io").IsValid())

	assert.True(t, StatusUnplayed.IsValid())
	assert.False(t, Status("Playing").IsValid())

	assert.True(t, CurrencyMXN.IsValid())
	assert.False(t, Currency("GBP").IsValid())

	assert.Len(t, ValidPlatforms(), 12)
	assert.Equal(t, []string{"Jugado", "Sin Jugar", "Comprar"}, ValidStatuses())
	assert.Equal(t, []string{"USD", "EUR", "ARS", "CLP", "MXN"}, ValidCurrencies())
}

func TestToResponse(t *testing.T) {
	genreID := uuid.New()
	url := "https://example.com/cover.jpg"
	g := Game{
		ID:       uuid.New(),
		Title:    "Hades",
		Platform: PlatformSteam,
		GenreID:  genreID,
		Genre:    &GenreRef{ID: genreID, Name: "Roguelike"},
		Status:   StatusPlayed,
		Price:    decimal.NewFromFloat(24.99),
		Currency: CurrencyUSD,
		Image:    &url,
		IsActive: true,
	}

	resp := g.ToResponse()
	assert.Equal(t, 24.99, resp.Price, "price stays numeric")
	assert.Equal(t, "USD 24.99", resp.FormattedPrice)
	assert.True(t, resp.HasImage)
	assert.Equal(t, "Roguelike", resp.Genre.Name)
	assert.Nil(t, resp.DeletedAt)
}

func TestToResponseWithoutPopulatedGenre(t *testing.T) {
	genreID := uuid.New()
	g := Game{GenreID: genreID, Price: decimal.Zero, Currency: CurrencyUSD}

	resp := g.ToResponse()
	// The reference survives even if the genre row is gone.
	assert.NotNil(t, resp.Genre)
	assert.Equal(t, genreID, resp.Genre.ID)
	assert.Empty(t, resp.Genre.Name)
}
