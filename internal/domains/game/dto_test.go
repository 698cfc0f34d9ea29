package game

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func validCreateRequest() CreateGameRequest {
	return CreateGameRequest{
		Title:    "Hades",
		Platform: "Steam",
		Genre:    uuid.NewString(),
		Price:    floatPtr(24.99),
	}
}

func TestCreateGameRequestValidate(t *testing.T) {
	t.Run("valid request with defaults", func(t *testing.T) {
		req := validCreateRequest()
		req.Normalize()
		require.NoError(t, req.Validate())
		assert.Equal(t, "Sin Jugar", req.Status, "status defaults to unplayed")
		assert.Equal(t, "USD", req.Currency, "currency defaults to USD")
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		req := CreateGameRequest{}
		req.Normalize()
		err := req.Validate()
		require.Error(t, err)
		msgs := strings.Join(ValidationMessages(err), "; ")
		assert.Contains(t, msgs, "title is required")
		assert.Contains(t, msgs, "platform is required")
		assert.Contains(t, msgs, "genre is required")
		assert.Contains(t, msgs, "price is required")
	})

	t.Run("title length", func(t *testing.T) {
		req := validCreateRequest()
		req.Title = strings.Repeat("x", 101)
		assert.Error(t, req.Validate())

		req.Title = strings.Repeat("x", 100)
		assert.NoError(t, req.Validate())
	})

	t.Run("platform must be a known storefront", func(t *testing.T) {
		req := validCreateRequest()
		req.Platform = "Itch.io"
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, strings.Join(ValidationMessages(err), "; "), "platform")
	})

	t.Run("genre must be a well formed id", func(t *testing.T) {
		req := validCreateRequest()
		req.Genre = "not-a-uuid"
		assert.Error(t, req.Validate())
	})

	t.Run("price range", func(t *testing.T) {
		req := validCreateRequest()

		req.Price = floatPtr(-1)
		assert.Error(t, req.Validate())

		req.Price = floatPtr(10000)
		assert.Error(t, req.Validate())

		req.Price = floatPtr(0)
		assert.NoError(t, req.Validate(), "free games are allowed")

		req.Price = floatPtr(9999)
		assert.NoError(t, req.Validate())
	})

	t.Run("description too long", func(t *testing.T) {
		req := validCreateRequest()
		req.Description = strPtr(strings.Repeat("x", 501))
		assert.Error(t, req.Validate())
	})

	t.Run("unknown status and currency", func(t *testing.T) {
		req := validCreateRequest()
		req.Status = "Playing"
		assert.Error(t, req.Validate())

		req = validCreateRequest()
		req.Currency = "GBP"
		assert.Error(t, req.Validate())
	})
}

func TestCreateGameRequestToEntity(t *testing.T) {
	genreID := uuid.New()
	req := CreateGameRequest{
		Title:    "Celeste",
		Platform: "Steam",
		Genre:    genreID.String(),
		Price:    floatPtr(19.99),
	}
	req.Normalize()

	g := req.ToEntity()
	assert.Equal(t, "Celeste", g.Title)
	assert.Equal(t, PlatformSteam, g.Platform)
	assert.Equal(t, genreID, g.GenreID)
	assert.Equal(t, StatusUnplayed, g.Status)
	assert.Equal(t, CurrencyUSD, g.Currency)
	assert.True(t, g.Price.Equal(decimal.NewFromFloat(19.99)))
	assert.True(t, g.IsActive)
}

func TestUpdateGameRequestValidate(t *testing.T) {
	t.Run("empty request is fine", func(t *testing.T) {
		req := UpdateGameRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty title rejected", func(t *testing.T) {
		req := UpdateGameRequest{Title: strPtr("")}
		assert.Error(t, req.Validate())
	})

	t.Run("enum fields are gated", func(t *testing.T) {
		req := UpdateGameRequest{Platform: strPtr("Steam Deck")}
		assert.Error(t, req.Validate())

		req = UpdateGameRequest{Status: strPtr("Jugado")}
		assert.NoError(t, req.Validate())
	})

	t.Run("supplied empty strings rejected", func(t *testing.T) {
		req := UpdateGameRequest{
			Platform: strPtr(""),
			Status:   strPtr(""),
			Currency: strPtr(""),
			Genre:    strPtr(""),
		}
		err := req.Validate()
		require.Error(t, err)
		msgs := ValidationMessages(err)
		assert.Len(t, msgs, 4)
		assert.Contains(t, msgs, "platform: platform cannot be empty")
		assert.Contains(t, msgs, "status: status cannot be empty")
		assert.Contains(t, msgs, "currency: currency cannot be empty")
		assert.Contains(t, msgs, "genre: genre cannot be empty")
	})
}

func TestUpdateGameRequestApplyTo(t *testing.T) {
	genreID := uuid.New()
	g := &Game{
		Title:    "Hades",
		Platform: PlatformSteam,
		GenreID:  genreID,
		Genre:    &GenreRef{ID: genreID, Name: "Roguelike"},
		Status:   StatusUnplayed,
		Price:    decimal.NewFromFloat(24.99),
		Currency: CurrencyUSD,
		IsActive: true,
	}

	newGenre := uuid.New()
	req := UpdateGameRequest{
		Status: strPtr("Jugado"),
		Genre:  strPtr(newGenre.String()),
		Price:  floatPtr(9.99),
	}
	req.ApplyTo(g)

	assert.Equal(t, StatusPlayed, g.Status)
	assert.Equal(t, newGenre, g.GenreID)
	assert.Nil(t, g.Genre, "stale populated genre is dropped on reassignment")
	assert.True(t, g.Price.Equal(decimal.NewFromFloat(9.99)))
	assert.Equal(t, "Hades", g.Title, "absent fields keep their value")
	assert.True(t, g.IsActive)
}
