package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"gaming-collection-backend/internal/domains/game"
	"gaming-collection-backend/internal/shared/query"
)

// fakeService cancels out the store; each field overrides one behavior.
type fakeService struct {
	games      []*game.GameResponse
	getErr     error
	createdReq *game.CreateGameRequest
	createErr  error
}

func (f *fakeService) List(context.Context, game.Filter) ([]*game.GameResponse, *query.Pagination, error) {
	p := query.NewPagination(query.NewPageable(1, 12, 12), len(f.games))
	return f.games, p, nil
}

func (f *fakeService) GetByID(context.Context, uuid.UUID) (*game.GameResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if len(f.games) == 0 {
		return nil, game.ErrGameNotFound
	}
	return f.games[0], nil
}

func (f *fakeService) Create(_ context.Context, req *game.CreateGameRequest) (*game.GameResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	f.createdReq = req
	return req.ToEntity().ToResponse(), nil
}

func (f *fakeService) Update(context.Context, uuid.UUID, *game.UpdateGameRequest) (*game.GameResponse, error) {
	return nil, game.ErrGameNotFound
}

func (f *fakeService) SoftDelete(context.Context, uuid.UUID) (*game.GameResponse, error) {
	return nil, game.ErrAlreadyDeleted
}

func (f *fakeService) Restore(context.Context, uuid.UUID) (*game.GameResponse, error) {
	return nil, game.ErrNotDeleted
}

func (f *fakeService) PermanentDelete(context.Context, uuid.UUID) (*game.GameResponse, error) {
	return nil, game.ErrGameNotFound
}

func (f *fakeService) SearchByTitle(context.Context, string) ([]*game.GameResponse, error) {
	return f.games, nil
}

func (f *fakeService) GetByStatus(context.Context, game.Status) ([]*game.GameResponse, error) {
	return f.games, nil
}

func (f *fakeService) GetByPlatform(context.Context, game.Platform) ([]*game.GameResponse, error) {
	return f.games, nil
}

func (f *fakeService) ExportToExcel(context.Context, game.Filter) (*excelize.File, error) {
	return excelize.NewFile(), nil
}

func newTestRouter(svc game.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewGameHandler(svc)

	r := gin.New()
	games := r.Group("/api/games")
	{
		games.GET("", h.List)
		games.GET("/export", h.Export)
		games.GET("/search/:term", h.SearchByTitle)
		games.GET("/by-status/:status", h.GetByStatus)
		games.GET("/by-platform/:platform", h.GetByPlatform)
		games.GET("/:id", h.GetByID)
		games.POST("", h.Create)
		games.DELETE("/:id", h.SoftDelete)
	}
	return r
}

type envelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       json.RawMessage   `json:"data"`
	Count      *int              `json:"count"`
	Pagination *query.Pagination `json:"pagination"`
	Errors     []string          `json:"errors"`
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 && strings.Contains(w.Header().Get("Content-Type"), "json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func sampleResponse() *game.GameResponse {
	g := game.Game{
		ID:       uuid.New(),
		Title:    "Hades",
		Platform: game.PlatformSteam,
		GenreID:  uuid.New(),
		Status:   game.StatusPlayed,
		Price:    decimal.NewFromFloat(24.99),
		Currency: game.CurrencyUSD,
		IsActive: true,
	}
	return g.ToResponse()
}

func TestListGames(t *testing.T) {
	r := newTestRouter(&fakeService{games: []*game.GameResponse{sampleResponse()}})

	w, env := doRequest(t, r, http.MethodGet, "/api/games", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.Total)
}

func TestListGamesRejectsMalformedGenreFilter(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w, env := doRequest(t, r, http.MethodGet, "/api/games?genre=not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestGetByStatusGate(t *testing.T) {
	r := newTestRouter(&fakeService{games: []*game.GameResponse{sampleResponse()}})

	t.Run("unknown status lists the valid values", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodGet, "/api/games/by-status/Playing", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Message, "Jugado")
		assert.Contains(t, env.Message, "Sin Jugar")
		assert.Contains(t, env.Message, "Comprar")
	})

	t.Run("known status passes through", func(t *testing.T) {
		w, env := doRequest(t, r, http.MethodGet, "/api/games/by-status/Jugado", "")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, env.Count)
		assert.Equal(t, 1, *env.Count)
	})
}

func TestGetByPlatformGate(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w, env := doRequest(t, r, http.MethodGet, "/api/games/by-platform/Itch.io", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "Steam")
	assert.Contains(t, env.Message, "Otros")
}

func TestSearchTermLength(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w, env := doRequest(t, r, http.MethodGet, "/api/games/search/a", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "at least 2 characters")

	w, _ = doRequest(t, r, http.MethodGet, "/api/games/search/ha", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetByIDRejectsMalformedID(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w, env := doRequest(t, r, http.MethodGet, "/api/games/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id format", env.Message)
}

func TestCreateGame(t *testing.T) {
	t.Run("returns the full violation list", func(t *testing.T) {
		r := newTestRouter(&fakeService{})

		w, env := doRequest(t, r, http.MethodPost, "/api/games", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "validation error", env.Message)
		assert.GreaterOrEqual(t, len(env.Errors), 4)
	})

	t.Run("rejects an unavailable genre", func(t *testing.T) {
		r := newTestRouter(&fakeService{createErr: game.ErrGenreNotActive})

		body := `{"title":"Hades","platform":"Steam","genre":"` + uuid.NewString() + `","price":24.99}`
		w, env := doRequest(t, r, http.MethodPost, "/api/games", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, env.Message, "genre does not exist or is not active")
	})

	t.Run("creates a valid game", func(t *testing.T) {
		svc := &fakeService{}
		r := newTestRouter(svc)

		body := `{"title":"Hades","platform":"Steam","genre":"` + uuid.NewString() + `","price":24.99}`
		w, env := doRequest(t, r, http.MethodPost, "/api/games", body)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)
		require.NotNil(t, svc.createdReq)
		assert.Equal(t, "Sin Jugar", svc.createdReq.Status)

		var data map[string]interface{}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "USD 24.99", data["formattedPrice"])
		assert.Equal(t, false, data["hasImage"])
	})
}

func TestSoftDeleteStateConflict(t *testing.T) {
	r := newTestRouter(&fakeService{})

	w, env := doRequest(t, r, http.MethodDelete, "/api/games/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "already deleted")
}

func TestExport(t *testing.T) {
	r := newTestRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/games/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "games.xlsx")
	assert.NotZero(t, w.Body.Len())
}
