package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gaming-collection-backend/internal/domains/game"
	"gaming-collection-backend/internal/shared/response"
)

type GameHandler struct {
	service game.Service
}

func NewGameHandler(service game.Service) *GameHandler {
	return &GameHandler{service: service}
}

// List handles GET /api/games with optional platform, status, genre, search,
// active, page, limit and sort query parameters.
func (h *GameHandler) List(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	games, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, "failed to list games")
		return
	}
	response.List(c, "games retrieved successfully", games, pagination)
}

func (h *GameHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	g, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to get game")
		return
	}
	response.Success(c, http.StatusOK, "game retrieved successfully", g)
}

func (h *GameHandler) Create(c *gin.Context) {
	var req game.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "failed to create game")
		return
	}
	response.Success(c, http.StatusCreated, "game created successfully", created)
}

func (h *GameHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	var req game.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err, "failed to update game")
		return
	}
	response.Success(c, http.StatusOK, "game updated successfully", updated)
}

// SoftDelete marks a game deleted without removing the row.
func (h *GameHandler) SoftDelete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	deleted, err := h.service.SoftDelete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to delete game")
		return
	}
	response.Success(c, http.StatusOK, "game deleted successfully", deleted)
}

func (h *GameHandler) Restore(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	restored, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to restore game")
		return
	}
	response.Success(c, http.StatusOK, "game restored successfully", restored)
}

func (h *GameHandler) PermanentDelete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	removed, err := h.service.PermanentDelete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to permanently delete game")
		return
	}
	response.Success(c, http.StatusOK, "game permanently deleted", removed)
}

// SearchByTitle handles GET /api/games/search/:term. The term must be at
// least two characters after trimming.
func (h *GameHandler) SearchByTitle(c *gin.Context) {
	term := strings.TrimSpace(c.Param("term"))
	if len(term) < 2 {
		response.BadRequest(c, "search term must be at least 2 characters")
		return
	}
	games, err := h.service.SearchByTitle(c.Request.Context(), term)
	if err != nil {
		h.fail(c, err, "failed to search games")
		return
	}
	response.Collection(c, "games retrieved successfully", games, len(games))
}

// GetByStatus handles GET /api/games/by-status/:status. The value is gated
// against the status enum before touching the store.
func (h *GameHandler) GetByStatus(c *gin.Context) {
	status := game.Status(c.Param("status"))
	if !status.IsValid() {
		response.BadRequest(c, fmt.Sprintf("invalid status, must be one of: %s",
			strings.Join(game.ValidStatuses(), ", ")))
		return
	}
	games, err := h.service.GetByStatus(c.Request.Context(), status)
	if err != nil {
		h.fail(c, err, "failed to get games by status")
		return
	}
	response.Collection(c, "games retrieved successfully", games, len(games))
}

// GetByPlatform handles GET /api/games/by-platform/:platform.
func (h *GameHandler) GetByPlatform(c *gin.Context) {
	platform := game.Platform(c.Param("platform"))
	if !platform.IsValid() {
		response.BadRequest(c, fmt.Sprintf("invalid platform, must be one of: %s",
			strings.Join(game.ValidPlatforms(), ", ")))
		return
	}
	games, err := h.service.GetByPlatform(c.Request.Context(), platform)
	if err != nil {
		h.fail(c, err, "failed to get games by platform")
		return
	}
	response.Collection(c, "games retrieved successfully", games, len(games))
}

// Export handles GET /api/games/export and streams an xlsx attachment built
// from the same filters the list endpoint accepts.
func (h *GameHandler) Export(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}
	f, err := h.service.ExportToExcel(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, "failed to export games")
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="games.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		response.Internal(c, "failed to write export", err)
	}
}

func (h *GameHandler) parseFilter(c *gin.Context) (game.Filter, bool) {
	filter := game.Filter{
		Platform: c.Query("platform"),
		Status:   c.Query("status"),
		GenreID:  c.Query("genre"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}
	if filter.GenreID != "" {
		if _, err := uuid.Parse(filter.GenreID); err != nil {
			response.BadRequest(c, "invalid genre filter")
			return filter, false
		}
	}
	if v := c.Query("active"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	return filter, true
}

func (h *GameHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *GameHandler) fail(c *gin.Context, err error, fallback string) {
	if game.IsValidationError(err) {
		response.ValidationFailed(c, game.ValidationMessages(err))
		return
	}
	switch game.ToHTTPStatus(err) {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, fallback, err)
	}
}
