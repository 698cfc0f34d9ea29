package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gaming-collection-backend/internal/domains/genre"
	"gaming-collection-backend/internal/shared/response"
)

type GenreHandler struct {
	service genre.Service
}

func NewGenreHandler(svc genre.Service) *GenreHandler {
	return &GenreHandler{service: svc}
}

// List - GET /api/genres?search=&active=&page=&limit=&sort=
func (h *GenreHandler) List(c *gin.Context) {
	filter := genre.Filter{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
	}

	if activeStr := c.Query("active"); activeStr != "" {
		active := activeStr == "true"
		filter.IsActive = &active
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}

	genres, pagination, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Internal(c, "failed to retrieve genres", err)
		return
	}

	response.List(c, "genres retrieved successfully", genres, pagination)
}

// ListActive - GET /api/genres/active
func (h *GenreHandler) ListActive(c *gin.Context) {
	genres, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Internal(c, "failed to retrieve active genres", err)
		return
	}

	response.Collection(c, "active genres retrieved successfully", genres, len(genres))
}

// GetByID - GET /api/genres/:id
func (h *GenreHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	g, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to retrieve genre")
		return
	}

	response.Success(c, http.StatusOK, "genre retrieved successfully", g)
}

// Create - POST /api/genres
func (h *GenreHandler) Create(c *gin.Context) {
	var req genre.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "failed to create genre")
		return
	}

	response.Success(c, http.StatusCreated, "genre created successfully", created)
}

// Update - PUT /api/genres/:id
func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req genre.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.fail(c, err, "failed to update genre")
		return
	}

	response.Success(c, http.StatusOK, "genre updated successfully", updated)
}

// SoftDelete - DELETE /api/genres/:id
func (h *GenreHandler) SoftDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.service.SoftDelete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to delete genre")
		return
	}

	response.Success(c, http.StatusOK, "genre deleted successfully", deleted)
}

// Restore - PATCH /api/genres/:id/restore
func (h *GenreHandler) Restore(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	restored, err := h.service.Restore(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to restore genre")
		return
	}

	response.Success(c, http.StatusOK, "genre restored successfully", restored)
}

// PermanentDelete - DELETE /api/genres/:id/permanent
func (h *GenreHandler) PermanentDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	removed, err := h.service.PermanentDelete(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to permanently delete genre")
		return
	}

	response.Success(c, http.StatusOK, "genre permanently deleted", removed)
}

// parseID rejects malformed ids before any store round trip.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid id format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *GenreHandler) fail(c *gin.Context, err error, fallback string) {
	if genre.IsValidationError(err) {
		response.ValidationFailed(c, genre.ValidationMessages(err))
		return
	}

	switch status := genre.ToHTTPStatus(err); status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		response.Internal(c, fallback, err)
	}
}
