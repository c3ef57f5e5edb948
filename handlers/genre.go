package handlers

import (
	"errors"
	"net/http"

	"vidly/services/genre"
	"vidly/utils"

	"github.com/gin-gonic/gin"
)

// GenreHandler exposes the genre CRUD endpoints.
type GenreHandler struct {
	Service genre.GenreService
}

func NewGenreHandler(svc genre.GenreService) *GenreHandler {
	return &GenreHandler{Service: svc}
}

type genreRequest struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}

// ListGenres handles GET /api/genres.
func (h *GenreHandler) ListGenres(c *gin.Context) {
	genres, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch genres", err.Error())
		return
	}
	c.JSON(http.StatusOK, genres)
}

// GetGenre handles GET /api/genres/:id.
func (h *GenreHandler) GetGenre(c *gin.Context) {
	g, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, genre.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch genre", err.Error())
		return
	}
	c.JSON(http.StatusOK, g)
}

// CreateGenre handles POST /api/genres.
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid genre payload", err.Error())
		return
	}

	g, err := h.Service.Create(c.Request.Context(), req.Name)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create genre", err.Error())
		return
	}
	c.JSON(http.StatusCreated, g)
}

// UpdateGenre handles PUT /api/genres/:id.
func (h *GenreHandler) UpdateGenre(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid genre payload", err.Error())
		return
	}

	g, err := h.Service.Update(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		if errors.Is(err, genre.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update genre", err.Error())
		return
	}
	c.JSON(http.StatusOK, g)
}

// DeleteGenre handles DELETE /api/genres/:id.
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	g, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, genre.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete genre", err.Error())
		return
	}
	c.JSON(http.StatusOK, g)
}
