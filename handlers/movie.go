package handlers

import (
	"errors"
	"net/http"

	"vidly/services/movie"
	"vidly/utils"

	"github.com/gin-gonic/gin"
)

// MovieHandler exposes the movie catalog endpoints.
type MovieHandler struct {
	Service movie.MovieService
}

func NewMovieHandler(svc movie.MovieService) *MovieHandler {
	return &MovieHandler{Service: svc}
}

// Required numeric fields are pointers so a legitimate zero (a movie
// registered with no copies yet) survives the required check.
type movieCreateRequest struct {
	Title           string   `json:"title" binding:"required,min=3,max=255"`
	GenreID         string   `json:"genreId" binding:"required"`
	NumberInStock   *int     `json:"numberInStock" binding:"required,gte=0,lte=255"`
	DailyRentalRate *float64 `json:"dailyRentalRate" binding:"required,gte=0,lte=255"`
}

type movieUpdateRequest struct {
	Title           string   `json:"title" binding:"required,min=3,max=255"`
	GenreID         string   `json:"genreId" binding:"required"`
	DailyRentalRate *float64 `json:"dailyRentalRate" binding:"required,gte=0,lte=255"`
}

func movieStatus(err error) int {
	if errors.Is(err, movie.ErrNotFound) || errors.Is(err, movie.ErrGenreNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ListMovies handles GET /api/movies.
func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch movies", err.Error())
		return
	}
	c.JSON(http.StatusOK, movies)
}

// GetMovie handles GET /api/movies/:id.
func (h *MovieHandler) GetMovie(c *gin.Context) {
	m, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, movieStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, m)
}

// CreateMovie handles POST /api/movies.
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req movieCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid movie payload", err.Error())
		return
	}

	m, err := h.Service.Create(c.Request.Context(), req.Title, req.GenreID, *req.NumberInStock, *req.DailyRentalRate)
	if err != nil {
		utils.JSONError(c, movieStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, m)
}

// UpdateMovie handles PUT /api/movies/:id.
func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	var req movieUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid movie payload", err.Error())
		return
	}

	m, err := h.Service.Update(c.Request.Context(), c.Param("id"), req.Title, req.GenreID, *req.DailyRentalRate)
	if err != nil {
		utils.JSONError(c, movieStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteMovie handles DELETE /api/movies/:id.
func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	m, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, movieStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, m)
}
