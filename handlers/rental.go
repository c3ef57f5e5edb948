package handlers

import (
	"net/http"

	"vidly/services/rental"
	"vidly/utils"

	"github.com/gin-gonic/gin"
)

// RentalHandler exposes checkout, return and rental queries.
type RentalHandler struct {
	Service rental.RentalService
}

func NewRentalHandler(svc rental.RentalService) *RentalHandler {
	return &RentalHandler{Service: svc}
}

type rentalRequest struct {
	CustomerID string `json:"customerId" binding:"required"`
	MovieID    string `json:"movieId" binding:"required"`
}

// rentalStatus maps the rental service's business-error codes onto HTTP
// statuses. Conflicts (out of stock, already processed) are the caller's
// problem, not ours: 400, no retry.
func rentalStatus(err error) int {
	switch rental.Code(err) {
	case rental.ErrNotFound:
		return http.StatusNotFound
	case rental.ErrOutOfStock, rental.ErrAlreadyProcessed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ListRentals handles GET /api/rentals.
func (h *RentalHandler) ListRentals(c *gin.Context) {
	rentals, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch rentals", err.Error())
		return
	}
	c.JSON(http.StatusOK, rentals)
}

// GetRental handles GET /api/rentals/:id.
func (h *RentalHandler) GetRental(c *gin.Context) {
	r, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, rentalStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, r)
}

// CreateRental handles POST /api/rentals (checkout).
func (h *RentalHandler) CreateRental(c *gin.Context) {
	var req rentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid rental payload", err.Error())
		return
	}

	r, err := h.Service.Checkout(c.Request.Context(), req.CustomerID, req.MovieID)
	if err != nil {
		utils.JSONError(c, rentalStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ReturnRental handles POST /api/returns.
func (h *RentalHandler) ReturnRental(c *gin.Context) {
	var req rentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid return payload", err.Error())
		return
	}

	r, err := h.Service.Return(c.Request.Context(), req.CustomerID, req.MovieID)
	if err != nil {
		utils.JSONError(c, rentalStatus(err), err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, r)
}
