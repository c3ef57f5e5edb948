package handlers

import (
	"errors"
	"net/http"

	"vidly/services/customer"
	"vidly/utils"

	"github.com/gin-gonic/gin"
)

// CustomerHandler exposes the customer CRUD endpoints.
type CustomerHandler struct {
	Service customer.CustomerService
}

func NewCustomerHandler(svc customer.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: svc}
}

type customerRequest struct {
	Name   string `json:"name" binding:"required,min=3,max=50"`
	Phone  string `json:"phone" binding:"required,min=5,max=50"`
	IsGold bool   `json:"isGold"`
}

// ListCustomers handles GET /api/customers.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch customers", err.Error())
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /api/customers/:id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	cust, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, cust)
}

// CreateCustomer handles POST /api/customers.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload", err.Error())
		return
	}

	cust, err := h.Service.Create(c.Request.Context(), req.Name, req.Phone, req.IsGold)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create customer", err.Error())
		return
	}
	c.JSON(http.StatusCreated, cust)
}

// UpdateCustomer handles PUT /api/customers/:id.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid customer payload", err.Error())
		return
	}

	cust, err := h.Service.Update(c.Request.Context(), c.Param("id"), req.Name, req.Phone, req.IsGold)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, cust)
}

// DeleteCustomer handles DELETE /api/customers/:id.
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	cust, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete customer", err.Error())
		return
	}
	c.JSON(http.StatusOK, cust)
}
