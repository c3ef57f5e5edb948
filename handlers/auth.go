package handlers

import (
	"errors"
	"net/http"

	"vidly/services/user"
	"vidly/utils"

	"github.com/gin-gonic/gin"
)

type authRequest struct {
	Email    string `json:"email" binding:"required,email,min=5,max=255"`
	Password string `json:"password" binding:"required,min=8,max=255"`
}

// Authenticate handles POST /api/auth: credentials in, signed token out.
func (h *UserHandler) Authenticate(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid auth payload", err.Error())
		return
	}

	token, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
