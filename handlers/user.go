package handlers

import (
	"errors"
	"net/http"

	"vidly/services/user"
	"vidly/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes account registration and the current-user endpoint.
type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=5,max=50"`
	Email    string `json:"email" binding:"required,email,min=5,max=255"`
	Password string `json:"password" binding:"required,min=8,max=255"`
}

// RegisterUser handles POST /api/users. The token rides in the
// x-auth-token response header so the client is signed in right away.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to register user", err.Error())
		return
	}

	c.Header("x-auth-token", resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// Me handles GET /api/users/me for the authenticated caller.
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")
	u, err := h.Service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch user", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}
