package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minibank/ledger-api/internal/cqrs"
	"github.com/minibank/ledger-api/internal/middleware"
)

// AuthQuerier defines the read-side operations used by AuthHandler.
type AuthQuerier interface {
	Login(cqrs.LoginCommand) (string, error)
}

// AuthHandler handles login plus the static login page.
type AuthHandler struct {
	queries       AuthQuerier
	loginPagePath string
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func NewAuthHandler(queries AuthQuerier, loginPagePath string) *AuthHandler {
	return &AuthHandler{queries: queries, loginPagePath: loginPagePath}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "username and password are required")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.queries.Login(cqrs.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		middleware.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// LoginPage serves the static login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.File(h.loginPagePath)
}
