package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitmanager/internal/app"
	"fitmanager/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err.Error())
		return
	}

	result, err := h.authService.Register(app.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUsernameExists), errors.Is(err, app.ErrEmailExists):
			response.Message(c, http.StatusBadRequest, "User already exists")
		case errors.Is(err, app.ErrPasswordTooShort), errors.Is(err, app.ErrInvalidInput):
			response.Message(c, http.StatusBadRequest, err.Error())
		default:
			response.ServerError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created",
		"token":   result.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err.Error())
		return
	}

	result, err := h.authService.Login(app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidCredential), errors.Is(err, app.ErrInvalidInput):
			response.Message(c, http.StatusBadRequest, "Invalid credentials")
		default:
			response.ServerError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User logged in",
		"token":   result.Token,
	})
}

// Verify answers 200 with a boolean on both branches; no token is issued.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err.Error())
		return
	}

	verified, err := h.authService.Verify(app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	if !verified {
		c.JSON(http.StatusOK, gin.H{
			"message":  "Invalid credentials",
			"verified": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Credentials verified",
		"verified": true,
	})
}
