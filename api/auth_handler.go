package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lighthouse-academy/lighthouse-backend/user"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (user.User, error)
	Authenticate(ctx context.Context, email, password string) (user.User, error)
}

type AuthHandler struct {
	service  AuthService
	secret   string
	tokenTTL time.Duration
}

func NewAuthHandler(service AuthService, secret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{service: service, secret: secret, tokenTTL: tokenTTL}
}

func (h *AuthHandler) Register(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.POST("/register", h.SignUp)
	rg.POST("/login", h.SignIn)
	rg.GET("/me", authRequired, h.Me)
}

type credentialsRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req credentialsRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	account, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	c.JSON(http.StatusCreated, account)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req credentialsRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	account, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Password)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign in"})
		return
	}

	token, err := CreateAccessToken(h.secret, account.ID, account.Role, account.Email, h.tokenTTL)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  account,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, currentUser(c))
}
