package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lighthouse-academy/lighthouse-backend/policy"
	"github.com/lighthouse-academy/lighthouse-backend/user"
)

type UserService interface {
	ListUsers(ctx context.Context, actor policy.Actor) ([]user.Summary, error)
	ChangeRole(ctx context.Context, actor policy.Actor, userID string, role policy.Role) error
	GetProfile(ctx context.Context, actor policy.Actor, userID string) (user.User, error)
	UpdateProfile(ctx context.Context, actor policy.Actor, userID, name, membershipPlan string) error
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetProfile)
	rg.PUT("/:id", h.UpdateProfile)
	rg.PUT("/:id/role", h.ChangeRole)
}

// RegisterProfile exposes the caller's own profile without an id in the
// path.
func (h *UserHandler) RegisterProfile(rg *gin.RouterGroup) {
	rg.GET("", h.GetOwnProfile)
	rg.PUT("", h.UpdateOwnProfile)
}

func (h *UserHandler) List(c *gin.Context) {
	actor := currentUser(c).Actor()

	users, err := h.service.ListUsers(c.Request.Context(), actor)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to list users"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve users"})
		return
	}

	c.IndentedJSON(http.StatusOK, users)
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	h.getProfile(c, c.Param("id"))
}

func (h *UserHandler) GetOwnProfile(c *gin.Context) {
	h.getProfile(c, currentUser(c).ID)
}

func (h *UserHandler) getProfile(c *gin.Context, id string) {
	actor := currentUser(c).Actor()

	profile, err := h.service.GetProfile(c.Request.Context(), actor, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else if errors.Is(err, user.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to view this profile"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, profile)
}

type profileRequest struct {
	Name           string `json:"name"`
	MembershipPlan string `json:"membershipPlan"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	h.updateProfile(c, c.Param("id"))
}

func (h *UserHandler) UpdateOwnProfile(c *gin.Context) {
	h.updateProfile(c, currentUser(c).ID)
}

func (h *UserHandler) updateProfile(c *gin.Context, id string) {
	actor := currentUser(c).Actor()

	var req profileRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.UpdateProfile(c.Request.Context(), actor, id, req.Name, req.MembershipPlan)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else if errors.Is(err, user.ErrInvalidProfile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, user.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to update this profile"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "profile updated"})
}

type roleRequest struct {
	Role policy.Role `json:"role" binding:"required"`
}

func (h *UserHandler) ChangeRole(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	var req roleRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.ChangeRole(c.Request.Context(), actor, id, req.Role)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else if errors.Is(err, user.ErrInvalidRole) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		} else if errors.Is(err, user.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to change roles"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to change role"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "role updated"})
}
