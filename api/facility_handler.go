package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	fc "github.com/lighthouse-academy/lighthouse-backend/facility"
	"github.com/lighthouse-academy/lighthouse-backend/policy"
)

type FacilityService interface {
	GetFacilities(ctx context.Context) ([]fc.Facility, error)
	FindFacilityByID(ctx context.Context, id string) (fc.Facility, error)
	CreateFacility(ctx context.Context, actor policy.Actor, f fc.Facility) (fc.Facility, error)
	ModifyFacility(ctx context.Context, actor policy.Actor, f fc.Facility) error
	DeleteFacility(ctx context.Context, actor policy.Actor, id string) error
}

type FacilityHandler struct {
	service FacilityService
}

func NewFacilityHandler(service FacilityService) *FacilityHandler {
	return &FacilityHandler{service: service}
}

func (h *FacilityHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Modify)
	rg.DELETE("/:id", h.Delete)
}

func (h *FacilityHandler) List(c *gin.Context) {
	facilities, err := h.service.GetFacilities(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve facilities",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, facilities)
}

func (h *FacilityHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	f, err := h.service.FindFacilityByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, fc.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "facility not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch facility",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, f)
}

func (h *FacilityHandler) Create(c *gin.Context) {
	actor := currentUser(c).Actor()

	var f fc.Facility

	if err := c.BindJSON(&f); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	inserted, err := h.service.CreateFacility(c.Request.Context(), actor, f)

	if err != nil {
		c.Error(err)
		if errors.Is(err, fc.ErrInvalidFacility) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, fc.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to create facilities"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create facility"})
		}

		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *FacilityHandler) Modify(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	var f fc.Facility

	if err := c.BindJSON(&f); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	f.ID = id

	err := h.service.ModifyFacility(c.Request.Context(), actor, f)

	if err != nil {
		c.Error(err)
		if errors.Is(err, fc.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		} else if errors.Is(err, fc.ErrInvalidFacility) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, fc.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to modify facilities"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to modify facility"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "facility modified"})
}

func (h *FacilityHandler) Delete(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	err := h.service.DeleteFacility(c.Request.Context(), actor, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, fc.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		} else if errors.Is(err, fc.ErrFacilityInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "facility has active bookings"})
		} else if errors.Is(err, fc.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to delete facilities"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete facility"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "facility deleted"})
}
