package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	bk "github.com/lighthouse-academy/lighthouse-backend/booking"
	"github.com/lighthouse-academy/lighthouse-backend/facility"
	"github.com/lighthouse-academy/lighthouse-backend/policy"
	"github.com/lighthouse-academy/lighthouse-backend/user"
)

type BookingService interface {
	CreateBooking(ctx context.Context, actor policy.Actor, b bk.Booking) (bk.Booking, error)
	FindBookingByID(ctx context.Context, actor policy.Actor, id string) (bk.Booking, error)
	ListBookings(ctx context.Context, actor policy.Actor, facilityID, userID string) ([]bk.Booking, error)
	ModifyBooking(ctx context.Context, actor policy.Actor, updated bk.Booking) error
	ConfirmBooking(ctx context.Context, actor policy.Actor, id string) error
	CancelBooking(ctx context.Context, actor policy.Actor, id string) error
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Modify)
	rg.PUT("/:id/confirm", h.Confirm)
	rg.DELETE("/:id", h.Cancel)
}

func (h *BookingHandler) List(c *gin.Context) {
	actor := currentUser(c).Actor()
	facilityID := c.Query("facilityId")
	userID := c.Query("userId")

	bookings, err := h.service.ListBookings(c.Request.Context(), actor, facilityID, userID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	booking, err := h.service.FindBookingByID(c.Request.Context(), actor, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "booking not found",
			})
			return
		}
		if errors.Is(err, bk.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "not allowed to view this booking",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to fetch booking",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

type bookingRequest struct {
	FacilityID string    `json:"facilityId" binding:"required"`
	UserID     string    `json:"userId"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
	Notes      string    `json:"notes"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	actor := currentUser(c).Actor()

	var req bookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), actor, bk.Booking{
		FacilityID: req.FacilityID,
		UserID:     req.UserID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	})

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endTime must be after startTime"})
		} else if errors.Is(err, facility.ErrFacilityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		} else if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else if errors.Is(err, bk.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to book for another user"})
		} else if errors.Is(err, bk.ErrSlotConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "slot already booked"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}

		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) Modify(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	var req bookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.ModifyBooking(c.Request.Context(), actor, bk.Booking{
		ID:        id,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endTime must be after startTime"})
		} else if errors.Is(err, bk.ErrInvalidBookingState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only pending bookings can be modified"})
		} else if errors.Is(err, bk.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to modify this booking"})
		} else if errors.Is(err, bk.ErrSlotConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "slot already booked"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to modify booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking modified"})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	err := h.service.ConfirmBooking(c.Request.Context(), actor, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrInvalidBookingState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only pending bookings can be confirmed"})
		} else if errors.Is(err, bk.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to confirm bookings"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking confirmed"})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	err := h.service.CancelBooking(c.Request.Context(), actor, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to cancel this booking"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}
