package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	bk "github.com/lighthouse-academy/lighthouse-backend/booking"
	"github.com/lighthouse-academy/lighthouse-backend/policy"
	"github.com/lighthouse-academy/lighthouse-backend/user"
)

type BookingStatsService interface {
	GetBookingTotals(ctx context.Context, actor policy.Actor) (bk.Totals, error)
	GetBookingCountPerFacility(ctx context.Context, actor policy.Actor) ([]bk.FacilityBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context, actor policy.Actor) ([]bk.WeekDayBookingCount, error)
	GetBookingCountPerFacilityInPeriod(ctx context.Context, actor policy.Actor, start, end time.Time) ([]bk.FacilityBookingCount, error)
}

type UserStatsService interface {
	GetUserCountPerRole(ctx context.Context, actor policy.Actor) ([]user.RoleCount, error)
}

type AnalyticsHandler struct {
	bookings BookingStatsService
	users    UserStatsService
}

func NewAnalyticsHandler(bookings BookingStatsService, users UserStatsService) *AnalyticsHandler {
	return &AnalyticsHandler{bookings: bookings, users: users}
}

func (h *AnalyticsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.Overview)
	rg.GET("/stats/facility", h.BookingsPerFacility)
	rg.GET("/stats/facility/period", h.BookingsPerFacilityInPeriod)
	rg.GET("/stats/day", h.BookingsPerWeekDay)
}

// Overview is the admin dashboard payload: booking totals next to the
// user count per role.
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	actor := currentUser(c).Actor()

	totals, err := h.bookings.GetBookingTotals(c.Request.Context(), actor)

	if err != nil {
		h.fail(c, err)
		return
	}

	roles, err := h.users.GetUserCountPerRole(c.Request.Context(), actor)

	if err != nil {
		h.fail(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"bookings":     totals,
		"usersPerRole": roles,
	})
}

func (h *AnalyticsHandler) BookingsPerFacility(c *gin.Context) {
	actor := currentUser(c).Actor()

	stats, err := h.bookings.GetBookingCountPerFacility(c.Request.Context(), actor)

	if err != nil {
		h.fail(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) BookingsPerFacilityInPeriod(c *gin.Context) {
	actor := currentUser(c).Actor()
	startQuery := c.Query("startPeriod")
	endQuery := c.Query("endPeriod")

	startTime, err := time.Parse(time.DateOnly, startQuery)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse startPeriod"})
		return
	}

	endTime, err := time.Parse(time.DateOnly, endQuery)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse endPeriod"})
		return
	}

	stats, err := h.bookings.GetBookingCountPerFacilityInPeriod(c.Request.Context(), actor, startTime, endTime)

	if err != nil {
		h.fail(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) BookingsPerWeekDay(c *gin.Context) {
	actor := currentUser(c).Actor()

	stats, err := h.bookings.GetBookingCountPerWeekDay(c.Request.Context(), actor)

	if err != nil {
		h.fail(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) fail(c *gin.Context, err error) {
	c.Error(err)
	if errors.Is(err, bk.ErrNotAllowed) || errors.Is(err, user.ErrNotAllowed) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to view analytics"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
}
