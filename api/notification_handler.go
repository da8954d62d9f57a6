package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	nt "github.com/lighthouse-academy/lighthouse-backend/notification"
	"github.com/lighthouse-academy/lighthouse-backend/policy"
	"github.com/lighthouse-academy/lighthouse-backend/user"
)

type NotificationService interface {
	GetInbox(ctx context.Context, actor policy.Actor, status nt.Status, limit, skip int) (nt.Inbox, error)
	Send(ctx context.Context, actor policy.Actor, n nt.Notification) (nt.Notification, error)
	MarkRead(ctx context.Context, actor policy.Actor, id string) error
	DeleteNotification(ctx context.Context, actor policy.Actor, id string) error
}

type NotificationHandler struct {
	service NotificationService
}

func NewNotificationHandler(service NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.Inbox)
	rg.POST("", h.Send)
	rg.PUT("/:id/read", h.MarkRead)
	rg.DELETE("/:id", h.Delete)
}

func (h *NotificationHandler) Inbox(c *gin.Context) {
	actor := currentUser(c).Actor()
	status := nt.Status(c.Query("status"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	skip, _ := strconv.Atoi(c.Query("skip"))

	inbox, err := h.service.GetInbox(c.Request.Context(), actor, status, limit, skip)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve notifications"})
		return
	}

	c.IndentedJSON(http.StatusOK, inbox)
}

func (h *NotificationHandler) Send(c *gin.Context) {
	actor := currentUser(c).Actor()

	var n nt.Notification

	if err := c.BindJSON(&n); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	sent, err := h.service.Send(c.Request.Context(), actor, n)

	if err != nil {
		c.Error(err)
		if errors.Is(err, nt.ErrInvalidNotification) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipient not found"})
		} else if errors.Is(err, nt.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to send notifications"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send notification"})
		}

		return
	}

	c.JSON(http.StatusCreated, sent)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	err := h.service.MarkRead(c.Request.Context(), actor, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, nt.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		} else if errors.Is(err, nt.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to modify this notification"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notification read"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "notification read"})
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	err := h.service.DeleteNotification(c.Request.Context(), actor, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, nt.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		} else if errors.Is(err, nt.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to delete this notification"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete notification"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "notification deleted"})
}
