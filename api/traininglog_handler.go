package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lighthouse-academy/lighthouse-backend/policy"
	tl "github.com/lighthouse-academy/lighthouse-backend/traininglog"
	"github.com/lighthouse-academy/lighthouse-backend/user"
)

type TrainingLogService interface {
	CreateTrainingLog(ctx context.Context, actor policy.Actor, l tl.TrainingLog) (tl.TrainingLog, error)
	ListTrainingLogs(ctx context.Context, actor policy.Actor, userID, coachID string) ([]tl.TrainingLog, error)
	FindTrainingLogByID(ctx context.Context, actor policy.Actor, id string) (tl.TrainingLog, error)
	ModifyTrainingLog(ctx context.Context, actor policy.Actor, updated tl.TrainingLog) error
	DeleteTrainingLog(ctx context.Context, actor policy.Actor, id string) error
}

type TrainingLogHandler struct {
	service TrainingLogService
}

func NewTrainingLogHandler(service TrainingLogService) *TrainingLogHandler {
	return &TrainingLogHandler{service: service}
}

func (h *TrainingLogHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Modify)
	rg.DELETE("/:id", h.Delete)
}

func (h *TrainingLogHandler) List(c *gin.Context) {
	actor := currentUser(c).Actor()
	userID := c.Query("userId")
	coachID := c.Query("coachId")

	logs, err := h.service.ListTrainingLogs(c.Request.Context(), actor, userID, coachID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve training logs"})
		return
	}

	c.IndentedJSON(http.StatusOK, logs)
}

func (h *TrainingLogHandler) GetByID(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	log, err := h.service.FindTrainingLogByID(c.Request.Context(), actor, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, tl.ErrTrainingLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "training log not found"})
		} else if errors.Is(err, tl.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to view this training log"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch training log"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, log)
}

func (h *TrainingLogHandler) Create(c *gin.Context) {
	actor := currentUser(c).Actor()

	var log tl.TrainingLog

	if err := c.BindJSON(&log); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	inserted, err := h.service.CreateTrainingLog(c.Request.Context(), actor, log)

	if err != nil {
		c.Error(err)
		if errors.Is(err, tl.ErrInvalidTrainingLog) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else if errors.Is(err, tl.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to create training logs"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create training log"})
		}

		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *TrainingLogHandler) Modify(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	var log tl.TrainingLog

	if err := c.BindJSON(&log); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	log.ID = id

	err := h.service.ModifyTrainingLog(c.Request.Context(), actor, log)

	if err != nil {
		c.Error(err)
		if errors.Is(err, tl.ErrTrainingLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "training log not found"})
		} else if errors.Is(err, tl.ErrInvalidTrainingLog) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, tl.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to modify this training log"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to modify training log"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "training log modified"})
}

func (h *TrainingLogHandler) Delete(c *gin.Context) {
	actor := currentUser(c).Actor()
	id := c.Param("id")

	err := h.service.DeleteTrainingLog(c.Request.Context(), actor, id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, tl.ErrTrainingLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "training log not found"})
		} else if errors.Is(err, tl.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to delete training logs"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete training log"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "training log deleted"})
}
