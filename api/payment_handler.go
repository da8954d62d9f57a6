package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lighthouse-academy/lighthouse-backend/payment"
)

type PaymentService interface {
	Process(c payment.Charge) (payment.Intent, error)
	List() []payment.Record
}

type PaymentHandler struct {
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Process)
}

func (h *PaymentHandler) List(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, h.service.List())
}

func (h *PaymentHandler) Process(c *gin.Context) {
	var charge payment.Charge

	if err := c.BindJSON(&charge); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	intent, err := h.service.Process(charge)

	if err != nil {
		c.Error(err)
		if errors.Is(err, payment.ErrInvalidCharge) || errors.Is(err, payment.ErrUnsupportedMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process payment"})
		return
	}

	c.JSON(http.StatusCreated, intent)
}
