// Package payment is a provider placeholder: it mimics the shapes of
// Stripe payment intents and Razorpay orders without contacting either.
package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCharge = errors.New("missing required fields: bookingId, amount")

var ErrUnsupportedMethod = errors.New("unsupported payment method")

type Charge struct {
	BookingID     string  `json:"bookingId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"paymentMethod"`
}

type Intent struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret,omitempty"`
	Receipt      string `json:"receipt,omitempty"`
}

type Record struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Service struct{}

func NewService() *Service { return &Service{} }

// Process fabricates a successful payment for the given charge.
func (s *Service) Process(c Charge) (Intent, error) {
	if len(c.BookingID) == 0 || c.Amount <= 0 {
		return Intent{}, ErrInvalidCharge
	}

	if len(c.Currency) == 0 {
		c.Currency = "USD"
	}

	if len(c.PaymentMethod) == 0 {
		c.PaymentMethod = "stripe"
	}

	// Amounts are reported in the provider's minor unit.
	amount := int64(c.Amount * 100)

	switch c.PaymentMethod {
	case "stripe":
		id := "pi_" + uuid.NewString()
		return Intent{
			ID:           id,
			Amount:       amount,
			Currency:     strings.ToLower(c.Currency),
			Status:       "succeeded",
			ClientSecret: id + "_secret_mock",
		}, nil
	case "razorpay":
		return Intent{
			ID:       "order_" + uuid.NewString(),
			Amount:   amount,
			Currency: strings.ToUpper(c.Currency),
			Status:   "paid",
			Receipt:  fmt.Sprintf("receipt_%s", c.BookingID),
		}, nil
	default:
		return Intent{}, ErrUnsupportedMethod
	}
}

// List returns canned payment records until a real provider is wired in.
func (s *Service) List() []Record {
	return []Record{
		{
			ID:        "pay_123",
			BookingID: "booking_456",
			Amount:    50.0,
			Currency:  "USD",
			Status:    "completed",
			CreatedAt: time.Now().UTC(),
		},
	}
}
