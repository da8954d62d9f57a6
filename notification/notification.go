package notification

import "time"

type Type string

const (
	TypeBookingConfirmation Type = "booking_confirmation"
	TypeBookingReminder     Type = "booking_reminder"
	TypeBookingCancellation Type = "booking_cancellation"
	TypeTrainingScheduled   Type = "training_scheduled"
	TypePaymentDue          Type = "payment_due"
	TypeSystemAnnouncement  Type = "system_announcement"
	TypeGeneral             Type = "general"
)

func ValidType(t Type) bool {
	switch t {
	case TypeBookingConfirmation, TypeBookingReminder, TypeBookingCancellation,
		TypeTrainingScheduled, TypePaymentDue, TypeSystemAnnouncement, TypeGeneral:
		return true
	}
	return false
}

type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

type Notification struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	Type      Type              `json:"type"`
	Title     string            `json:"title,omitempty"`
	Message   string            `json:"message"`
	Status    Status            `json:"status"`
	ActionURL string            `json:"actionUrl,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	ExpiresAt *time.Time        `json:"expiresAt,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
