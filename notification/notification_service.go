package notification

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/lighthouse-academy/lighthouse-backend/booking"
	"github.com/lighthouse-academy/lighthouse-backend/email"
	"github.com/lighthouse-academy/lighthouse-backend/facility"
	"github.com/lighthouse-academy/lighthouse-backend/policy"
	"github.com/lighthouse-academy/lighthouse-backend/user"
)

type NotificationRepository interface {
	GetNotificationsForUser(ctx context.Context, userID string, status Status, limit, skip int) ([]Notification, error)
	CountUnreadForUser(ctx context.Context, userID string) (int, error)
	GetNotificationByID(ctx context.Context, id string) (Notification, error)
	InsertNotification(ctx context.Context, n Notification) (Notification, error)
	SetNotificationStatus(ctx context.Context, id string, status Status) error
	DeleteNotification(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
}

type FacilityGetter interface {
	GetFacilityByID(ctx context.Context, id string) (facility.Facility, error)
}

type Service struct {
	repo       NotificationRepository
	users      UserGetter
	facilities FacilityGetter
	policies   policy.Evaluator
	mailer     email.EmailClient
	logger     *slog.Logger
}

func NewService(repo NotificationRepository, users UserGetter, facilities FacilityGetter, policies policy.Evaluator, mailer email.EmailClient) *Service {
	return &Service{
		repo:       repo,
		users:      users,
		facilities: facilities,
		policies:   policies,
		mailer:     mailer,
		logger:     slog.Default().With("component", "notification"),
	}
}

type Inbox struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
	Total         int            `json:"total"`
}

// GetInbox returns the actor's own notifications together with the unread
// count for the dropdown badge.
func (s *Service) GetInbox(ctx context.Context, actor policy.Actor, status Status, limit, skip int) (Inbox, error) {
	if !s.policies.Evaluate(actor, policy.ResourceNotifications, policy.ActionRead, actor.ID).Allowed() {
		return Inbox{}, ErrNotAllowed
	}

	if limit <= 0 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}

	notifications, err := s.repo.GetNotificationsForUser(ctx, actor.ID, status, limit, skip)

	if err != nil {
		return Inbox{}, err
	}

	unread, err := s.repo.CountUnreadForUser(ctx, actor.ID)

	if err != nil {
		return Inbox{}, err
	}

	return Inbox{
		Notifications: notifications,
		UnreadCount:   unread,
		Total:         len(notifications),
	}, nil
}

// Send delivers a notification to another user. The target may be given
// by id or by email.
func (s *Service) Send(ctx context.Context, actor policy.Actor, n Notification) (Notification, error) {
	if !s.policies.Evaluate(actor, policy.ResourceNotifications, policy.ActionSend, "").Allowed() {
		return Notification{}, ErrNotAllowed
	}

	if !ValidType(n.Type) || len(strings.TrimSpace(n.Message)) == 0 {
		return Notification{}, ErrInvalidNotification
	}

	target, err := s.users.GetUserByID(ctx, n.UserID)

	if err != nil {
		target, err = s.users.GetUserByEmail(ctx, n.UserID)
	}

	if err != nil {
		return Notification{}, err
	}

	n.UserID = target.ID
	n.Status = StatusUnread

	return s.repo.InsertNotification(ctx, n)
}

func (s *Service) MarkRead(ctx context.Context, actor policy.Actor, id string) error {
	n, err := s.repo.GetNotificationByID(ctx, id)

	if err != nil {
		return err
	}

	if !s.policies.Evaluate(actor, policy.ResourceNotifications, policy.ActionUpdate, n.UserID).Allowed() {
		return ErrNotAllowed
	}

	return s.repo.SetNotificationStatus(ctx, id, StatusRead)
}

func (s *Service) DeleteNotification(ctx context.Context, actor policy.Actor, id string) error {
	n, err := s.repo.GetNotificationByID(ctx, id)

	if err != nil {
		return err
	}

	if !s.policies.Evaluate(actor, policy.ResourceNotifications, policy.ActionDelete, n.UserID).Allowed() {
		return ErrNotAllowed
	}

	return s.repo.DeleteNotification(ctx, id)
}

func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(ctx, time.Now())
}

// BookingConfirmed records an in-app notice and emails the booking owner.
// Implements the booking service's Notifier.
func (s *Service) BookingConfirmed(ctx context.Context, b booking.Booking) error {
	owner, err := s.users.GetUserByID(ctx, b.UserID)

	if err != nil {
		s.logger.Error("failed to load booking owner for confirmation notice", "bookingId", b.ID, "err", err)
		return err
	}

	_, err = s.repo.InsertNotification(ctx, Notification{
		UserID:  owner.ID,
		Type:    TypeBookingConfirmation,
		Title:   "Booking confirmed",
		Message: "Your booking from " + b.StartTime.Format(time.DateTime) + " to " + b.EndTime.Format(time.DateTime) + " has been confirmed.",
		Metadata: map[string]string{
			"bookingId":  b.ID,
			"facilityId": b.FacilityID,
		},
	})

	if err != nil {
		s.logger.Error("failed to store confirmation notice", "bookingId", b.ID, "err", err)
		return err
	}

	subject, message := email.BookingConfirmationBody(
		owner.Name,
		s.facilityName(ctx, b.FacilityID),
		b.StartTime.Format(time.DateOnly),
		b.StartTime.Format("15:04"),
	)

	if err := s.mailer.Send(ctx, owner.Email, subject, message, ""); err != nil {
		s.logger.Error("failed to send confirmation email", "bookingId", b.ID, "err", err)
	}

	return nil
}

// BookingCancelled records an in-app notice for a released slot.
func (s *Service) BookingCancelled(ctx context.Context, b booking.Booking) error {
	owner, err := s.users.GetUserByID(ctx, b.UserID)

	if err != nil {
		s.logger.Error("failed to load booking owner for cancellation notice", "bookingId", b.ID, "err", err)
		return err
	}

	_, err = s.repo.InsertNotification(ctx, Notification{
		UserID:  owner.ID,
		Type:    TypeBookingCancellation,
		Title:   "Booking cancelled",
		Message: "Your booking from " + b.StartTime.Format(time.DateTime) + " to " + b.EndTime.Format(time.DateTime) + " has been cancelled.",
		Metadata: map[string]string{
			"bookingId":  b.ID,
			"facilityId": b.FacilityID,
		},
	})

	if err != nil {
		s.logger.Error("failed to store cancellation notice", "bookingId", b.ID, "err", err)
	}

	return err
}

// BookingReminder records a reminder notice and emails the owner; used by
// the reminder job shortly before a confirmed session starts.
func (s *Service) BookingReminder(ctx context.Context, b booking.Booking) error {
	owner, err := s.users.GetUserByID(ctx, b.UserID)

	if err != nil {
		return err
	}

	facilityName := s.facilityName(ctx, b.FacilityID)
	expires := b.EndTime

	_, err = s.repo.InsertNotification(ctx, Notification{
		UserID:    owner.ID,
		Type:      TypeBookingReminder,
		Title:     "Upcoming booking",
		Message:   "Your session at " + facilityName + " starts at " + b.StartTime.Format(time.DateTime) + ".",
		ExpiresAt: &expires,
		Metadata: map[string]string{
			"bookingId":  b.ID,
			"facilityId": b.FacilityID,
		},
	})

	if err != nil {
		return err
	}

	subject, message := email.BookingReminderBody(owner.Name, facilityName, b.StartTime.Format("15:04"))

	if err := s.mailer.Send(ctx, owner.Email, subject, message, ""); err != nil {
		s.logger.Error("failed to send reminder email", "bookingId", b.ID, "err", err)
	}

	return nil
}

func (s *Service) facilityName(ctx context.Context, facilityID string) string {
	f, err := s.facilities.GetFacilityByID(ctx, facilityID)

	if err != nil {
		return facilityID
	}

	return f.Name
}
