// Package jobs runs the periodic maintenance tasks: completing finished
// bookings, sending session reminders, and purging expired notifications.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/lighthouse-academy/lighthouse-backend/booking"
	"github.com/robfig/cron/v3"
)

const reminderLead = time.Hour

type BookingRepository interface {
	CompletePastBookings(ctx context.Context, now time.Time) (int64, error)
	GetConfirmedStartingBetween(ctx context.Context, from, to time.Time) ([]booking.Booking, error)
	MarkReminderSent(ctx context.Context, id string, at time.Time) error
}

type Reminder interface {
	BookingReminder(ctx context.Context, b booking.Booking) error
}

type NotificationPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type Runner struct {
	bookings      BookingRepository
	reminders     Reminder
	notifications NotificationPurger
	cron          *cron.Cron
	logger        *slog.Logger
}

func NewRunner(bookings BookingRepository, reminders Reminder, notifications NotificationPurger) *Runner {
	return &Runner{
		bookings:      bookings,
		reminders:     reminders,
		notifications: notifications,
		cron:          cron.New(),
		logger:        slog.Default().With("component", "jobs"),
	}
}

func (r *Runner) Start() error {
	if _, err := r.cron.AddFunc("*/5 * * * *", r.completePastBookings); err != nil {
		return err
	}

	if _, err := r.cron.AddFunc("*/5 * * * *", r.sendBookingReminders); err != nil {
		return err
	}

	if _, err := r.cron.AddFunc("0 * * * *", r.purgeExpiredNotifications); err != nil {
		return err
	}

	r.cron.Start()
	r.logger.Info("scheduled background jobs")

	return nil
}

func (r *Runner) Stop() {
	r.cron.Stop()
}

func (r *Runner) completePastBookings() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := r.bookings.CompletePastBookings(ctx, time.Now())

	if err != nil {
		r.logger.Error("failed to complete past bookings", "err", err)
		return
	}

	if count > 0 {
		r.logger.Info("completed past bookings", "count", count)
	}
}

func (r *Runner) sendBookingReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now()
	upcoming, err := r.bookings.GetConfirmedStartingBetween(ctx, now, now.Add(reminderLead))

	if err != nil {
		r.logger.Error("failed to fetch upcoming bookings", "err", err)
		return
	}

	for _, b := range upcoming {
		if err := r.reminders.BookingReminder(ctx, b); err != nil {
			r.logger.Error("failed to send booking reminder", "bookingId", b.ID, "err", err)
			continue
		}

		if err := r.bookings.MarkReminderSent(ctx, b.ID, now); err != nil {
			r.logger.Error("failed to mark reminder sent", "bookingId", b.ID, "err", err)
		}
	}
}

func (r *Runner) purgeExpiredNotifications() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	count, err := r.notifications.PurgeExpired(ctx)

	if err != nil {
		r.logger.Error("failed to purge expired notifications", "err", err)
		return
	}

	if count > 0 {
		r.logger.Info("purged expired notifications", "count", count)
	}
}
