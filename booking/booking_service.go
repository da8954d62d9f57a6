package booking

import (
	"context"
	"time"

	"github.com/lighthouse-academy/lighthouse-backend/facility"
	"github.com/lighthouse-academy/lighthouse-backend/policy"
	"github.com/lighthouse-academy/lighthouse-backend/user"
)

type BookingRepository interface {
	GetBookings(ctx context.Context, facilityID, userID string) ([]Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	InsertBookingIfFree(ctx context.Context, b Booking) (Booking, error)
	UpdateBookingIfFree(ctx context.Context, b Booking) error
	SetBookingStatus(ctx context.Context, id string, status Status) error
	GetBookingTotals(ctx context.Context, now time.Time) (Totals, error)
	GetBookingCountPerFacility(ctx context.Context) ([]FacilityBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context) ([]WeekDayBookingCount, error)
	GetBookingCountPerFacilityInPeriod(ctx context.Context, start, end time.Time) ([]FacilityBookingCount, error)
}

type FacilityGetter interface {
	GetFacilityByID(ctx context.Context, id string) (facility.Facility, error)
}

type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (user.User, error)
}

// Notifier delivers booking lifecycle notices. Delivery is best-effort;
// admission outcomes never depend on it.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b Booking) error
	BookingCancelled(ctx context.Context, b Booking) error
}

type Service struct {
	repo       BookingRepository
	facilities FacilityGetter
	users      UserGetter
	policies   policy.Evaluator
	notifier   Notifier
}

func NewService(repo BookingRepository, facilities FacilityGetter, users UserGetter, policies policy.Evaluator, notifier Notifier) *Service {
	return &Service{
		repo:       repo,
		facilities: facilities,
		users:      users,
		policies:   policies,
		notifier:   notifier,
	}
}

// CreateBooking admits a new reservation: time range validation, facility
// and user existence, policy, then the atomic conflict check and insert.
// The admitted booking starts out pending.
func (s *Service) CreateBooking(ctx context.Context, actor policy.Actor, b Booking) (Booking, error) {
	if len(b.UserID) == 0 {
		b.UserID = actor.ID
	}

	if !b.EndTime.After(b.StartTime) {
		return Booking{}, ErrInvalidTimeRange
	}

	if _, err := s.facilities.GetFacilityByID(ctx, b.FacilityID); err != nil {
		return Booking{}, err
	}

	if _, err := s.users.GetUserByID(ctx, b.UserID); err != nil {
		return Booking{}, err
	}

	if !s.policies.Evaluate(actor, policy.ResourceBookings, policy.ActionCreate, b.UserID).Allowed() {
		return Booking{}, ErrNotAllowed
	}

	return s.repo.InsertBookingIfFree(ctx, b)
}

func (s *Service) FindBookingByID(ctx context.Context, actor policy.Actor, id string) (Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if !s.policies.Evaluate(actor, policy.ResourceBookings, policy.ActionRead, b.UserID).Allowed() {
		return Booking{}, ErrNotAllowed
	}

	return b, nil
}

// ListBookings returns bookings visible to the actor. Admins may filter
// freely; everyone else only ever sees their own bookings.
func (s *Service) ListBookings(ctx context.Context, actor policy.Actor, facilityID, userID string) ([]Booking, error) {
	if actor.Role != policy.RoleAdmin {
		userID = actor.ID
	}

	return s.repo.GetBookings(ctx, facilityID, userID)
}

// ModifyBooking reschedules a pending booking. The new time range goes
// through the same conflict check as admission.
func (s *Service) ModifyBooking(ctx context.Context, actor policy.Actor, updated Booking) error {
	b, err := s.repo.GetBookingByID(ctx, updated.ID)

	if err != nil {
		return err
	}

	if b.Status != StatusPending {
		return ErrInvalidBookingState
	}

	if !s.policies.Evaluate(actor, policy.ResourceBookings, policy.ActionUpdate, b.UserID).Allowed() {
		return ErrNotAllowed
	}

	if !updated.EndTime.After(updated.StartTime) {
		return ErrInvalidTimeRange
	}

	b.StartTime = updated.StartTime
	b.EndTime = updated.EndTime
	b.Notes = updated.Notes

	return s.repo.UpdateBookingIfFree(ctx, b)
}

// ConfirmBooking moves a pending booking to confirmed. Confirmation acts
// on any booking regardless of owner, so only admins pass the policy
// check.
func (s *Service) ConfirmBooking(ctx context.Context, actor policy.Actor, id string) error {
	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if !s.policies.Evaluate(actor, policy.ResourceBookings, policy.ActionUpdate, "").Allowed() {
		return ErrNotAllowed
	}

	if b.Status != StatusPending {
		return ErrInvalidBookingState
	}

	err = s.repo.SetBookingStatus(ctx, id, StatusConfirmed)

	if err == nil {
		b.Status = StatusConfirmed
		_ = s.notifier.BookingConfirmed(ctx, b)
	}

	return err
}

// CancelBooking releases the booking's slot. Cancelling an already
// cancelled booking is tolerated and reapplies the update.
func (s *Service) CancelBooking(ctx context.Context, actor policy.Actor, id string) error {
	b, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if !s.policies.Evaluate(actor, policy.ResourceBookings, policy.ActionCancel, b.UserID).Allowed() {
		return ErrNotAllowed
	}

	alreadyCancelled := b.Status == StatusCancelled

	err = s.repo.SetBookingStatus(ctx, id, StatusCancelled)

	if err != nil {
		return err
	}

	if !alreadyCancelled {
		b.Status = StatusCancelled
		_ = s.notifier.BookingCancelled(ctx, b)
	}

	return nil
}

func (s *Service) GetBookingTotals(ctx context.Context, actor policy.Actor) (Totals, error) {
	if !s.policies.Evaluate(actor, policy.ResourceAnalytics, policy.ActionRead, "").Allowed() {
		return Totals{}, ErrNotAllowed
	}

	return s.repo.GetBookingTotals(ctx, time.Now())
}

func (s *Service) GetBookingCountPerFacility(ctx context.Context, actor policy.Actor) ([]FacilityBookingCount, error) {
	if !s.policies.Evaluate(actor, policy.ResourceAnalytics, policy.ActionRead, "").Allowed() {
		return nil, ErrNotAllowed
	}

	return s.repo.GetBookingCountPerFacility(ctx)
}

func (s *Service) GetBookingCountPerWeekDay(ctx context.Context, actor policy.Actor) ([]WeekDayBookingCount, error) {
	if !s.policies.Evaluate(actor, policy.ResourceAnalytics, policy.ActionRead, "").Allowed() {
		return nil, ErrNotAllowed
	}

	return s.repo.GetBookingCountPerWeekDay(ctx)
}

func (s *Service) GetBookingCountPerFacilityInPeriod(ctx context.Context, actor policy.Actor, start, end time.Time) ([]FacilityBookingCount, error) {
	if !s.policies.Evaluate(actor, policy.ResourceAnalytics, policy.ActionRead, "").Allowed() {
		return nil, ErrNotAllowed
	}

	return s.repo.GetBookingCountPerFacilityInPeriod(ctx, start, end)
}
