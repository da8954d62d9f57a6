package facility

import (
	"context"
	"strings"
	"time"

	"github.com/lighthouse-academy/lighthouse-backend/policy"
)

type FacilityRepository interface {
	GetFacilities(ctx context.Context) ([]Facility, error)
	GetFacilityByID(ctx context.Context, id string) (Facility, error)
	InsertFacility(ctx context.Context, f Facility) (Facility, error)
	UpdateFacility(ctx context.Context, f Facility) error
	DeleteFacility(ctx context.Context, id string) error
}

// ActiveBookingCounter reports how many pending or confirmed bookings
// reference a facility. Used to refuse deleting a facility that is still
// booked.
type ActiveBookingCounter interface {
	CountActiveBookingsForFacility(ctx context.Context, facilityID string) (int, error)
}

type Service struct {
	repo     FacilityRepository
	bookings ActiveBookingCounter
	policies policy.Evaluator
}

func NewService(repo FacilityRepository, bookings ActiveBookingCounter, policies policy.Evaluator) *Service {
	return &Service{repo: repo, bookings: bookings, policies: policies}
}

func (s *Service) GetFacilities(ctx context.Context) ([]Facility, error) {
	return s.repo.GetFacilities(ctx)
}

func (s *Service) FindFacilityByID(ctx context.Context, id string) (Facility, error) {
	return s.repo.GetFacilityByID(ctx, id)
}

func (s *Service) CreateFacility(ctx context.Context, actor policy.Actor, f Facility) (Facility, error) {
	if !s.policies.Evaluate(actor, policy.ResourceFacilities, policy.ActionCreate, "").Allowed() {
		return Facility{}, ErrNotAllowed
	}

	if err := validate(f); err != nil {
		return Facility{}, err
	}

	return s.repo.InsertFacility(ctx, f)
}

func (s *Service) ModifyFacility(ctx context.Context, actor policy.Actor, f Facility) error {
	if !s.policies.Evaluate(actor, policy.ResourceFacilities, policy.ActionUpdate, "").Allowed() {
		return ErrNotAllowed
	}

	if err := validate(f); err != nil {
		return err
	}

	return s.repo.UpdateFacility(ctx, f)
}

// DeleteFacility refuses to remove a facility that still has pending or
// confirmed bookings; cancel them first.
func (s *Service) DeleteFacility(ctx context.Context, actor policy.Actor, id string) error {
	if !s.policies.Evaluate(actor, policy.ResourceFacilities, policy.ActionDelete, "").Allowed() {
		return ErrNotAllowed
	}

	count, err := s.bookings.CountActiveBookingsForFacility(ctx, id)

	if err != nil {
		return err
	}

	if count > 0 {
		return ErrFacilityInUse
	}

	return s.repo.DeleteFacility(ctx, id)
}

func validate(f Facility) error {
	if len(strings.TrimSpace(f.Name)) == 0 {
		return ErrInvalidFacility
	}

	if !ValidType(f.Type) {
		return ErrInvalidFacility
	}

	if f.Capacity < 0 {
		return ErrInvalidFacility
	}

	for _, w := range f.AvailabilitySchedule {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return ErrInvalidFacility
		}

		start, err := time.Parse("15:04", w.StartTime)

		if err != nil {
			return ErrInvalidFacility
		}

		end, err := time.Parse("15:04", w.EndTime)

		if err != nil {
			return ErrInvalidFacility
		}

		if !end.After(start) {
			return ErrInvalidFacility
		}
	}

	return nil
}
