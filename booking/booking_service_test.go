package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	bk "github.com/lighthouse-academy/lighthouse-backend/booking"
	bk_mocks "github.com/lighthouse-academy/lighthouse-backend/booking/mocks"
	"github.com/lighthouse-academy/lighthouse-backend/facility"
	"github.com/lighthouse-academy/lighthouse-backend/policy"
	"github.com/lighthouse-academy/lighthouse-backend/user"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	studentActor = policy.Actor{ID: "student-1", Role: policy.RoleStudent}
	adminActor   = policy.Actor{ID: "admin-1", Role: policy.RoleAdmin}

	slotStart = time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	slotEnd   = slotStart.Add(time.Hour)

	courtA = facility.Facility{ID: "facility-1", Name: "Court A", Type: facility.TypeCourt}
)

type testDeps struct {
	repo       *bk_mocks.MockBookingRepository
	facilities *bk_mocks.MockFacilityGetter
	users      *bk_mocks.MockUserGetter
	notifier   *bk_mocks.MockNotifier
	service    *bk.Service
	ctx        context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := bk_mocks.NewMockBookingRepository(ctrl)
	facilities := bk_mocks.NewMockFacilityGetter(ctrl)
	users := bk_mocks.NewMockUserGetter(ctrl)
	notifier := bk_mocks.NewMockNotifier(ctrl)
	svc := bk.NewService(repo, facilities, users, policy.New(), notifier)

	return ctrl, testDeps{
		repo: repo, facilities: facilities, users: users, notifier: notifier,
		service: svc, ctx: context.Background(),
	}
}

func pendingBooking(id, userID string) bk.Booking {
	return bk.Booking{
		ID:         id,
		FacilityID: courtA.ID,
		UserID:     userID,
		StartTime:  slotStart,
		EndTime:    slotEnd,
		Status:     bk.StatusPending,
	}
}

func TestCreateBooking(t *testing.T) {

	t.Run("success defaults to the actor's own booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		request := bk.Booking{FacilityID: courtA.ID, StartTime: slotStart, EndTime: slotEnd}
		admitted := pendingBooking("booking-1", studentActor.ID)

		deps.facilities.EXPECT().GetFacilityByID(deps.ctx, courtA.ID).Return(courtA, nil).Times(1)
		deps.users.EXPECT().GetUserByID(deps.ctx, studentActor.ID).Return(user.User{ID: studentActor.ID}, nil).Times(1)
		deps.repo.EXPECT().InsertBookingIfFree(deps.ctx, gomock.Any()).Return(admitted, nil).Times(1)

		booking, err := deps.service.CreateBooking(deps.ctx, studentActor, request)

		require.Nil(t, err)
		require.Equal(t, studentActor.ID, booking.UserID)
		require.Equal(t, bk.StatusPending, booking.Status)
	})

	t.Run("rejects an inverted time range", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		request := bk.Booking{FacilityID: courtA.ID, StartTime: slotEnd, EndTime: slotStart}

		_, err := deps.service.CreateBooking(deps.ctx, studentActor, request)

		require.ErrorIs(t, err, bk.ErrInvalidTimeRange)
	})

	t.Run("rejects a zero-length time range", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		request := bk.Booking{FacilityID: courtA.ID, StartTime: slotStart, EndTime: slotStart}

		_, err := deps.service.CreateBooking(deps.ctx, studentActor, request)

		require.ErrorIs(t, err, bk.ErrInvalidTimeRange)
	})

	t.Run("unknown facility", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		request := bk.Booking{FacilityID: "missing", StartTime: slotStart, EndTime: slotEnd}

		deps.facilities.EXPECT().GetFacilityByID(deps.ctx, "missing").Return(facility.Facility{}, facility.ErrFacilityNotFound).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, studentActor, request)

		require.ErrorIs(t, err, facility.ErrFacilityNotFound)
	})

	t.Run("student cannot book for someone else", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		request := bk.Booking{FacilityID: courtA.ID, UserID: "other-student", StartTime: slotStart, EndTime: slotEnd}

		deps.facilities.EXPECT().GetFacilityByID(deps.ctx, courtA.ID).Return(courtA, nil).Times(1)
		deps.users.EXPECT().GetUserByID(deps.ctx, "other-student").Return(user.User{ID: "other-student"}, nil).Times(1)
		deps.repo.EXPECT().InsertBookingIfFree(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, studentActor, request)

		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("admin books on behalf of a student", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		request := bk.Booking{FacilityID: courtA.ID, UserID: studentActor.ID, StartTime: slotStart, EndTime: slotEnd}
		admitted := pendingBooking("booking-1", studentActor.ID)

		deps.facilities.EXPECT().GetFacilityByID(deps.ctx, courtA.ID).Return(courtA, nil).Times(1)
		deps.users.EXPECT().GetUserByID(deps.ctx, studentActor.ID).Return(user.User{ID: studentActor.ID}, nil).Times(1)
		deps.repo.EXPECT().InsertBookingIfFree(deps.ctx, gomock.Any()).Return(admitted, nil).Times(1)

		booking, err := deps.service.CreateBooking(deps.ctx, adminActor, request)

		require.Nil(t, err)
		require.Equal(t, studentActor.ID, booking.UserID)
	})

	t.Run("occupied slot", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		request := bk.Booking{FacilityID: courtA.ID, StartTime: slotStart, EndTime: slotEnd}

		deps.facilities.EXPECT().GetFacilityByID(deps.ctx, courtA.ID).Return(courtA, nil).Times(1)
		deps.users.EXPECT().GetUserByID(deps.ctx, studentActor.ID).Return(user.User{ID: studentActor.ID}, nil).Times(1)
		deps.repo.EXPECT().InsertBookingIfFree(deps.ctx, gomock.Any()).Return(bk.Booking{}, bk.ErrSlotConflict).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, studentActor, request)

		require.ErrorIs(t, err, bk.ErrSlotConflict)
	})
}

func TestFindBookingByID(t *testing.T) {

	t.Run("owner reads own booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(pendingBooking("booking-1", studentActor.ID), nil).Times(1)

		booking, err := deps.service.FindBookingByID(deps.ctx, studentActor, "booking-1")

		require.Nil(t, err)
		require.Equal(t, "booking-1", booking.ID)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(pendingBooking("booking-1", "someone-else"), nil).Times(1)

		_, err := deps.service.FindBookingByID(deps.ctx, studentActor, "booking-1")

		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "missing").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		_, err := deps.service.FindBookingByID(deps.ctx, studentActor, "missing")

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestListBookings(t *testing.T) {

	t.Run("non-admin is scoped to own bookings", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookings(deps.ctx, courtA.ID, studentActor.ID).Return([]bk.Booking{pendingBooking("booking-1", studentActor.ID)}, nil).Times(1)

		bookings, err := deps.service.ListBookings(deps.ctx, studentActor, courtA.ID, "other-student")

		require.Nil(t, err)
		require.Len(t, bookings, 1)
	})

	t.Run("admin filters freely", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookings(deps.ctx, "", "other-student").Return(nil, nil).Times(1)

		_, err := deps.service.ListBookings(deps.ctx, adminActor, "", "other-student")

		require.Nil(t, err)
	})
}

func TestModifyBooking(t *testing.T) {

	t.Run("owner reschedules a pending booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		current := pendingBooking("booking-1", studentActor.ID)
		updated := bk.Booking{ID: "booking-1", StartTime: slotStart.Add(2 * time.Hour), EndTime: slotEnd.Add(2 * time.Hour)}

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(current, nil).Times(1)
		deps.repo.EXPECT().UpdateBookingIfFree(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b bk.Booking) error {
				require.Equal(t, updated.StartTime, b.StartTime)
				require.Equal(t, updated.EndTime, b.EndTime)
				require.Equal(t, studentActor.ID, b.UserID)
				return nil
			}).Times(1)

		err := deps.service.ModifyBooking(deps.ctx, studentActor, updated)

		require.Nil(t, err)
	})

	t.Run("confirmed bookings cannot be rescheduled", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		current := pendingBooking("booking-1", studentActor.ID)
		current.Status = bk.StatusConfirmed

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(current, nil).Times(1)

		err := deps.service.ModifyBooking(deps.ctx, studentActor, bk.Booking{ID: "booking-1", StartTime: slotStart, EndTime: slotEnd})

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(pendingBooking("booking-1", "someone-else"), nil).Times(1)

		err := deps.service.ModifyBooking(deps.ctx, studentActor, bk.Booking{ID: "booking-1", StartTime: slotStart, EndTime: slotEnd})

		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("rejects an inverted time range", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(pendingBooking("booking-1", studentActor.ID), nil).Times(1)

		err := deps.service.ModifyBooking(deps.ctx, studentActor, bk.Booking{ID: "booking-1", StartTime: slotEnd, EndTime: slotStart})

		require.ErrorIs(t, err, bk.ErrInvalidTimeRange)
	})

	t.Run("new slot is occupied", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(pendingBooking("booking-1", studentActor.ID), nil).Times(1)
		deps.repo.EXPECT().UpdateBookingIfFree(deps.ctx, gomock.Any()).Return(bk.ErrSlotConflict).Times(1)

		err := deps.service.ModifyBooking(deps.ctx, studentActor, bk.Booking{ID: "booking-1", StartTime: slotStart, EndTime: slotEnd})

		require.ErrorIs(t, err, bk.ErrSlotConflict)
	})
}

func TestConfirmBooking(t *testing.T) {

	t.Run("admin confirms a pending booking and owner is notified", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(pendingBooking("booking-1", studentActor.ID), nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(deps.ctx, "booking-1", bk.StatusConfirmed).Return(nil).Times(1)
		deps.notifier.EXPECT().BookingConfirmed(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b bk.Booking) error {
				require.Equal(t, bk.StatusConfirmed, b.Status)
				return nil
			}).Times(1)

		err := deps.service.ConfirmBooking(deps.ctx, adminActor, "booking-1")

		require.Nil(t, err)
	})

	t.Run("owner cannot confirm their own booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(pendingBooking("booking-1", studentActor.ID), nil).Times(1)
		deps.notifier.EXPECT().BookingConfirmed(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.ConfirmBooking(deps.ctx, studentActor, "booking-1")

		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("cancelled bookings cannot be confirmed", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		cancelled := pendingBooking("booking-1", studentActor.ID)
		cancelled.Status = bk.StatusCancelled

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(cancelled, nil).Times(1)
		deps.notifier.EXPECT().BookingConfirmed(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.ConfirmBooking(deps.ctx, adminActor, "booking-1")

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})

	t.Run("notification failure does not fail confirmation", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(pendingBooking("booking-1", studentActor.ID), nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(deps.ctx, "booking-1", bk.StatusConfirmed).Return(nil).Times(1)
		deps.notifier.EXPECT().BookingConfirmed(deps.ctx, gomock.Any()).Return(errors.New("smtp down")).Times(1)

		err := deps.service.ConfirmBooking(deps.ctx, adminActor, "booking-1")

		require.Nil(t, err)
	})
}

func TestCancelBooking(t *testing.T) {

	t.Run("owner cancels and is notified", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(pendingBooking("booking-1", studentActor.ID), nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(deps.ctx, "booking-1", bk.StatusCancelled).Return(nil).Times(1)
		deps.notifier.EXPECT().BookingCancelled(deps.ctx, gomock.Any()).Return(nil).Times(1)

		err := deps.service.CancelBooking(deps.ctx, studentActor, "booking-1")

		require.Nil(t, err)
	})

	t.Run("stranger is refused", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(pendingBooking("booking-1", "someone-else"), nil).Times(1)
		deps.notifier.EXPECT().BookingCancelled(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.CancelBooking(deps.ctx, studentActor, "booking-1")

		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("repeated cancel is tolerated without a second notice", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		cancelled := pendingBooking("booking-1", studentActor.ID)
		cancelled.Status = bk.StatusCancelled

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "booking-1").Return(cancelled, nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(deps.ctx, "booking-1", bk.StatusCancelled).Return(nil).Times(1)
		deps.notifier.EXPECT().BookingCancelled(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.CancelBooking(deps.ctx, studentActor, "booking-1")

		require.Nil(t, err)
	})
}

func TestBookingStats(t *testing.T) {

	t.Run("admin reads totals", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		totals := bk.Totals{Total: 12, ThisWeek: 3, ThisMonth: 7}

		deps.repo.EXPECT().GetBookingTotals(deps.ctx, gomock.Any()).Return(totals, nil).Times(1)

		got, err := deps.service.GetBookingTotals(deps.ctx, adminActor)

		require.Nil(t, err)
		require.Equal(t, totals, got)
	})

	t.Run("coach is refused", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		coach := policy.Actor{ID: "coach-1", Role: policy.RoleCoach}

		_, err := deps.service.GetBookingTotals(deps.ctx, coach)

		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})
}
