package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidTimeRange = errors.New("booking end time must be after start time")

var ErrSlotConflict = errors.New("time slot is already booked")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrNotAllowed = errors.New("not allowed to perform this operation")
