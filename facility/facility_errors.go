package facility

import "errors"

var ErrFacilityNotFound = errors.New("facility not found")

var ErrInvalidFacility = errors.New("invalid facility")

var ErrFacilityInUse = errors.New("facility has active bookings")

var ErrNotAllowed = errors.New("not allowed to perform this operation")
