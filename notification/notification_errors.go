package notification

import "errors"

var ErrNotificationNotFound = errors.New("notification not found")

var ErrInvalidNotification = errors.New("invalid notification")

var ErrNotAllowed = errors.New("not allowed to perform this operation")
