package user

import "errors"

var ErrUserNotFound = errors.New("user not found")

var ErrEmailTaken = errors.New("email already registered")

var ErrInvalidCredentials = errors.New("invalid email or password")

var ErrInvalidRole = errors.New("invalid role")

var ErrInvalidProfile = errors.New("profile name cannot be empty")

var ErrNotAllowed = errors.New("not allowed to perform this operation")
