package traininglog

import "errors"

var ErrTrainingLogNotFound = errors.New("training log not found")

var ErrInvalidTrainingLog = errors.New("invalid training log")

var ErrNotAllowed = errors.New("not allowed to perform this operation")
