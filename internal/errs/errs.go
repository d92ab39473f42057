package errs

import (
	"errors"
)

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid config")
)

var ErrInvalidEnvelope = errors.New("invalid response envelope")
