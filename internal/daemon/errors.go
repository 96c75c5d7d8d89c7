package daemon

import "errors"

var (
	// ErrConfigNil is returned when New is called without a configuration.
	ErrConfigNil = errors.New("config is nil")

	// ErrUnknownDBEngine is returned for an unsupported db.engine value.
	ErrUnknownDBEngine = errors.New("unknown database engine")
)
