package api

import "github.com/okian/podium/pkg/logger"

const defaultMaxScheduleRows = 2000

type options struct {
	maxScheduleRows int
	log             logger.Logger
}

// Option configures the API server.
type Option func(*options)

// WithMaxScheduleRows caps the unfiltered schedule view.
func WithMaxScheduleRows(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxScheduleRows = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(lg logger.Logger) Option {
	return func(o *options) {
		if lg != nil {
			o.log = lg
		}
	}
}
