package chunked

import (
	"github.com/DanielMehlber/BinarIO/internal/logging"
	"github.com/sirupsen/logrus"
)

// DefaultCapacity is the chunk size used when WithCapacity is not given.
const DefaultCapacity = 5000

// options defines the configuration of a Buffer.
type options struct {
	capacity int                    // Chunk size in bytes
	sync     bool                   // fsync the file on Finish
	logger   logrus.Ext1FieldLogger // Destination for debug and trace output
}

// Option is a function that configures a Buffer.
type Option func(*options)

// WithCapacity sets the chunk size in bytes. It must be positive.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithSync makes Finish fsync the file after the final flush.
func WithSync(sync bool) Option {
	return func(o *options) {
		o.sync = sync
	}
}

// WithLogger sets the logger. The default is the "chunked" component logger.
func WithLogger(logger logrus.Ext1FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: DefaultCapacity,
		sync:     false,
		logger:   logging.GetLogger("chunked"),
	}
}
