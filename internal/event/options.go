package event

import "github.com/dshills/doccore/internal/logging"

// Option configures a Router.
type Option func(*routerConfig)

type routerConfig struct {
	// queueSize is the capacity of each mailbox.
	queueSize int

	logger *logging.Logger
}

func defaultRouterConfig() routerConfig {
	return routerConfig{
		queueSize: 256,
		logger:    logging.Null(),
	}
}

// WithQueueSize sets the capacity of each mailbox.
func WithQueueSize(size int) Option {
	return func(c *routerConfig) {
		if size > 0 {
			c.queueSize = size
		}
	}
}

// WithLogger sets the logger used to report dropped messages.
func WithLogger(l *logging.Logger) Option {
	return func(c *routerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
