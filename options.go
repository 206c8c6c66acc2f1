package tagmap

type options struct {
	logger   Logger
	observer Observer
	capacity int
}

// Option configures a TagMap created with New.
type Option func(*options)

// WithLogger sets the logger used for debug output. Defaults to a no-op logger.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver sets the observer notified after each mutation.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// WithCapacity hints the number of keys the map is expected to hold.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:   NewDefaultLogger(),
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
