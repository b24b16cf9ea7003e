package timing

import "time"

// Options stores the configuration of a StopWatch.
type Options struct {
	// Logging indicates whether start/stop notifications are emitted from the outset.
	// Notifications can also be toggled at runtime via EnableLogging and DisableLogging.
	Logging bool `json:"logging"`

	// Sink receives start/stop notifications.  If unset, DefaultSink() is used.
	Sink Sink `json:"-"`

	// Now is the time source used for span start and end timestamps.  If unset,
	// time.Now is used.
	Now func() time.Time `json:"-"`

	// Since computes the running elapsed time of an unstopped span.  If unset,
	// time.Since is used.
	Since func(time.Time) time.Duration `json:"-"`
}

func (o *Options) logging() bool {
	if o != nil {
		return o.Logging
	}

	return false
}

func (o *Options) sink() Sink {
	if o != nil && o.Sink != nil {
		return o.Sink
	}

	return DefaultSink()
}

func (o *Options) nowFunc() func() time.Time {
	if o != nil && o.Now != nil {
		return o.Now
	}

	return time.Now
}

func (o *Options) sinceFunc() func(time.Time) time.Duration {
	if o != nil && o.Since != nil {
		return o.Since
	}

	return time.Since
}
