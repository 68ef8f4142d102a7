package heap

import "go.uber.org/zap"

// Option configures a Space.
type Option func(*Space)

// WithMaxLive limits the number of simultaneously live handle allocations.
// Zero means unlimited.
func WithMaxLive(n int) Option {
	return func(s *Space) {
		s.maxLive = n
	}
}

// WithMaxBytes limits the size of a single allocation request and the total
// bytes held by live handles. Zero means unlimited.
func WithMaxBytes(n int64) Option {
	return func(s *Space) {
		s.maxBytes = n
	}
}

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Space) {
		if l != nil {
			s.log = l
		}
	}
}
