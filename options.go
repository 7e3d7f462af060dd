package slotarena

import "log/slog"

// DefaultGrowBatch is the number of slots added whenever Create needs room
// and no explicit Reserve was made.
const DefaultGrowBatch = 10

type options[T any] struct {
	capacity   int
	growBatch  int
	destructor func(*T)
	logger     *slog.Logger
}

// Option configures an Arena.
type Option[T any] func(*options[T])

// WithCapacity pre-allocates n slots. Values <= 0 leave the arena empty.
func WithCapacity[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithGrowBatch sets how many slots are added when the arena runs out of room.
// Values <= 0 select DefaultGrowBatch.
func WithGrowBatch[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.growBatch = n
	}
}

// WithDestructor registers fn to run exactly once for every constructed
// element, when Refresh sweeps it or when Clear/Release tear the arena down.
func WithDestructor[T any](fn func(*T)) Option[T] {
	return func(o *options[T]) {
		o.destructor = fn
	}
}

// WithLogger sets the logger used for grow, refresh, clear and release
// events. All records are emitted at debug level.
func WithLogger[T any](l *slog.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = l
	}
}

func newOptions[T any](opts []Option[T]) options[T] {
	o := options[T]{growBatch: DefaultGrowBatch}
	for _, opt := range opts {
		opt(&o)
	}
	if o.growBatch <= 0 {
		o.growBatch = DefaultGrowBatch
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
