package lasterr

import "github.com/go-logr/logr"

// config holds the settings of a Facility.
type config struct {
	initialCapacity int
	allocator       Allocator
	storage         Storage
	sink            LogSink

	// create is newSlot bound once, so GetOrCreate calls do not allocate.
	create func() *Slot
}

// newConfig creates a configuration with default values.
func newConfig() *config {
	return &config{
		initialCapacity: DefaultInitialCapacity,
		allocator:       DefaultAllocator,
		sink:            NewLogrSink(logr.Discard()),
	}
}

// finish fills in what the options left unset.
func (c *config) finish() *config {
	if c.storage == nil {
		c.storage = NewGoroutineStorage()
	}
	c.create = c.newSlot
	return c
}

// newSlot allocates a slot with the configured initial capacity. It returns
// nil if the allocator refuses the initial buffer.
func (c *config) newSlot() *Slot {
	size := max(c.initialCapacity, 1)
	if c.allocator == nil {
		return newSlot(make([]byte, size))
	}

	data, ok := c.allocator(nil, size)
	if !ok || len(data) < size {
		return nil
	}
	return newSlot(data)
}

// Option configures a Facility.
type Option func(*config)

// WithInitialCapacity sets the size of newly created message buffers,
// terminator included. Values below 1 are raised to 1.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.initialCapacity = max(n, 1)
	}
}

// WithAllocator sets the allocator used to create and grow message buffers.
// A nil allocator disables growth.
func WithAllocator(alloc Allocator) Option {
	return func(c *config) {
		c.allocator = alloc
	}
}

// WithStorage sets the per-goroutine storage provider.
func WithStorage(s Storage) Option {
	return func(c *config) {
		c.storage = s
	}
}

// WithLogger echoes newly set messages to logger at debug verbosity.
func WithLogger(logger logr.Logger) Option {
	return func(c *config) {
		c.sink = NewLogrSink(logger)
	}
}

// WithLogSink sets a custom debug sink.
func WithLogSink(sink LogSink) Option {
	return func(c *config) {
		c.sink = sink
	}
}
