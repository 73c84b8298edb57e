package lasterr

import "sync/atomic"

// Facility records one error per goroutine. All methods act on the calling
// goroutine's slot only and are safe to call from any number of goroutines.
//
// The zero value is ready to use and behaves like New() with no options.
// A Facility must not be copied after first use.
//
// Most programs use the package-level functions, which delegate to Default().
type Facility struct {
	cfg atomic.Pointer[config]
}

// New creates a Facility.
//
// Example:
//
//	logger, _ := lasterr.NewZapLogger(true)
//	f := lasterr.New(
//	    lasterr.WithLogger(logger),
//	    lasterr.WithInitialCapacity(256),
//	)
func New(opts ...Option) *Facility {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	f := &Facility{}
	f.cfg.Store(cfg.finish())
	return f
}

// config returns the facility's settings, installing the defaults on first
// use of a zero Facility.
func (f *Facility) config() *config {
	if cfg := f.cfg.Load(); cfg != nil {
		return cfg
	}
	f.cfg.CompareAndSwap(nil, newConfig().finish())
	return f.cfg.Load()
}

// SetErrorf records a formatted message for the calling goroutine and always
// returns false, so failing functions can report and return in one statement:
//
//	if w <= 0 {
//	    return lasterr.SetErrorf("invalid window width: %d", w)
//	}
//
// If the message does not fit the goroutine's buffer, the buffer is grown and
// the message rendered again. When growth is refused the truncated message is
// kept. If the goroutine's slot cannot be created the call records nothing.
//
// The slot outlives the goroutine: a goroutine that reports errors and then
// exits must call Release, or its slot stays in the facility until Reset.
func (f *Facility) SetErrorf(format string, args ...any) bool {
	cfg := f.config()
	slot := cfg.storage.GetOrCreate(cfg.create)
	if slot == nil {
		return false
	}

	slot.setf(cfg.allocator, format, args...)

	if sink := cfg.sink; sink != nil && sink.DebugEnabled(CategoryError) {
		sink.Debug(CategoryError, slot.buf.String())
	}
	return false
}

// SetError records err's text for the calling goroutine and returns false.
// A nil err is ignored and leaves any previous error in place.
func (f *Facility) SetError(err error) bool {
	if err == nil {
		return false
	}
	return f.SetErrorf("%s", err.Error())
}

// GetError returns the calling goroutine's current message. It returns "" if
// no error is pending and OutOfMemoryMessage after OutOfMemory.
// It never creates a slot.
func (f *Facility) GetError() string {
	slot := f.config().storage.Get()
	if slot == nil {
		return ""
	}
	return slot.Text()
}

// ClearError resets the calling goroutine's classification to ClassNone and
// always returns true. The message buffer is kept for reuse.
func (f *Facility) ClearError() bool {
	if slot := f.config().storage.Get(); slot != nil {
		slot.clear()
	}
	return true
}

// OutOfMemory records an out-of-memory condition for the calling goroutine
// and always returns false. It neither formats nor logs, so once the slot
// exists it does not allocate.
func (f *Facility) OutOfMemory() bool {
	cfg := f.config()
	if slot := cfg.storage.GetOrCreate(cfg.create); slot != nil {
		slot.outOfMemory()
	}
	return false
}

// Classification returns the calling goroutine's current classification.
func (f *Facility) Classification() Classification {
	slot := f.config().storage.Get()
	if slot == nil {
		return ClassNone
	}
	return slot.Classification()
}

// Err returns the calling goroutine's pending error as an error value, or nil
// if none is pending.
//
// Example:
//
//	if !createWindow() {
//	    return fmt.Errorf("create window: %w", lasterr.Err())
//	}
func (f *Facility) Err() error {
	slot := f.config().storage.Get()
	if slot == nil || slot.Classification() == ClassNone {
		return nil
	}
	return &Error{Class: slot.Classification(), Message: slot.Text()}
}

// Release frees the calling goroutine's slot. Goroutines that report errors
// and then exit should defer Release; the slot is otherwise kept until Reset.
func (f *Facility) Release() {
	f.config().storage.Release()
}

// Reset frees every goroutine's slot.
func (f *Facility) Reset() {
	f.config().storage.Reset()
}

// Slots returns the number of goroutines currently holding a slot.
func (f *Facility) Slots() int {
	return f.config().storage.Len()
}
