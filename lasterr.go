package lasterr

import "sync/atomic"

var defaultFacility atomic.Pointer[Facility]

func init() {
	defaultFacility.Store(New())
}

// Default returns the Facility used by the package-level functions.
func Default() *Facility {
	return defaultFacility.Load()
}

// SetDefault replaces the Facility used by the package-level functions.
// Pass nil to restore a fresh facility with default options. Slots recorded
// in the previous facility are not carried over.
func SetDefault(f *Facility) {
	if f == nil {
		f = New()
	}
	defaultFacility.Store(f)
}

// SetErrorf records a formatted message for the calling goroutine and returns
// false. See Facility.SetErrorf.
func SetErrorf(format string, args ...any) bool {
	return Default().SetErrorf(format, args...)
}

// SetError records err's text for the calling goroutine and returns false.
// A nil err is ignored.
func SetError(err error) bool {
	return Default().SetError(err)
}

// GetError returns the calling goroutine's current message, or "".
func GetError() string {
	return Default().GetError()
}

// ClearError clears the calling goroutine's error and returns true.
func ClearError() bool {
	return Default().ClearError()
}

// OutOfMemory records an out-of-memory condition and returns false.
func OutOfMemory() bool {
	return Default().OutOfMemory()
}

// Err returns the calling goroutine's pending error, or nil.
func Err() error {
	return Default().Err()
}

// Release frees the calling goroutine's slot.
func Release() {
	Default().Release()
}
