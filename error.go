package lasterr

// Error is a snapshot of a goroutine's pending error, returned by Err.
// Later reports on the same goroutine do not change it.
type Error struct {
	Class   Classification
	Message string
}

// Error returns the message.
func (e *Error) Error() string {
	return e.Message
}

// IsOutOfMemory reports whether the snapshot records an out-of-memory
// condition.
func (e *Error) IsOutOfMemory() bool {
	return e.Class == ClassOutOfMemory
}
