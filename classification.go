package lasterr

// Classification is the coarse kind of error currently recorded for a goroutine.
// It determines how the message is produced when it is read back.
type Classification uint8

const (
	// ClassNone indicates no error is pending. It is the zero value and the
	// state a slot returns to after ClearError.
	ClassNone Classification = iota

	// ClassGeneric indicates a formatted message is stored in the slot.
	ClassGeneric

	// ClassOutOfMemory indicates an out-of-memory condition. No message is
	// stored; the canonical OutOfMemoryMessage is returned instead.
	ClassOutOfMemory
)

// OutOfMemoryMessage is the canonical text reported for ClassOutOfMemory.
const OutOfMemoryMessage = "Out of memory"

// String returns a lower-case name for the classification.
func (c Classification) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassGeneric:
		return "generic"
	case ClassOutOfMemory:
		return "out_of_memory"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so classifications serialize
// by name in JSON and log output.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
