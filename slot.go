package lasterr

// Slot is the per-goroutine record holding the current classification and
// message buffer. A Slot belongs to the goroutine that created it and is never
// read or written from any other goroutine, so its fields are not locked.
type Slot struct {
	class Classification
	buf   Buffer
}

func newSlot(data []byte) *Slot {
	return &Slot{buf: newBuffer(data)}
}

// Classification returns the current classification.
func (s *Slot) Classification() Classification {
	return s.class
}

// Cap returns the capacity of the message buffer.
func (s *Slot) Cap() int {
	return s.buf.Cap()
}

// Text returns the message for the current classification: the stored message
// for ClassGeneric, OutOfMemoryMessage for ClassOutOfMemory and "" otherwise.
func (s *Slot) Text() string {
	switch s.class {
	case ClassGeneric:
		return s.buf.String()
	case ClassOutOfMemory:
		return OutOfMemoryMessage
	default:
		return ""
	}
}

// setf records a generic message. The message is rendered once into the
// current buffer and, if it did not fit and alloc can grow the buffer, once
// more into the enlarged buffer. A failed growth keeps the truncated text.
func (s *Slot) setf(alloc Allocator, format string, args ...any) {
	s.class = ClassGeneric

	need := s.buf.Format(format, args...)
	if need < s.buf.Cap() {
		return
	}
	if _, ok := s.buf.Grow(need+1, alloc); ok {
		s.buf.Format(format, args...)
	}
}

func (s *Slot) outOfMemory() {
	s.class = ClassOutOfMemory
}

func (s *Slot) clear() {
	s.class = ClassNone
}
