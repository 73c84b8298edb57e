package lasterr

import (
	"fmt"
	"unicode/utf8"
)

// DefaultInitialCapacity is the size, in bytes, of a freshly created message
// buffer. It includes the terminator byte.
const DefaultInitialCapacity = 128

// Allocator resizes a message buffer. It returns a slice of length size whose
// prefix holds the contents of buf, or false when the allocation is refused.
// A refused allocation must leave buf untouched.
//
// A nil Allocator disables buffer growth: messages that do not fit the
// initial capacity are truncated.
type Allocator func(buf []byte, size int) ([]byte, bool)

// DefaultAllocator always succeeds.
func DefaultAllocator(buf []byte, size int) ([]byte, bool) {
	grown := make([]byte, size)
	copy(grown, buf)
	return grown, true
}

// LimitAllocator returns an Allocator that refuses any buffer larger than limit
// bytes.
//
// Example:
//
//	f := lasterr.New(lasterr.WithAllocator(lasterr.LimitAllocator(4096)))
func LimitAllocator(limit int) Allocator {
	return func(buf []byte, size int) ([]byte, bool) {
		if size > limit {
			return nil, false
		}
		return DefaultAllocator(buf, size)
	}
}

// Buffer is an owned, growable message buffer. The message is always followed
// by a 0 terminator byte, so at most Cap()-1 bytes of text fit.
// Capacity never shrinks.
type Buffer struct {
	data []byte
	n    int
}

func newBuffer(data []byte) Buffer {
	if len(data) == 0 {
		data = make([]byte, 1)
	}
	data[0] = 0
	return Buffer{data: data}
}

// Cap returns the allocated size of the buffer, terminator included.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Len returns the length of the stored message.
func (b *Buffer) Len() int {
	return b.n
}

// String returns a copy of the stored message.
func (b *Buffer) String() string {
	return string(b.data[:b.n])
}

// Format renders format and args into the buffer without growing it, the way
// a bounded snprintf would. It returns the length the complete message needs;
// a result >= Cap() means the stored text was truncated.
//
// Truncation never splits a UTF-8 sequence.
func (b *Buffer) Format(format string, args ...any) int {
	w := boundedWriter{dst: b.data[:len(b.data)-1]}
	_, _ = fmt.Fprintf(&w, format, args...)

	n := w.n
	if w.total > n {
		n = runeBoundary(w.dst, n)
	}
	b.data[n] = 0
	b.n = n
	return w.total
}

// Grow enlarges the buffer to size bytes using alloc. On success the existing
// contents are preserved and the new capacity is returned. On failure, or when
// alloc is nil, the buffer is left exactly as it was.
func (b *Buffer) Grow(size int, alloc Allocator) (int, bool) {
	if size <= len(b.data) {
		return len(b.data), true
	}
	if alloc == nil {
		return len(b.data), false
	}

	grown, ok := alloc(b.data, size)
	if !ok || len(grown) < size {
		return len(b.data), false
	}
	b.data = grown
	return len(b.data), true
}

// boundedWriter copies as much as fits into dst and counts everything it is
// offered.
type boundedWriter struct {
	dst   []byte
	n     int
	total int
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	if room := len(w.dst) - w.n; room > 0 {
		w.n += copy(w.dst[w.n:], p[:min(room, len(p))])
	}
	w.total += len(p)
	return len(p), nil
}

// runeBoundary drops a trailing incomplete UTF-8 sequence from p[:n].
func runeBoundary(p []byte, n int) int {
	for i := n - 1; i >= 0 && i >= n-utf8.UTFMax; i-- {
		if !utf8.RuneStart(p[i]) {
			continue
		}
		if !utf8.FullRune(p[i:n]) {
			return i
		}
		return n
	}
	return n
}
