// Package lasterr records the last error reported on each goroutine.
//
// Code that signals failure with a boolean, the way graphics and platform
// bindings commonly do, can attach a human-readable message to the goroutine
// that saw the failure. The caller reads it back right after the failing call.
// Each goroutine holds at most one current message; a new report overwrites
// it.
//
// # Quick Start
//
// Reporting:
//
//	func makeCurrent(ctx *glContext) bool {
//	    if ctx == nil {
//	        return lasterr.SetErrorf("invalid context: %v", ctx)
//	    }
//	    ...
//	    return true
//	}
//
// Reading:
//
//	if !makeCurrent(ctx) {
//	    log.Printf("makeCurrent(): %s", lasterr.GetError())
//	}
//
// Clearing:
//
//	lasterr.ClearError()
//
// Out of memory:
//
//	if buf == nil {
//	    return lasterr.OutOfMemory() // GetError returns "Out of memory"
//	}
//
// # Classification
//
// A goroutine's slot is in one of three states:
//
//   - ClassNone: nothing pending, GetError returns ""
//   - ClassGeneric: a formatted message is stored
//   - ClassOutOfMemory: GetError returns "Out of memory" without any stored text
//
// OutOfMemory exists so that reporting a failed allocation never has to
// allocate.
//
// # Return Values
//
// SetErrorf, SetError and OutOfMemory always return false and ClearError always
// returns true. The values carry no information of their own; they let a
// failing function report and return its failure value in one statement.
//
// # Goroutines
//
// Slots are keyed by goroutine and created the first time a goroutine reports
// an error. Only the owning goroutine ever touches a slot, so reporting does not
// contend on anything but the storage map lookup. Goroutine exit does not free
// the slot, and goroutine ids are never reused: every goroutine that reports
// an error and then exits, such as a per-request handler, should defer
// Release, or its slot stays until Facility.Reset.
//
//	go func() {
//	    defer lasterr.Release()
//	    ...
//	}()
//
// # Buffer Growth
//
// Messages are rendered into a buffer of DefaultInitialCapacity bytes. A
// longer message grows the buffer and is rendered a second time. Growth goes
// through an Allocator; when it is refused (see LimitAllocator) the message is
// truncated at a UTF-8 boundary. Buffers never shrink.
//
// # Logging
//
// When a Facility is configured with a logger whose debug verbosity (V(1)) is
// enabled, every message set with SetErrorf is echoed to the "error" named
// logger:
//
//	logger, err := lasterr.NewZapLogger(true)
//	if err != nil {
//	    return err
//	}
//	lasterr.SetDefault(lasterr.New(lasterr.WithLogger(logger)))
package lasterr
