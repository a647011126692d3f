package mach

import "fmt"

// TypeCheckError reports a descriptor read from a message that does not
// match what the caller expected. Operations that return it restore the
// buffer cursor to its pre-call position, so the caller may retry with
// different expectations or abort the exchange.
type TypeCheckError struct {
	Got  uint32 // header word (or field) actually read
	Want uint32 // invariant bits of the expected descriptor
	Msg  string
}

func (e *TypeCheckError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("mach: type check: %s (0x%x instead of 0x%x)", e.Msg, e.Got, e.Want)
	}
	return fmt.Sprintf("mach: type check error (0x%x instead of 0x%x)", e.Got, e.Want)
}

// LengthError reports a payload whose byte count does not match the
// descriptor's declared element size and count, or an item that does
// not fit the buffer. Cursor restoration applies as for TypeCheckError.
type LengthError struct {
	Got  int
	Want int
	Msg  string
}

func (e *LengthError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("mach: length error: %s (%d, expected %d)", e.Msg, e.Got, e.Want)
	}
	return fmt.Sprintf("mach: length error (%d bytes, expected %d)", e.Got, e.Want)
}

// KernError carries a non-success kern_return_t (or mach_msg_return_t)
// code reported by a raw system call.
type KernError struct {
	Call string
	Code int32
}

func (e *KernError) Error() string {
	return fmt.Sprintf("mach: %s failed: kern_return %d (0x%x)", e.Call, e.Code, uint32(e.Code))
}

// ResourceShortage reports whether the kernel refused the call for lack
// of resources rather than because of a caller mistake.
func (e *KernError) ResourceShortage() bool {
	return e.Code == KernResourceShortage || e.Code == KernNoSpace
}
