package errors

import (
	"fmt"
	"runtime"
	"strings"
)

// CaptureStack returns the call stack of the caller's caller as a string,
// one "function\n\tfile:line" entry per frame. The capturing helper and
// CaptureStack itself are excluded, so a deferred recovery function gets a
// stack that starts at the panic site.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return sb.String()
}
