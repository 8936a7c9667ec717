package errors

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	underlying := errors.New("unexpected mapping node")
	err := &Error{
		Op:   "treespec.Parse",
		Kind: KindParsing,
		Err:  underlying,
	}
	got := err.Error()
	if !strings.Contains(got, "treespec.Parse") {
		t.Errorf("error string %q should contain the op", got)
	}
	if !strings.Contains(got, "[parsing]") {
		t.Errorf("error string %q should contain the kind", got)
	}
	if !errors.Is(err, underlying) {
		t.Error("expected Unwrap to expose the underlying error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindParsing, "parsing"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestRenderErrorString(t *testing.T) {
	err := &RenderError{
		Component: "header",
		Op:        "component.ForceUpdate",
		Timestamp: time.Now(),
	}
	got := err.Error()
	if !strings.Contains(got, `"header"`) {
		t.Errorf("error string %q should name the component", got)
	}
	if !strings.Contains(got, "component.ForceUpdate") {
		t.Errorf("error string %q should contain the op", got)
	}

	anonymous := &RenderError{Op: "component.ForceUpdate"}
	if strings.Contains(anonymous.Error(), `""`) {
		t.Errorf("error string %q should omit the empty component key", anonymous.Error())
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Op:    "component.SetState",
		Value: "boom",
	}
	if got := err.Error(); !strings.Contains(got, "component.SetState") || !strings.Contains(got, "boom") {
		t.Errorf("unexpected error string %q", got)
	}

	bare := &PanicError{Value: 42}
	if got := bare.Error(); !strings.Contains(got, "42") {
		t.Errorf("unexpected error string %q", got)
	}
}

// captureThroughHelper stands in for framework code that captures the stack
// on behalf of its caller; CaptureStack skips the capturing frame itself.
func captureThroughHelper() string {
	return CaptureStack()
}

func TestCaptureStack(t *testing.T) {
	stack := captureThroughHelper()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "TestCaptureStack") {
		t.Errorf("stack trace should contain the calling test, got:\n%s", stack)
	}
}
