package testing

import (
	"fmt"

	"github.com/go-frond/frond/pkg/component"
)

// TestingT is the subset of *testing.T used by this package, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// Recorder captures update-protocol events in call order.
type Recorder struct {
	events  []string
	renders int
}

// Record appends an event to the log.
func (r *Recorder) Record(event string) {
	r.events = append(r.events, event)
}

// Events returns the events logged so far, in order.
func (r *Recorder) Events() []string {
	return r.events
}

// Renders returns how many render invocations were logged.
func (r *Recorder) Renders() int {
	return r.renders
}

// Reset clears the log.
func (r *Recorder) Reset() {
	r.events = nil
	r.renders = 0
}

// RecordingComponent is a Component whose gate, hooks, and Render log to a
// Recorder. Gate, when set, replaces the default always-true gate; its
// verdict is logged either way.
type RecordingComponent struct {
	component.Node

	Rec  *Recorder
	Gate func(props component.Props, next component.State) bool
}

// NewRecordingComponent creates a wired-up recording component with a fresh
// Recorder.
func NewRecordingComponent(key string, props component.Props) *RecordingComponent {
	c := &RecordingComponent{Rec: &Recorder{}}
	c.Init(c, key, props)
	return c
}

// Render logs the invocation and counts it; it paints nothing.
func (c *RecordingComponent) Render(forced bool) {
	c.Rec.renders++
	c.Rec.Record(fmt.Sprintf("render(forced=%t)", forced))
}

// ShouldUpdate logs the gate check and applies Gate, defaulting to true.
func (c *RecordingComponent) ShouldUpdate(props component.Props, next component.State) bool {
	c.Rec.Record("shouldUpdate")
	if c.Gate != nil {
		return c.Gate(props, next)
	}
	return true
}

// WillUpdate logs the pre-render hook.
func (c *RecordingComponent) WillUpdate(props component.Props, next component.State) {
	c.Rec.Record("willUpdate")
}

// DidUpdate logs the post-render hook.
func (c *RecordingComponent) DidUpdate(props component.Props, prev component.State) {
	c.Rec.Record("didUpdate")
}

// Callback returns a StateCallback that logs its invocation, for asserting
// that SetState notifications arrive after the commit.
func (c *RecordingComponent) Callback() component.StateCallback {
	return func(prev component.State, props component.Props) {
		c.Rec.Record("callback")
	}
}

// RequireTree fails t when the tree rooted at root does not match want,
// where want is the indented key listing produced by component.TreeString.
func RequireTree(t TestingT, root component.Component, want string) {
	t.Helper()
	if got := component.TreeString(root); got != want {
		t.Errorf("tree mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}
