package framework

import (
	"fmt"
	"runtime/debug"
)

// Context is the scope of one scenario. Every result recorded through it is tagged with the
// scenario's ID, and any debug output it captures is handed to the TestLogger when the
// scenario finishes.
type Context struct {
	harness     *TestHarness
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
}

func (c *Context) ID() TestID {
	return c.id
}

func (c *Context) Harness() *TestHarness {
	return c.harness
}

// Failed reports whether any result recorded in this scenario, or in one of its subscenarios,
// was unsuccessful.
func (c *Context) Failed() bool {
	return c.failed
}

// Run runs a subscenario, unless it is excluded by the harness filter.
//
// A panic in action does not stop the test run: it is recorded as one failed result named after
// the scenario, and execution continues with the next scenario.
func (c *Context) Run(name string, action func(*Context)) {
	h := c.harness
	id := c.id.child(name)

	if h.filter != nil && !h.filter(id) {
		h.testLogger.ScenarioSkipped(id, "excluded by filter parameters")
		return
	}
	h.testLogger.ScenarioStarted(id)
	c1 := &Context{
		harness: h,
		id:      id,
	}
	c1.run(action)
	if c1.failed {
		c.failed = true
	}
	if c1.skipped {
		h.testLogger.ScenarioSkipped(id, c1.skipReason)
	} else {
		h.testLogger.ScenarioFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c1, ok := r.(*Context); ok && c1 == c && c.skipped {
				return
			}
			c.debugLogger.Printf("%s", debug.Stack())
			c.LogTest(c.id.String(), false, fmt.Sprintf("unexpected panic in scenario: %+v", r))
		}
	}()

	action(c)
}

// LogTest records a result without making any request. Scenarios use it for assertions about
// the body of a response they already have.
func (c *Context) LogTest(name string, success bool, details string) {
	if !success {
		c.failed = true
	}
	c.harness.record(c.id, name, success, details)
}

// Skip stops the scenario immediately. Results already recorded are kept.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug adds a line to the scenario's captured debug output.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}
