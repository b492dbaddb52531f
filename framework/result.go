package framework

import (
	"strings"
	"time"
)

// Results is the ordered, append-only record of every test outcome in a run.
type Results struct {
	Tests  []TestResult
	passed int
}

// TestResult is a single pass/fail outcome, produced either by a request check or by an ad-hoc
// assertion on a response body.
type TestResult struct {
	Name      string
	Scenario  TestID
	Success   bool
	Details   string
	Timestamp time.Time
}

func (r *Results) add(result TestResult) {
	r.Tests = append(r.Tests, result)
	if result.Success {
		r.passed++
	}
}

// Run returns the number of recorded results.
func (r Results) Run() int {
	return len(r.Tests)
}

// Passed returns the number of successful results.
func (r Results) Passed() int {
	return r.passed
}

// Failed returns the number of unsuccessful results.
func (r Results) Failed() int {
	return len(r.Tests) - r.passed
}

// Failures returns the unsuccessful results in the order they were recorded.
func (r Results) Failures() []TestResult {
	var ret []TestResult
	for _, t := range r.Tests {
		if !t.Success {
			ret = append(ret, t)
		}
	}
	return ret
}

// SuccessRate returns the percentage of passing results, or 0 if nothing was run.
func (r Results) SuccessRate() float64 {
	if len(r.Tests) == 0 {
		return 0
	}
	return float64(r.passed) / float64(len(r.Tests)) * 100
}

func (r Results) OK() bool {
	return r.passed == len(r.Tests)
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

func (t TestID) child(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}
