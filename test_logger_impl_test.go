package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/clickestate/api-contract-tests/framework"

	"github.com/fatih/color"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleTestLoggerOutput(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}

	id := framework.TestID{Path: []string{"basic connectivity", "health"}}
	logger.ScenarioStarted(id)
	logger.RequestStarted(id, "Health Check", "GET", "http://localhost:8001/health")
	logger.TestRecorded(id, framework.TestResult{
		Name:    "Health Check",
		Success: true,
		Details: "Status: 200, Response: {\n  \"ok\": true\n}...",
	})
	logger.TestRecorded(id, framework.TestResult{
		Name:    "Health Response Format",
		Success: false,
		Details: "Expected 'ok: true', got: {}",
	})
	logger.ScenarioFinished(id, true, framework.CapturedOutput{
		{Time: time.Date(2026, 1, 2, 3, 4, 5, 6000000, time.UTC), Message: "Response: HTTP 200\n{}"},
	})
	logger.ScenarioSkipped(framework.TestID{Path: []string{"payments"}}, "excluded by filter parameters")

	g := goldie.New(t)
	g.Assert(t, "console_output", buf.Bytes())
}

func TestConsoleTestLoggerHidesDebugOutputForPassingScenarios(t *testing.T) {
	var buf bytes.Buffer
	logger := &ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}
	logger.ScenarioFinished(framework.TestID{Path: []string{"x"}}, false, framework.CapturedOutput{
		{Time: time.Now(), Message: "Request: curl"},
	})
	assert.Empty(t, buf.String())

	logger.DebugOutputOnSuccess = true
	logger.ScenarioFinished(framework.TestID{Path: []string{"x"}}, false, framework.CapturedOutput{
		{Time: time.Now(), Message: "Request: curl"},
	})
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestPrintSummary(t *testing.T) {
	color.NoColor = true
	h, err := framework.NewTestHarness("http://localhost:8001", 0, nil, nil, nil)
	require.NoError(t, err)
	h.Run("group", func(c *framework.Context) {
		c.LogTest("works", true, "")
		c.LogTest("broken", false, "Status: 500")
	})

	var buf bytes.Buffer
	printBanner(&buf, h.BaseURL())
	printSummary(&buf, h.Results())

	g := goldie.New(t)
	g.Assert(t, "summary_with_failures", buf.Bytes())
}

func TestPrintSummaryAllPassed(t *testing.T) {
	color.NoColor = true
	h, err := framework.NewTestHarness("http://localhost:8001", 0, nil, nil, nil)
	require.NoError(t, err)
	h.Run("group", func(c *framework.Context) {
		c.LogTest("works", true, "")
	})

	var buf bytes.Buffer
	printSummary(&buf, h.Results())
	assert.Contains(t, buf.String(), "Success Rate: 100.0%\n")
	assert.Contains(t, buf.String(), "All tests passed!\n")
}
