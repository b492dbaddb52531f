package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/clickestate/api-contract-tests/framework"

	"github.com/fatih/color"
)

const rule = "============================================================"

var (
	passLabel = color.New(color.FgGreen, color.Bold)
	failLabel = color.New(color.FgRed, color.Bold)
	skipLabel = color.New(color.FgYellow)
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) ScenarioStarted(id framework.TestID) {
	fmt.Fprintf(c.Out, "\n[%s]\n", id)
}

func (c *ConsoleTestLogger) RequestStarted(id framework.TestID, name, method, url string) {
	fmt.Fprintf(c.Out, "  Testing %s...\n", name)
	fmt.Fprintf(c.Out, "    URL: %s %s\n", method, url)
}

func (c *ConsoleTestLogger) TestRecorded(id framework.TestID, result framework.TestResult) {
	if result.Success {
		fmt.Fprintf(c.Out, "  %s - %s\n", passLabel.Sprint("PASS"), result.Name)
	} else {
		fmt.Fprintf(c.Out, "  %s - %s\n", failLabel.Sprint("FAIL"), result.Name)
	}
	if result.Details != "" {
		for i, line := range strings.Split(result.Details, "\n") {
			if i == 0 {
				fmt.Fprintf(c.Out, "    Details: %s\n", line)
			} else {
				fmt.Fprintf(c.Out, "    %s\n", line)
			}
		}
	}
}

func (c *ConsoleTestLogger) ScenarioFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) ScenarioSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.Out, "  %s: %s\n", skipLabel.Sprint("SKIPPED"), id)
	} else {
		fmt.Fprintf(c.Out, "  %s: %s (%s)\n", skipLabel.Sprint("SKIPPED"), id, reason)
	}
}

func printBanner(out io.Writer, serviceURL string) {
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "ClickEstate Backend API Test Suite")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Service URL: %s\n\n", serviceURL)
}

func printSummary(out io.Writer, results framework.Results) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "TEST SUMMARY")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Tests Run: %d\n", results.Run())
	fmt.Fprintf(out, "Tests Passed: %d\n", results.Passed())
	fmt.Fprintf(out, "Tests Failed: %d\n", results.Failed())
	fmt.Fprintf(out, "Success Rate: %.1f%%\n", results.SuccessRate())

	if results.OK() {
		fmt.Fprintln(out, passLabel.Sprint("All tests passed!"))
		return
	}
	fmt.Fprintln(out, failLabel.Sprint("Some tests failed:"))
	for _, f := range results.Failures() {
		fmt.Fprintf(out, "  [%s] %s\n", f.Scenario, f.Name)
	}
}
