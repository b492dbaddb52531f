package framework

// TestLogger receives progress events from the harness. The console implementation lives in the
// main package; tests can supply their own to capture events.
type TestLogger interface {
	ScenarioStarted(id TestID)
	RequestStarted(id TestID, name, method, url string)
	TestRecorded(id TestID, result TestResult)
	ScenarioFinished(id TestID, failed bool, debugOutput CapturedOutput)
	ScenarioSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) ScenarioStarted(TestID)                        {}
func (n nullTestLogger) RequestStarted(TestID, string, string, string) {}
func (n nullTestLogger) TestRecorded(TestID, TestResult)               {}
func (n nullTestLogger) ScenarioFinished(TestID, bool, CapturedOutput) {}
func (n nullTestLogger) ScenarioSkipped(TestID, string)                {}
