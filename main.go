package main

import (
	"fmt"
	"log"
	"os"

	"github.com/clickestate/api-contract-tests/estatetests"
	"github.com/clickestate/api-contract-tests/framework"

	"github.com/fatih/color"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	if params.noColor {
		color.NoColor = true
	}

	fixtures, err := loadFixtures(params)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	harness, err := framework.NewTestHarness(
		params.serviceURL,
		params.timeout,
		params.filters.AsFilter,
		testLogger,
		mainDebugLogger,
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	printBanner(os.Stdout, harness.BaseURL())
	framework.PrintFilterDescription(os.Stdout, params.filters)

	results := estatetests.RunTestSuite(harness, fixtures)

	printSummary(os.Stdout, results)
	if !results.OK() {
		os.Exit(1)
	}
}

func loadFixtures(params commandParams) (estatetests.Fixtures, error) {
	fixtures := estatetests.DefaultFixtures()
	if params.fixturesPath != "" {
		f, err := estatetests.LoadFixtures(params.fixturesPath)
		if err != nil {
			return estatetests.Fixtures{}, err
		}
		fixtures = f
	}
	if params.adminUser != "" {
		fixtures.AdminUsername = params.adminUser
	}
	if params.adminPassword != "" {
		fixtures.AdminPassword = params.adminPassword
	}
	return fixtures, nil
}
