package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/clickestate/api-contract-tests/framework"
)

const defaultServiceURL = "http://localhost:8001"

type commandParams struct {
	serviceURL    string
	filters       framework.RegexFilters
	timeout       time.Duration
	fixturesPath  string
	adminUser     string
	adminPassword string
	debug         bool
	debugAll      bool
	noColor       bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.serviceURL, "url", defaultServiceURL, "base URL of the ClickEstate backend")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select scenarios to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select scenarios not to run")
	fs.DurationVar(&c.timeout, "timeout", framework.DefaultRequestTimeout, "timeout for each request")
	fs.StringVar(&c.fixturesPath, "fixtures", "", "YAML file of expected backend fixtures (default: built-in)")
	fs.StringVar(&c.adminUser, "admin-user", "", "admin username (overrides fixtures)")
	fs.StringVar(&c.adminPassword, "admin-password", "", "admin password (overrides fixtures)")
	fs.BoolVar(&c.debug, "debug", false, "show request/response debug output for failed scenarios")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show request/response debug output for all scenarios")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return false
	}
	if c.serviceURL == "" {
		fmt.Fprintln(os.Stderr, "-url must not be empty")
		fs.Usage()
		return false
	}
	return true
}
