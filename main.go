// Command status-contract-tests runs a file of declarative HTTP status
// checks against a live service and reports which passed.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/statusexpect/httpstatus-matchers/checkrun"
	"github.com/statusexpect/httpstatus-matchers/checks"
	"github.com/statusexpect/httpstatus-matchers/service"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	defs, err := checks.Load(params.checksFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot load checks: %s\n", err)
		os.Exit(1)
	}

	var serviceLogger checkrun.Logger = checkrun.NullLogger()
	if params.debugAll {
		serviceLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	client := service.NewClient(params.serviceURL, serviceLogger)
	if err := client.WaitUntilAvailable(params.timeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Service error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	checkrun.DescribeFilters(os.Stdout, params.filters)

	fmt.Printf("Running %d checks against %s\n", len(defs), client.BaseURL())

	logger := &ConsoleCheckLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := checks.RunSuite(client, defs, params.filters.AsFilter, logger)

	fmt.Println()
	checkrun.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed checks:")
		fmt.Printf("  %s\n", rerunCommand(params, results))
		os.Exit(1)
	}
}
