package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/statusexpect/httpstatus-matchers/checkrun"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	skipColor = color.New(color.FgYellow)
)

// ConsoleCheckLogger renders check progress to standard output as the run
// proceeds.
type ConsoleCheckLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleCheckLogger) CheckStarted(id checkrun.CheckID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleCheckLogger) CheckError(id checkrun.CheckID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleCheckLogger) CheckFinished(id checkrun.CheckID, failed bool, debugOutput checkrun.CapturedOutput) {
	if failed {
		failColor.Printf("  FAILED: %s\n", id)
	} else {
		passColor.Println("  OK")
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleCheckLogger) CheckSkipped(id checkrun.CheckID, reason string) {
	if reason == "" {
		skipColor.Printf("  SKIPPED: %s\n", id)
	} else {
		skipColor.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}
