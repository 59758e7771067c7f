package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/alessio/shellescape"

	"github.com/statusexpect/httpstatus-matchers/checkrun"
)

const defaultTimeout = time.Second * 10

type commandParams struct {
	binary     string
	serviceURL string
	checksFile string
	filters    checkrun.RegexFilters
	timeout    time.Duration
	debug      bool
	debugAll   bool
}

func (c *commandParams) Read(args []string) bool {
	c.binary = args[0]

	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.serviceURL, "url", "", "base URL of the service to check")
	fs.StringVar(&c.checksFile, "checks", "", "path of the JSON checks file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select checks to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select checks not to run")
	fs.DurationVar(&c.timeout, "timeout", defaultTimeout, "how long to wait for the service to become available")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed checks")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all checks")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.serviceURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		fs.Usage()
		return false
	}
	if c.checksFile == "" {
		fmt.Fprintln(os.Stderr, "-checks is required")
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a copy-pastable command line that reruns only the
// checks that failed.
func rerunCommand(params commandParams, results checkrun.Results) string {
	var b commandBuilder
	b.add(params.binary, "-url", params.serviceURL, "-checks", params.checksFile)
	for _, failure := range results.Failures {
		if len(failure.CheckID.Path) == 0 {
			continue // the root scope carries no name to filter by
		}
		b.add("-run", "^"+regexp.QuoteMeta(failure.CheckID.String())+"$")
	}
	return b.String()
}
