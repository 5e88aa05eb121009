package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/skimjson/skimjson"
)

type checkCommand struct {
	ui    cli.Ui
	stdin io.Reader
	flags *flag.FlagSet

	trace bool
}

func newCheckCommand(ui cli.Ui, stdin io.Reader) *checkCommand {
	c := &checkCommand{ui: ui, stdin: stdin}
	c.flags = flag.NewFlagSet("check", flag.ContinueOnError)
	c.flags.SetOutput(io.Discard)
	c.flags.BoolVar(&c.trace, "trace", false, "Log every token event at debug level.")
	return c
}

func (c *checkCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Error(err.Error())
		return 1
	}
	buf, err := readInput(c.flags.Args(), c.stdin)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error reading input: %s", err))
		return 2
	}
	if c.trace {
		traceTokens(buf)
	}

	n, err := skimjson.Scan(buf, nil)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Invalid document: %s", err))
		return 2
	}
	for _, b := range buf[n:] {
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			c.ui.Error(fmt.Sprintf("Trailing data after document at offset %d", n))
			return 2
		}
	}
	c.ui.Output(fmt.Sprintf("Valid document, %d bytes", n))
	return 0
}

func (c *checkCommand) Synopsis() string {
	return "Validate a JSON document"
}

func (c *checkCommand) Help() string {
	return strings.TrimSpace(`
Usage: skimjson check [file]

  Validates the JSON document read from the given file, or from stdin when
  no file is named. Exits 0 when the buffer holds exactly one well-formed
  document (trailing whitespace allowed), 2 otherwise.

Options:

  -trace       Log every token event at debug level.
`)
}
