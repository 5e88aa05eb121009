package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/skimjson/skimjson"
)

type getCommand struct {
	ui    cli.Ui
	stdin io.Reader
	flags *flag.FlagSet

	path   string
	decode bool
	trace  bool
}

func newGetCommand(ui cli.Ui, stdin io.Reader) *getCommand {
	c := &getCommand{ui: ui, stdin: stdin}
	c.flags = flag.NewFlagSet("get", flag.ContinueOnError)
	c.flags.SetOutput(io.Discard)
	c.flags.StringVar(&c.path, "path", "", "Path expression to resolve, e.g. $.a.b[2].")
	c.flags.BoolVar(&c.decode, "decode", false, "Unescape string values before printing.")
	c.flags.BoolVar(&c.trace, "trace", false, "Log every token event at debug level.")
	return c
}

func (c *getCommand) Run(args []string) int {
	if err := c.flags.Parse(args); err != nil {
		c.ui.Error(err.Error())
		return 1
	}
	if c.path == "" {
		c.ui.Error("Missing required -path flag")
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

	v, err := skimjson.Find(buf, c.path)
	if err != nil {
		c.ui.Error(fmt.Sprintf("Error resolving path: %s", err))
		return 2
	}
	if !v.Exists() {
		c.ui.Error(fmt.Sprintf("No value at %s", c.path))
		return 1
	}

	raw := v.Raw(buf)
	if c.decode && v.Kind == skimjson.String {
		dst := make([]byte, len(raw))
		n, err := skimjson.Unescape(raw[1:len(raw)-1], dst)
		if err != nil {
			c.ui.Error(fmt.Sprintf("Error decoding string: %s", err))
			return 2
		}
		raw = dst[:n]
	}
	c.ui.Output(string(raw))
	return 0
}

// traceTokens logs the full token stream of buf. Runs as a separate pass so
// the query itself stays untouched.
func traceTokens(buf []byte) {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "skimjson",
		Level: hclog.Debug,
	})
	_, err := skimjson.Scan(buf, func(kind skimjson.Kind, b []byte, off, n int) {
		logger.Debug("token", "kind", kind.String(), "off", off, "len", n, "raw", string(b[off:off+n]))
	})
	if err != nil {
		logger.Error("scan failed", "error", err)
	}
}

func (c *getCommand) Synopsis() string {
	return "Resolve a path expression against a JSON document"
}

func (c *getCommand) Help() string {
	return strings.TrimSpace(`
Usage: skimjson get -path EXPR [file]

  Resolves a path expression against the JSON document read from the given
  file, or from stdin when no file is named, and prints the raw matched
  span. The expression starts at the root '$' and concatenates '.name'
  member selectors and '[N]' zero-based index selectors:

      $ echo '{"a":1,"b":[10,20,30]}' | skimjson get -path '$.b[1]'
      20

  Exits 0 on a match, 1 when the path matches nothing, and 2 when the
  document or the expression is invalid.

Options:

  -path=EXPR   Path expression to resolve (required).
  -decode      Unescape string values before printing.
  -trace       Log every token event at debug level.
`)
}
