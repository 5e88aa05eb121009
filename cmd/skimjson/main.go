// Command skimjson resolves path expressions against JSON documents and
// validates them, using the streaming scanner from the root package.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/cli"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin))
}

func run(args []string, stdin io.Reader) int {
	ui := &cli.BasicUi{Writer: os.Stdout, ErrorWriter: os.Stderr}

	c := cli.NewCLI("skimjson", version)
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"get": func() (cli.Command, error) {
			return newGetCommand(ui, stdin), nil
		},
		"check": func() (cli.Command, error) {
			return newCheckCommand(ui, stdin), nil
		},
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(fmt.Sprintf("Error executing CLI: %s", err))
		return 1
	}
	return exitCode
}

// readInput returns the document bytes: the named file when one positional
// argument is present, stdin otherwise.
func readInput(args []string, stdin io.Reader) ([]byte, error) {
	switch len(args) {
	case 0:
		return io.ReadAll(stdin)
	case 1:
		return os.ReadFile(args[0])
	default:
		return nil, fmt.Errorf("at most one input file, got %d arguments", len(args))
	}
}
