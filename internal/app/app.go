// Where: cli/internal/app/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/launchbox/saas-starter/cli/internal/compose"
	"github.com/launchbox/saas-starter/cli/internal/interaction"
	"github.com/launchbox/saas-starter/cli/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of the external collaborators: process
// invocation, prompts, the Docker API, and the randomness source.
type Dependencies struct {
	WorkDir      string
	Out          io.Writer
	Runner       compose.CommandRunner
	DockerClient compose.ClientFactory
	Prompter     interaction.Prompter
	Random       io.Reader
	Interactive  func() bool
	WaitTimeout  time.Duration
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Setup   SetupCmd   `cmd:"" help:"Provision dependencies and write .env"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type SetupCmd struct {
	EnvFile string `name:"env-file" default:".env" help:"Output env file path (relative to the working directory)"`
	BaseURL string `name:"base-url" default:"http://localhost:3000" help:"Base URL written to the env file"`
}

type VersionCmd struct{}

// Run is the main entry point for CLI command execution. It parses the
// command-line arguments and dispatches to the appropriate handler.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	if len(args) == 0 {
		printUsage(out)
		return 0
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return exitWithError(out, err)
	}

	handlers := map[string]func(CLI, Dependencies, io.Writer) int{
		"setup":   runSetup,
		"version": func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(out) },
	}

	if handler, ok := handlers[ctx.Command()]; ok {
		return handler(cli, deps, out)
	}

	fmt.Fprintln(out, "unknown command")
	return 1
}

// runVersion prints the version information of the CLI.
func runVersion(out io.Writer) int {
	fmt.Fprintln(out, version.Get())
	return 0
}

func printUsage(out io.Writer) {
	fmt.Fprintln(out, "starter — onboarding for the SaaS starter template")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  starter setup     Provision dependencies and write .env")
	fmt.Fprintln(out, "  starter version   Show version information")
}

// exitWithError prints the error and returns a non-zero exit code.
func exitWithError(out io.Writer, err error) int {
	fmt.Fprintf(out, "Error: %v\n", err)
	return 1
}
