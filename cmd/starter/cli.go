// Where: cli/cmd/starter/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"crypto/rand"
	"os"

	"github.com/launchbox/saas-starter/cli/internal/app"
	"github.com/launchbox/saas-starter/cli/internal/compose"
	"github.com/launchbox/saas-starter/cli/internal/interaction"
)

var getwd = os.Getwd

// buildDependencies constructs all runtime dependencies required by the
// CLI: the exec-backed command runner, the huh prompter, the Docker
// client factory, and the randomness source.
func buildDependencies() (app.Dependencies, error) {
	workDir, err := getwd()
	if err != nil {
		return app.Dependencies{}, err
	}

	return app.Dependencies{
		WorkDir:      workDir,
		Out:          os.Stdout,
		Runner:       compose.ExecRunner{},
		DockerClient: compose.NewDockerClient,
		Prompter:     interaction.HuhPrompter{},
		Random:       rand.Reader,
		Interactive: func() bool {
			return interaction.IsTerminal(os.Stdin)
		},
	}, nil
}
