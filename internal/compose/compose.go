// Where: cli/internal/compose/compose.go
// What: Docker runtime probe and compose bring-up helpers.
// Why: Provide a minimal, testable interface for starting the database stack.
package compose

import (
	"context"
	"fmt"
)

// ProbeRuntime reports whether a usable container runtime is installed.
// A single `docker version` invocation; no retry, no prompt.
func ProbeRuntime(ctx context.Context, runner CommandRunner) bool {
	if runner == nil {
		return false
	}
	return runner.RunQuiet(ctx, "", "docker", "version") == nil
}

// UpDetached brings the services in dir's compose file up in the
// background. Output is inherited so the user sees image pull progress.
func UpDetached(ctx context.Context, runner CommandRunner, dir string) error {
	if runner == nil {
		return fmt.Errorf("command runner is nil")
	}
	if err := runner.Run(ctx, dir, "docker", "compose", "up", "-d"); err != nil {
		return fmt.Errorf("docker compose up: %w", err)
	}
	return nil
}
