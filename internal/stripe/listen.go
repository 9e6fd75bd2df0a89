// Where: cli/internal/stripe/listen.go
// What: Webhook signing secret extraction from `stripe listen`.
// Why: Capture the whsec_ token the listener announces on startup.
package stripe

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/launchbox/saas-starter/cli/internal/compose"
)

// ErrNoSecret is returned when the listener output contains no signing secret.
var ErrNoSecret = errors.New("no signing secret found in stripe listen output")

// First match wins; the CLI prints the secret once on startup.
var secretPattern = regexp.MustCompile(`whsec_[A-Za-z0-9]+`)

// WebhookSecret runs `stripe listen --print-secret` and returns the
// first whsec_ token in its output. Callers fall back to manual entry
// on any error; the CLI path is never retried.
func WebhookSecret(ctx context.Context, runner compose.CommandRunner) (string, error) {
	out, err := runner.RunOutput(ctx, "", "stripe", "listen", "--print-secret")
	if err != nil {
		return "", fmt.Errorf("stripe listen: %w", err)
	}
	secret := secretPattern.FindString(string(out))
	if secret == "" {
		return "", ErrNoSecret
	}
	return secret, nil
}
