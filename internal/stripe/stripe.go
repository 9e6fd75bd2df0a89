// Where: cli/internal/stripe/stripe.go
// What: Stripe CLI detection and authentication probe.
// Why: Decide whether webhook setup can be automated before the credential step runs.
package stripe

import (
	"context"

	"github.com/launchbox/saas-starter/cli/internal/compose"
	"github.com/launchbox/saas-starter/cli/internal/interaction"
	"github.com/launchbox/saas-starter/cli/internal/ui"
)

// Probe reports whether the Stripe CLI is installed and authenticated.
//
// An absent CLI returns false without prompting. An installed but
// unauthenticated CLI gets exactly one re-check: the user is asked to
// confirm they ran `stripe login`, then `config --list` runs again.
// Note that `config --list` can succeed on some CLI versions without a
// live login; this is a best-effort check, not a guarantee.
func Probe(ctx context.Context, runner compose.CommandRunner, prompter interaction.Prompter, console *ui.Console) bool {
	if err := runner.RunQuiet(ctx, "", "stripe", "--version"); err != nil {
		console.Info("Stripe CLI not found. Webhook setup will be manual.")
		console.ItemPlain("Install it from https://docs.stripe.com/stripe-cli to automate this next time.")
		return false
	}

	if err := runner.RunQuiet(ctx, "", "stripe", "config", "--list"); err == nil {
		console.Info("Stripe CLI detected and authenticated.")
		return true
	}

	console.Info("Stripe CLI found but not authenticated.")
	console.ItemPlain("Run `stripe login` in another terminal, then come back here.")

	confirmed, err := prompter.Confirm("Have you completed `stripe login`?")
	if err != nil || !confirmed {
		return false
	}

	if err := runner.RunQuiet(ctx, "", "stripe", "config", "--list"); err != nil {
		console.Info("Still not authenticated. Falling back to manual webhook setup.")
		return false
	}
	console.Info("Stripe CLI authenticated.")
	return true
}
