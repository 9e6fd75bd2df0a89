// Where: cli/internal/app/setup.go
// What: The onboarding flow for the starter template.
// Why: Thread an accumulating env record through the provisioning steps.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/launchbox/saas-starter/cli/internal/compose"
	"github.com/launchbox/saas-starter/cli/internal/envfile"
	"github.com/launchbox/saas-starter/cli/internal/interaction"
	"github.com/launchbox/saas-starter/cli/internal/secrets"
	"github.com/launchbox/saas-starter/cli/internal/stripe"
	"github.com/launchbox/saas-starter/cli/internal/ui"
)

// Env file keys, written in this order.
const (
	keyPostgresURL   = "POSTGRES_URL"
	keyStripeSecret  = "STRIPE_SECRET_KEY"
	keyWebhookSecret = "STRIPE_WEBHOOK_SECRET"
	keyBaseURL       = "BASE_URL"
	keyAuthSecret    = "AUTH_SECRET"
)

// webhookSecretPlaceholder marks a webhook secret the user deferred.
// The summary compares against it verbatim, so the literal must not change.
const webhookSecretPlaceholder = "your_webhook_secret_here"

const embeddedDatabaseURL = "file:./dev.db"

// Database choice values returned by the selection prompt.
const (
	dbChoiceLocal    = "local"
	dbChoiceRemote   = "remote"
	dbChoiceEmbedded = "embedded"
)

// setupFlow carries the injected collaborators and the state collected
// so far through the onboarding steps.
type setupFlow struct {
	deps     Dependencies
	cmd      SetupCmd
	console  *ui.Console
	existing map[string]string
}

// runSetup walks the onboarding steps in order: capability probes,
// database provisioning, Stripe credentials, auth secret, env file.
// Control flows strictly forward; every fallback is taken at most once.
func runSetup(cli CLI, deps Dependencies, out io.Writer) int {
	if deps.Interactive != nil && !deps.Interactive() {
		return exitWithError(out, fmt.Errorf("setup is interactive; run it from a terminal"))
	}
	if deps.Runner == nil || deps.Prompter == nil {
		return exitWithError(out, fmt.Errorf("setup dependencies are not wired"))
	}

	flow := &setupFlow{deps: deps, cmd: cli.Setup, console: ui.New(out)}
	if err := flow.run(context.Background()); err != nil {
		return exitWithError(out, err)
	}
	return 0
}

func (f *setupFlow) run(ctx context.Context) error {
	f.console.Header("🚀", "SaaS starter setup")

	envPath := f.cmd.EnvFile
	if !filepath.IsAbs(envPath) {
		envPath = filepath.Join(f.deps.WorkDir, envPath)
	}

	existing, err := envfile.Load(envPath)
	if err != nil {
		return err
	}
	f.existing = existing
	if existing != nil {
		f.console.Info(fmt.Sprintf("%s already exists and will be overwritten.", f.cmd.EnvFile))
		overwrite, err := f.deps.Prompter.Confirm("Overwrite the existing env file?")
		if err != nil {
			return err
		}
		if !overwrite {
			f.console.Info("Keeping the existing env file. Nothing changed.")
			return nil
		}
	}

	// Capability probes, each computed once per run and not re-checked.
	stripeUsable := stripe.Probe(ctx, f.deps.Runner, f.deps.Prompter, f.console)
	runtimeUsable := compose.ProbeRuntime(ctx, f.deps.Runner)

	postgresURL, err := f.provisionDatabase(ctx, runtimeUsable)
	if err != nil {
		return err
	}

	secretKey, err := f.collectSecretKey()
	if err != nil {
		return err
	}

	webhookSecret, err := f.collectWebhookSecret(ctx, stripeUsable)
	if err != nil {
		return err
	}

	authSecret, err := secrets.GenerateAuthSecret(f.deps.Random)
	if err != nil {
		return err
	}

	record := envfile.NewRecord()
	record.Set(keyPostgresURL, postgresURL)
	record.Set(keyStripeSecret, secretKey)
	record.Set(keyWebhookSecret, webhookSecret)
	record.Set(keyBaseURL, f.cmd.BaseURL)
	record.Set(keyAuthSecret, authSecret)
	if err := envfile.Write(envPath, record); err != nil {
		return err
	}

	f.console.Success("Wrote " + f.cmd.EnvFile)
	for _, key := range record.Keys() {
		f.console.Item(key, summarizeValue(key, record.Get(key)))
	}
	if webhookSecret == webhookSecretPlaceholder {
		f.console.Warn("STRIPE_WEBHOOK_SECRET is a placeholder. Set it before testing webhooks.")
	}
	f.console.Info("Setup complete. Start the app with `npm run dev`.")
	return nil
}

// provisionDatabase resolves a Postgres connection URL. The offered
// choices depend on whether a container runtime was detected; the
// embedded branch never touches the runtime.
func (f *setupFlow) provisionDatabase(ctx context.Context, runtimeUsable bool) (string, error) {
	f.console.Header("🐘", "Database")

	options := []interaction.SelectOption{
		{Label: "Local Postgres in Docker (recommended)", Value: dbChoiceLocal},
		{Label: "Remote Postgres instance", Value: dbChoiceRemote},
	}
	if !runtimeUsable {
		f.console.Info("Docker is not available, so a local containerized database cannot be offered.")
		options = []interaction.SelectOption{
			{Label: "Remote Postgres instance", Value: dbChoiceRemote},
			{Label: "Embedded SQLite file (no server)", Value: dbChoiceEmbedded},
		}
	}

	choice, err := f.deps.Prompter.SelectValue("Where should the database live?", options)
	if err != nil {
		return "", err
	}

	switch choice {
	case dbChoiceEmbedded:
		f.console.Info("Using an embedded database at ./dev.db.")
		return embeddedDatabaseURL, nil
	case dbChoiceRemote:
		// Returned verbatim; a bad URL surfaces when the app connects.
		return f.deps.Prompter.Input("Postgres connection string (postgres://...)", f.suggestion(keyPostgresURL))
	default:
		return f.setupLocalDatabase(ctx)
	}
}

// setupLocalDatabase writes the compose descriptor and brings the stack
// up. A failed bring-up is fatal: every later step depends on a working
// database, so there is nothing sensible to fall back to.
func (f *setupFlow) setupLocalDatabase(ctx context.Context) (string, error) {
	descriptorPath := filepath.Join(f.deps.WorkDir, compose.FileName)
	if err := compose.Save(descriptorPath, compose.DefaultConfig()); err != nil {
		return "", err
	}
	f.console.Info("Wrote " + compose.FileName)
	f.console.Info("Starting the local Postgres container...")

	if err := compose.UpDetached(ctx, f.deps.Runner, f.deps.WorkDir); err != nil {
		return "", fmt.Errorf("start local database: %w", err)
	}

	f.waitForDatabase(ctx)
	return compose.LocalDatabaseURL(), nil
}

// waitForDatabase reports when the container actually reaches running.
// Purely informational: a slow daemon never fails the flow.
func (f *setupFlow) waitForDatabase(ctx context.Context) {
	if f.deps.DockerClient == nil {
		return
	}
	cli, err := f.deps.DockerClient()
	if err != nil {
		return
	}
	if closer, ok := cli.(io.Closer); ok {
		defer closer.Close()
	}
	if err := compose.WaitRunning(ctx, cli, compose.ServiceName, f.deps.WaitTimeout); err != nil {
		f.console.Warn("Postgres has not reported running yet. Check `docker compose ps` in a moment.")
		return
	}
	f.console.Success("Postgres is running on port " + strconv.Itoa(compose.HostPostgresPort))
}

func (f *setupFlow) collectSecretKey() (string, error) {
	f.console.Header("🔑", "Stripe secret key")
	f.console.ItemPlain("Find it at https://dashboard.stripe.com/test/apikeys")
	// Accepted verbatim; an invalid key surfaces when the app first
	// calls Stripe, not here.
	return f.deps.Prompter.Input("Stripe secret key (sk_test_...)", f.suggestion(keyStripeSecret))
}

// collectWebhookSecret tries the Stripe CLI listener once, then falls
// back to manual entry or a placeholder.
func (f *setupFlow) collectWebhookSecret(ctx context.Context, cliUsable bool) (string, error) {
	f.console.Header("🪝", "Stripe webhook secret")

	if cliUsable {
		secret, err := stripe.WebhookSecret(ctx, f.deps.Runner)
		if err == nil {
			f.console.Success("Webhook signing secret captured from the Stripe CLI.")
			return secret, nil
		}
		f.console.Info("Could not capture the secret from the Stripe CLI. Switching to manual entry.")
	}

	setupNow, err := f.deps.Prompter.Confirm("Set up the webhook secret now?")
	if err != nil {
		return "", err
	}
	if !setupNow {
		f.console.Info("Skipping for now; a placeholder will be written instead.")
		return webhookSecretPlaceholder, nil
	}
	return f.deps.Prompter.Input("Webhook signing secret (whsec_...)", f.suggestion(keyWebhookSecret))
}

// suggestion offers the value from a pre-existing env file, if any, so
// re-running setup does not force retyping long secrets.
func (f *setupFlow) suggestion(key string) []string {
	if v := f.existing[key]; v != "" {
		return []string{v}
	}
	return nil
}

// summarizeValue hides secret material in the final summary.
func summarizeValue(key, value string) string {
	switch key {
	case keyStripeSecret, keyAuthSecret:
		return "(hidden)"
	case keyWebhookSecret:
		if value == webhookSecretPlaceholder {
			return value
		}
		return "(hidden)"
	default:
		return value
	}
}
