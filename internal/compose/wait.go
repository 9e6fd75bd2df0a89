// Where: cli/internal/compose/wait.go
// What: Readiness wait for a compose-managed service.
// Why: Tell the user when the database container is actually up, not just requested.
package compose

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/api/types/container"
)

const (
	composeServiceLabel = "com.docker.compose.service"

	defaultWaitTimeout = 30 * time.Second
	pollInterval       = 500 * time.Millisecond
)

// WaitRunning polls the Docker API until the compose service with the
// given name reports a running container, or the timeout elapses.
// A zero timeout selects the default.
func WaitRunning(ctx context.Context, cli DockerClient, service string, timeout time.Duration) error {
	if cli == nil {
		return fmt.Errorf("docker client is nil")
	}
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		running, err := serviceRunning(waitCtx, cli, service)
		if err == nil && running {
			return nil
		}

		select {
		case <-waitCtx.Done():
			return fmt.Errorf("service %q did not report running within %s", service, timeout)
		case <-ticker.C:
		}
	}
}

func serviceRunning(ctx context.Context, cli DockerClient, service string) (bool, error) {
	containers, err := cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		return false, err
	}
	for _, c := range containers {
		if c.Labels[composeServiceLabel] == service && c.State == "running" {
			return true, nil
		}
	}
	return false, nil
}
