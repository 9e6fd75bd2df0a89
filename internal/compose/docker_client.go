// Where: cli/internal/compose/docker_client.go
// What: Docker API client abstraction.
// Why: Let the readiness check talk to the daemon without binding to the full SDK surface.
package compose

import (
	"context"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// DockerClient is the subset of the Docker API the CLI uses.
type DockerClient interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
}

// ClientFactory constructs a DockerClient on demand. The client is only
// created when a compose service was actually started.
type ClientFactory func() (DockerClient, error)

// NewDockerClient builds a Docker client from the environment
// (DOCKER_HOST and friends) with API version negotiation.
func NewDockerClient() (DockerClient, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}
