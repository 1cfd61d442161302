package testutil

import (
	"context"
	"fmt"
	"github.com/cirruslabs/pinpoint/internal/config"
	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"testing"
)

// S3 starts a LocalStack container and returns a configuration
// that routes the "s3" service to it.
func S3(t *testing.T) *config.Config {
	t.Helper()

	ctx := context.Background()

	localstackContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "localstack/localstack",
			WaitingFor:   wait.ForHTTP("/_localstack/health").WithPort("4566/tcp"),
			ExposedPorts: []string{"4566/tcp"},
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = localstackContainer.Terminate(context.Background())
	})

	exposedPort, err := nat.NewPort("tcp", "4566")
	require.NoError(t, err)

	mappedPort, err := localstackContainer.MappedPort(ctx, exposedPort)
	require.NoError(t, err)

	return &config.Config{
		Region: "us-east-1",
		Endpoints: []config.Endpoint{
			{
				Service: "s3",
				URL:     fmt.Sprintf("http://localhost:%d/", mappedPort.Int()),
			},
		},
		S3: &config.S3{
			Bucket:          "test",
			AccessKeyID:     "key-id",
			AccessKeySecret: "key-secret",
		},
	}
}
