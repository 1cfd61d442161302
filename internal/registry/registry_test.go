package registry_test

import (
	"github.com/cirruslabs/pinpoint/internal/config"
	"github.com/cirruslabs/pinpoint/internal/endpoint"
	"github.com/cirruslabs/pinpoint/internal/registry"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"strings"
	"testing"
)

func TestRegistry(t *testing.T) {
	config, err := config.Parse(strings.NewReader(`
region: us-west-2
endpoints:
  - service: dynamodb
  - service: s3
    url: http://localhost:4566
  - service: sqs
    region: cn-north-1
    hostname-expr: 'service + "." + region + ".amazonaws.com.cn"'
`))
	require.NoError(t, err)

	registry, err := registry.New(config, registry.WithLogger(zaptest.NewLogger(t).Sugar()))
	require.NoError(t, err)
	require.Equal(t, []string{"dynamodb", "s3", "sqs"}, registry.Services())

	dynamodb, ok := registry.Lookup("dynamodb")
	require.True(t, ok)
	require.Equal(t, "https://dynamodb.us-west-2.amazonaws.com/", dynamodb.String())

	s3, ok := registry.Lookup("s3")
	require.True(t, ok)
	require.Equal(t, "http://localhost:4566/", s3.String())

	sqs, ok := registry.Lookup("sqs")
	require.True(t, ok)
	require.Equal(t, "https://sqs.cn-north-1.amazonaws.com.cn/", sqs.String())

	_, ok = registry.Lookup("kinesis")
	require.False(t, ok)

	_, err = registry.Provider("kinesis")
	require.ErrorIs(t, err, endpoint.ErrNoProvider)
}

func TestRegistryInvalid(t *testing.T) {
	for name, endpoints := range map[string][]config.Endpoint{
		"empty service": {{Region: "us-east-1"}},
		"duplicate": {
			{Service: "s3", Region: "us-east-1"},
			{Service: "s3", URL: "http://localhost:4566"},
		},
		"no region":           {{Service: "s3"}},
		"both url and expr":   {{Service: "s3", URL: "http://localhost", HostnameExpr: `"localhost"`}},
		"both url and scheme": {{Service: "s3", URL: "http://localhost:4566", Scheme: "https"}},
		"url without host":    {{Service: "s3", URL: "http:///path"}},
		"plain http scheme":   {{Service: "s3", Region: "us-east-1", Scheme: "http"}},
		"bad expression":      {{Service: "s3", Region: "us-east-1", HostnameExpr: `service +`}},
		"unsupported scheme":  {{Service: "s3", URL: "ftp://localhost"}},
	} {
		_, err := registry.New(&config.Config{Endpoints: endpoints})
		require.Error(t, err, name)
	}
}
