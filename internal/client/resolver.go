package client

import (
	"context"
	s3pkg "github.com/aws/aws-sdk-go-v2/service/s3"
	transport "github.com/aws/smithy-go/endpoints"
	"github.com/cirruslabs/pinpoint/internal/endpoint"
	"path"
)

// s3EndpointResolver makes the SDK's own endpoint resolution agree with
// the endpoint middleware, using path-style bucket addressing.
type s3EndpointResolver struct {
	endpoint *endpoint.Endpoint
}

func (resolver *s3EndpointResolver) ResolveEndpoint(
	_ context.Context,
	params s3pkg.EndpointParameters,
) (transport.Endpoint, error) {
	uri := resolver.endpoint.URL()

	if params.Bucket != nil && *params.Bucket != "" {
		uri.Path = path.Join(uri.Path, *params.Bucket)
		uri.RawPath = ""
	}

	return transport.Endpoint{
		URI: *uri,
	}, nil
}
