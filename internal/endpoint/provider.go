package endpoint

import (
	"context"
	"github.com/aws/smithy-go/middleware"
	"net/url"
)

// Provider rewrites a request URL in place so that it targets
// the provider's endpoint.
type Provider interface {
	SetEndpoint(requestURL *url.URL) error
}

type ProviderFunc func(requestURL *url.URL) error

func (fn ProviderFunc) SetEndpoint(requestURL *url.URL) error {
	return fn(requestURL)
}

type providerKey struct{}

// WithProvider needs to be called from within the middleware stack,
// stack values are cleared when an operation starts.
func WithProvider(ctx context.Context, provider Provider) context.Context {
	return middleware.WithStackValue(ctx, providerKey{}, provider)
}

func GetProvider(ctx context.Context) (Provider, bool) {
	provider, ok := middleware.GetStackValue(ctx, providerKey{}).(Provider)
	if !ok || provider == nil {
		return nil, false
	}

	return provider, true
}
