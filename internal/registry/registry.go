package registry

import (
	"fmt"
	"github.com/cirruslabs/pinpoint/internal/config"
	"github.com/cirruslabs/pinpoint/internal/endpoint"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"slices"
)

type Registry struct {
	endpoints map[string]*endpoint.Endpoint
	logger    *zap.SugaredLogger
}

type Option func(registry *Registry)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(registry *Registry) {
		registry.logger = logger
	}
}

func New(config *config.Config, opts ...Option) (*Registry, error) {
	registry := &Registry{
		endpoints: map[string]*endpoint.Endpoint{},
	}

	// Apply options
	for _, opt := range opts {
		opt(registry)
	}

	// Apply defaults
	if registry.logger == nil {
		registry.logger = zap.NewNop().Sugar()
	}

	seen := mapset.NewThreadUnsafeSet[string]()

	for idx, configEndpoint := range config.Endpoints {
		if configEndpoint.Service == "" {
			return nil, fmt.Errorf("endpoint %d: service name cannot be empty", idx)
		}

		if !seen.Add(configEndpoint.Service) {
			return nil, fmt.Errorf("endpoint %d: service %q is already configured",
				idx, configEndpoint.Service)
		}

		resolved, err := resolve(configEndpoint, config.Region)
		if err != nil {
			return nil, fmt.Errorf("endpoint %d: failed to resolve endpoint for service %q: %w",
				idx, configEndpoint.Service, err)
		}

		registry.logger.Debugf("service %s resolves to %s", configEndpoint.Service, resolved)

		registry.endpoints[configEndpoint.Service] = resolved
	}

	return registry, nil
}

func (registry *Registry) Lookup(service string) (*endpoint.Endpoint, bool) {
	resolved, ok := registry.endpoints[service]

	return resolved, ok
}

func (registry *Registry) Provider(service string) (endpoint.Provider, error) {
	resolved, ok := registry.Lookup(service)
	if !ok {
		return nil, fmt.Errorf("%w: service %q", endpoint.ErrNoProvider, service)
	}

	return resolved, nil
}

func (registry *Registry) Services() []string {
	services := lo.Keys(registry.endpoints)

	slices.Sort(services)

	return services
}

func resolve(configEndpoint config.Endpoint, defaultRegion string) (*endpoint.Endpoint, error) {
	region := lo.Ternary(configEndpoint.Region != "", configEndpoint.Region, defaultRegion)

	switch {
	case configEndpoint.URL != "" && configEndpoint.HostnameExpr != "":
		return nil, fmt.Errorf("\"url\" and \"hostname-expr\" are mutually exclusive")
	case configEndpoint.URL != "" && configEndpoint.Scheme != "":
		return nil, fmt.Errorf("\"url\" and \"scheme\" are mutually exclusive, " +
			"specify the scheme in the URL instead")
	case configEndpoint.URL != "":
		return endpoint.Parse(configEndpoint.URL)
	}

	if region == "" {
		return nil, fmt.Errorf("no region is specified")
	}

	if configEndpoint.HostnameExpr != "" {
		template, err := endpoint.NewTemplate(configEndpoint.Scheme, configEndpoint.HostnameExpr)
		if err != nil {
			return nil, err
		}

		return template.Endpoint(configEndpoint.Service, region)
	}

	if configEndpoint.Scheme != "" && configEndpoint.Scheme != "https" {
		return nil, fmt.Errorf("scheme %q requires \"url\" or \"hostname-expr\"", configEndpoint.Scheme)
	}

	return endpoint.FromServiceRegion(configEndpoint.Service, region)
}
