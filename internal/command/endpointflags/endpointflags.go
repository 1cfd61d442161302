// Package endpointflags provides the flags shared by the commands
// that operate on a single endpoint.
package endpointflags

import (
	"fmt"
	"github.com/cirruslabs/pinpoint/internal/config"
	"github.com/cirruslabs/pinpoint/internal/endpoint"
	"github.com/cirruslabs/pinpoint/internal/registry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Flags struct {
	ConfigPath   string
	Service      string
	Region       string
	URL          string
	HostnameExpr string
}

func (flags *Flags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flags.ConfigPath, "file", "f", "",
		"configuration file path to look the service up in (e.g. /etc/pinpoint.yml)")
	cmd.Flags().StringVar(&flags.Service, "service", "", "service name (e.g. dynamodb)")
	cmd.Flags().StringVar(&flags.Region, "region", "", "region name (e.g. us-west-2)")
	cmd.Flags().StringVar(&flags.URL, "url", "", "literal endpoint URL (e.g. http://localhost:4566)")
	cmd.Flags().StringVar(&flags.HostnameExpr, "hostname-expr", "",
		"expression computing the endpoint host from service and region")
}

func (flags *Flags) Endpoint() (*endpoint.Endpoint, error) {
	if flags.ConfigPath != "" {
		registry, err := flags.registry()
		if err != nil {
			return nil, err
		}

		resolved, ok := registry.Lookup(flags.Service)
		if !ok {
			return nil, fmt.Errorf("service %q is not configured in %s", flags.Service, flags.ConfigPath)
		}

		return resolved, nil
	}

	if flags.URL != "" {
		return endpoint.Parse(flags.URL)
	}

	if flags.Service == "" || flags.Region == "" {
		return nil, fmt.Errorf("either --url, or --service and --region need to be specified")
	}

	if flags.HostnameExpr != "" {
		template, err := endpoint.NewTemplate("", flags.HostnameExpr)
		if err != nil {
			return nil, err
		}

		return template.Endpoint(flags.Service, flags.Region)
	}

	return endpoint.FromServiceRegion(flags.Service, flags.Region)
}

// Provider is like Endpoint, but hands out the registry's provider
// when a configuration file is given.
func (flags *Flags) Provider() (endpoint.Provider, error) {
	if flags.ConfigPath == "" {
		return flags.Endpoint()
	}

	registry, err := flags.registry()
	if err != nil {
		return nil, err
	}

	provider, err := registry.Provider(flags.Service)
	if err != nil {
		return nil, fmt.Errorf("failed to find service in %s: %w", flags.ConfigPath, err)
	}

	return provider, nil
}

func (flags *Flags) registry() (*registry.Registry, error) {
	if flags.Service == "" {
		return nil, fmt.Errorf("service name (--service) needs to be specified " +
			"when using a configuration file")
	}

	config, err := config.Load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}

	return registry.New(config, registry.WithLogger(zap.S()))
}
