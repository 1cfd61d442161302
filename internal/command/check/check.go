package check

import (
	"fmt"
	"github.com/cirruslabs/pinpoint/internal/config"
	"github.com/cirruslabs/pinpoint/internal/registry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration file and print the resolved endpoints",
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configPath, "file", "f", "",
		"configuration file path (e.g. /etc/pinpoint.yml)")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	if configPath == "" {
		return fmt.Errorf("configuration file path (-f or --file) needs to be specified")
	}

	config, err := config.Load(configPath)
	if err != nil {
		return err
	}

	registry, err := registry.New(config, registry.WithLogger(zap.S()))
	if err != nil {
		return err
	}

	for _, service := range registry.Services() {
		resolved, _ := registry.Lookup(service)

		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", service, resolved); err != nil {
			return err
		}
	}

	return nil
}
