package count

import (
	"fmt"
	"github.com/cirruslabs/pinpoint/internal/client"
	"github.com/cirruslabs/pinpoint/internal/config"
	"github.com/cirruslabs/pinpoint/internal/registry"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string
var createBucket bool

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count the objects in the configured S3 bucket through the configured endpoint",
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&configPath, "file", "f", "",
		"configuration file path (e.g. /etc/pinpoint.yml)")
	cmd.Flags().BoolVar(&createBucket, "create-bucket", false,
		"create the bucket if it doesn't exist yet")

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

	s3, err := client.NewS3(cmd.Context(), config, registry, client.WithLogger(zap.S()))
	if err != nil {
		return err
	}

	if createBucket {
		if err := s3.EnsureBucket(cmd.Context()); err != nil {
			return err
		}
	}

	count, err := s3.Count(cmd.Context())
	if err != nil {
		return err
	}

	zap.S().Infof("bucket %s contains %d objects", s3.Bucket(), count)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", s3.Bucket(), count)

	return err
}
