package command

import (
	"github.com/cirruslabs/pinpoint/internal/command/apply"
	"github.com/cirruslabs/pinpoint/internal/command/check"
	"github.com/cirruslabs/pinpoint/internal/command/count"
	"github.com/cirruslabs/pinpoint/internal/command/resolve"
	"github.com/cirruslabs/pinpoint/internal/logginglevel"
	"github.com/cirruslabs/pinpoint/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

var debug bool

func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pinpoint",
		Short:         "Static endpoint resolution for AWS SDK requests",
		Version:       version.FullVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if debug {
				logginglevel.Level.SetLevel(zapcore.DebugLevel)
			}

			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	cmd.AddCommand(
		resolve.NewCommand(),
		apply.NewCommand(),
		check.NewCommand(),
		count.NewCommand(),
	)

	return cmd
}
