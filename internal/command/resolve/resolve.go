package resolve

import (
	"fmt"
	"github.com/cirruslabs/pinpoint/internal/command/endpointflags"
	"github.com/spf13/cobra"
)

var flags endpointflags.Flags

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the endpoint URL for a service",
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	flags.Register(cmd)

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	resolved, err := flags.Endpoint()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), resolved.String())

	return err
}
