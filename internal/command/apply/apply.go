package apply

import (
	"fmt"
	"github.com/cirruslabs/pinpoint/internal/client"
	"github.com/cirruslabs/pinpoint/internal/command/endpointflags"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"net/url"
)

var flags endpointflags.Flags

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply REQUEST-URL",
		Short: "Print the request URL as it would be sent to the endpoint",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}

	flags.Register(cmd)

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	provider, err := flags.Provider()
	if err != nil {
		return err
	}

	requestURL, err := url.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse request URL %q: %w", args[0], err)
	}

	rewritten, err := client.Rewrite(cmd.Context(), provider, requestURL)
	if err != nil {
		return err
	}

	zap.S().Debugf("applied endpoint for %s to %s", flags.Service, requestURL.Redacted())

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rewritten.String())

	return err
}
