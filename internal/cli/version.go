package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/footadmin/footadmin/internal/cli.Version=...".
var Version = "0.1.0"

const modulePath = "github.com/footadmin/footadmin"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the footadmin version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "footadmin v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
