package cli

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command. Development builds whose
// version is not semantic are reported as-is.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the listkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			v, err := semver.NewVersion(ver)
			if err != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "listkit %s\n", ver)
				return
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "listkit %s\n", v)
			if v.Prerelease() != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pre-release build (%s)\n", v.Prerelease())
			}
		},
	}
}
