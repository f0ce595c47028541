// File: cmd/version.go
package cmd

import (
	"fmt"

	"promptcat/pkg/version"

	"github.com/spf13/cobra"
)

var versionShort bool

// versionCmd prints the build metadata of the running binary. --short
// reduces the output to the bare version number for scripting.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of promptcat",
	Long:  `Display the version, commit, and build information of the promptcat binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := version.Get()
		if versionShort {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), v.Version)
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), v.String())
		return err
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print the version number only")
	RootCmd.AddCommand(versionCmd)
}
