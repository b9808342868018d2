package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/btl/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdo := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(cmdo, "btl version %s (commit: %s, date: %s)\n", build.Version, build.Commit, build.Date)
			if !check {
				return nil
			}

			result, err := c.app.CheckUpdate(cmd.Context())
			if err != nil {
				return err
			}
			if result.Outdated {
				_, _ = fmt.Fprintf(cmdo, "a newer release is available: %s\n", result.Latest)
			} else {
				_, _ = fmt.Fprintln(cmdo, "btl is up to date")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&check, "check", "c", false, "Check GitHub for a newer release")
	return cmd
}
