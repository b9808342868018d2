package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newVersionsCmd() *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "versions [rev]",
		Short: "List the versions BuildTools can build",
		Long: "List the versions BuildTools can build, newest first.\n\n" +
			"With --check, report whether rev (or the configured rev) is the newest one.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !check {
				versions, err := c.app.Versions(cmd.Context())
				if err != nil {
					return err
				}
				for _, v := range versions {
					_, _ = fmt.Fprintln(out, v)
				}
				return nil
			}

			var rev string
			if len(args) == 1 {
				rev = args[0]
			}
			result, err := c.app.CheckRev(cmd.Context(), rev)
			if err != nil {
				return err
			}
			if result.Outdated {
				_, _ = fmt.Fprintf(out, "%s is outdated, the newest version is %s\n", result.Current, result.Latest)
				return nil
			}
			_, _ = fmt.Fprintf(out, "%s is up to date\n", result.Current)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&check, "check", "c", false, "Check a revision against the newest version")
	return cmd
}
