package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/btl/internal/core/domain"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the configured invocation and its arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := c.app.Show(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "workdir: %s\n", profile.WorkingDir)
			_, _ = fmt.Fprintf(out, "java:    %s\n", profile.JavaPath)
			_, _ = fmt.Fprintf(out, "command: %s\n", profile.Task().Invocation(profile.WorkingDir))
			_, _ = fmt.Fprintln(out, "arguments:")
			for _, arg := range profile.Args.Args() {
				_, _ = fmt.Fprintf(out, "  %s\n", domain.Render(arg))
			}
			return nil
		},
	}
}
