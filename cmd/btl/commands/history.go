package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.trai.ch/btl/internal/core/domain"
)

// DefaultHistoryLimit is how many launches history prints without -n.
const DefaultHistoryLimit = 10

func (c *CLI) newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent launches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := c.app.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				_, _ = fmt.Fprintln(out, "no launches recorded")
				return nil
			}
			_, _ = fmt.Fprintln(out, historyTable(records))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", DefaultHistoryLimit, "Number of launches to show (0 for all)")
	return cmd
}

func historyTable(records []domain.LaunchRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.StartedAt.Local().Format(time.DateTime),
			domain.ExitStatus{Code: r.ExitCode}.String(),
			r.Duration().Round(time.Second).String(),
			strings.Join(r.Command, " "),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("STARTED", "STATUS", "DURATION", "COMMAND").
		Rows(rows...).
		String()
}
