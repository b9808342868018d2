package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/btl/internal/adapters/detector"
	"go.trai.ch/btl/internal/app"
)

type launchFlags struct {
	output      string
	tui         bool
	keepOpen    bool
	failOnError bool
	fetch       bool
}

func (f *launchFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.output, "output", "o", "auto", "Output mode: auto, tui, or linear")
	fs.BoolVar(&f.tui, "tui", false, "Show the interactive log view (shorthand for --output=tui)")
	fs.BoolVarP(&f.keepOpen, "keep-open", "k", false, "Keep the log view open after BuildTools exits")
	fs.BoolVar(&f.failOnError, "fail-on-error", false, "Exit non-zero when BuildTools fails")
	fs.BoolVar(&f.fetch, "fetch", false, "Download BuildTools.jar first when it is missing")
}

func (f *launchFlags) options() (app.LaunchOptions, error) {
	mode, err := detector.ParseMode(f.output)
	if err != nil {
		return app.LaunchOptions{}, err
	}
	if f.tui {
		mode = detector.ModeTUI
	}
	return app.LaunchOptions{
		Output:      mode,
		KeepOpen:    f.keepOpen,
		FailOnError: f.failOnError,
		Fetch:       f.fetch,
	}, nil
}

func (c *CLI) newLaunchCmd() *cobra.Command {
	var flags launchFlags
	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Run BuildTools with the configured arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			_, err = c.app.Launch(cmd.Context(), opts)
			return err
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}
