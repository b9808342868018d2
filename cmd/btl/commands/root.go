// Package commands implements the CLI commands for the btl BuildTools launcher.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/btl/internal/app"
	"go.trai.ch/btl/internal/build"
	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/btl/internal/core/ports"
	"go.trai.ch/btl/internal/engine/settings"
)

// CLI represents the command line interface for btl.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	profilePath string
	jsonLogs    bool
}

// Application represents the application logic interface.
type Application interface {
	UseProfile(path string)
	Show(ctx context.Context) (domain.Profile, error)
	Configure(ctx context.Context, fn func(m *settings.Manager) error) error
	Reset(ctx context.Context) error
	Launch(ctx context.Context, opts app.LaunchOptions) (domain.ExitStatus, error)
	Versions(ctx context.Context) ([]string, error)
	CheckRev(ctx context.Context, rev string) (domain.VersionCheck, error)
	FetchJar(ctx context.Context) (string, error)
	History(ctx context.Context, limit int) ([]domain.LaunchRecord, error)
	CheckUpdate(ctx context.Context) (domain.VersionCheck, error)
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "btl",
		Short:         "Configure and launch Spigot BuildTools",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.profilePath, "profile", "p", "", "Profile file to read and write")
	rootCmd.PersistentFlags().BoolVar(&c.jsonLogs, "json-logs", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.UseProfile(c.profilePath)
		if l, ok := c.logger.(jsonSwitcher); ok && c.jsonLogs {
			l.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newToggleCmd(true))
	rootCmd.AddCommand(c.newToggleCmd(false))
	rootCmd.AddCommand(c.newSetCmd())
	rootCmd.AddCommand(c.newUnsetCmd())
	rootCmd.AddCommand(c.newResetCmd())
	rootCmd.AddCommand(c.newLaunchCmd())
	rootCmd.AddCommand(c.newVersionsCmd())
	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newHistoryCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithLogger sets the logger switched by --json-logs.
func (c *CLI) WithLogger(l ports.Logger) *CLI {
	c.logger = l
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
