package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/btl/internal/engine/settings"
	"go.trai.ch/zerr"
)

// requireValue rejects blank command-line values before they reach the profile.
func requireValue(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return zerr.With(domain.ErrMissingValue, "argument", name)
	}
	return nil
}

func flagNames() string {
	names := make([]string, 0, len(domain.BooleanKinds()))
	for _, k := range domain.BooleanKinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func parseKinds(names []string) ([]domain.Kind, error) {
	kinds := make([]domain.Kind, 0, len(names))
	for _, name := range names {
		kind, err := domain.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func (c *CLI) newToggleCmd(enabled bool) *cobra.Command {
	use, short := "enable", "Enable boolean BuildTools flags"
	if !enabled {
		use, short = "disable", "Disable boolean BuildTools flags"
	}

	return &cobra.Command{
		Use:   use + " <flag>...",
		Short: short,
		Long:  short + ".\n\nFlags: " + flagNames(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(args)
			if err != nil {
				return err
			}
			return c.app.Configure(cmd.Context(), func(m *settings.Manager) error {
				for _, kind := range kinds {
					if err := m.SetFlag(kind, enabled); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (c *CLI) newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set a BuildTools argument or launcher setting",
	}

	value := func(use, short string, apply func(m *settings.Manager, v string) error) *cobra.Command {
		name, _, _ := strings.Cut(use, " ")
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := requireValue(name, args[0]); err != nil {
					return err
				}
				return c.app.Configure(cmd.Context(), func(m *settings.Manager) error {
					return apply(m, args[0])
				})
			},
		}
	}

	cmd.AddCommand(
		value("rev <version>", "Minecraft version to build", (*settings.Manager).SetRev),
		value("output-dir <dir>", "Directory the built jars are copied to", (*settings.Manager).SetOutputDir),
		value("final-name <name>", "File name of the built server jar", (*settings.Manager).SetFinalName),
		value("workdir <dir>", "Directory BuildTools runs in", (*settings.Manager).SetWorkingDirectory),
		value("java <path>", "Java executable used to run BuildTools", (*settings.Manager).SetJavaPath),
		&cobra.Command{
			Use:   "pull-request <repo> <id>",
			Short: "Build a pull request of a Spigot repository",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := requireValue("pull-request", args[0]); err != nil {
					return err
				}
				id, err := domain.ParsePullRequestID(args[1])
				if err != nil {
					return err
				}
				return c.app.Configure(cmd.Context(), func(m *settings.Manager) error {
					return m.SetPullRequest(args[0], id)
				})
			},
		},
		&cobra.Command{
			Use:   "compile <target>...",
			Short: "Server jars to compile (NONE, CRAFTBUKKIT, SPIGOT)",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.Configure(cmd.Context(), func(m *settings.Manager) error {
					return m.SetCompileTargets(args)
				})
			},
		},
	)
	return cmd
}

func (c *CLI) newUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <argument>...",
		Short: "Remove BuildTools arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(args)
			if err != nil {
				return err
			}
			return c.app.Configure(cmd.Context(), func(m *settings.Manager) error {
				for _, kind := range kinds {
					if err := m.Unset(kind); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (c *CLI) newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Reset(cmd.Context())
		},
	}
}
