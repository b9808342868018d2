package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/btl/cmd/btl/commands"
	"go.trai.ch/btl/internal/adapters/detector"
	"go.trai.ch/btl/internal/app"
	"go.trai.ch/btl/internal/build"
	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/btl/internal/engine/settings"
)

type mockApp struct {
	profilePath string
	manager     *settings.Manager

	launchFunc      func(ctx context.Context, opts app.LaunchOptions) (domain.ExitStatus, error)
	versionsFunc    func(ctx context.Context) ([]string, error)
	checkRevFunc    func(ctx context.Context, rev string) (domain.VersionCheck, error)
	fetchFunc       func(ctx context.Context) (string, error)
	historyFunc     func(ctx context.Context, limit int) ([]domain.LaunchRecord, error)
	checkUpdateFunc func(ctx context.Context) (domain.VersionCheck, error)
	resetCalled     bool
}

func newMockApp() *mockApp {
	return &mockApp{manager: settings.NewManager(domain.Profile{
		WorkingDir: "/work",
		JavaPath:   "java",
		Args:       domain.NewArgumentSet(domain.NoGui),
	})}
}

func (m *mockApp) UseProfile(path string) { m.profilePath = path }

func (m *mockApp) Show(_ context.Context) (domain.Profile, error) {
	return m.manager.Snapshot(), nil
}

func (m *mockApp) Configure(_ context.Context, fn func(m *settings.Manager) error) error {
	return fn(m.manager)
}

func (m *mockApp) Reset(_ context.Context) error {
	m.resetCalled = true
	m.manager.Reset()
	return nil
}

func (m *mockApp) Launch(ctx context.Context, opts app.LaunchOptions) (domain.ExitStatus, error) {
	if m.launchFunc != nil {
		return m.launchFunc(ctx, opts)
	}
	return domain.ExitStatus{}, nil
}

func (m *mockApp) Versions(ctx context.Context) ([]string, error) {
	if m.versionsFunc != nil {
		return m.versionsFunc(ctx)
	}
	return nil, nil
}

func (m *mockApp) CheckRev(ctx context.Context, rev string) (domain.VersionCheck, error) {
	if m.checkRevFunc != nil {
		return m.checkRevFunc(ctx, rev)
	}
	return domain.VersionCheck{}, nil
}

func (m *mockApp) FetchJar(ctx context.Context) (string, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx)
	}
	return "", nil
}

func (m *mockApp) History(ctx context.Context, limit int) ([]domain.LaunchRecord, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockApp) CheckUpdate(ctx context.Context) (domain.VersionCheck, error) {
	if m.checkUpdateFunc != nil {
		return m.checkUpdateFunc(ctx)
	}
	return domain.VersionCheck{}, nil
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Show(t *testing.T) {
	mock := newMockApp()
	require.NoError(t, mock.manager.SetRev("1.21"))
	require.NoError(t, mock.manager.SetCompileTargets([]string{"CRAFTBUKKIT", "SPIGOT"}))

	out, err := execute(t, mock, "show")
	require.NoError(t, err)
	goldie.New(t).Assert(t, "show", []byte(out))
}

func TestCommands_ProfileFlag(t *testing.T) {
	mock := newMockApp()

	_, err := execute(t, mock, "show", "--profile", "/tmp/other.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.yaml", mock.profilePath)
}

func TestCommands_EnableDisable(t *testing.T) {
	mock := newMockApp()

	_, err := execute(t, mock, "enable", "remapped", "--", "--dev")
	require.NoError(t, err)
	p := mock.manager.Snapshot()
	assert.Equal(t, []string{"--nogui", "--remapped", "--dev"}, p.Args.Tokens())

	_, err = execute(t, mock, "disable", "nogui", "dev")
	require.NoError(t, err)
	p = mock.manager.Snapshot()
	assert.Equal(t, []string{"--remapped"}, p.Args.Tokens())
}

func TestCommands_Enable_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"enable", "turbo"}, domain.ErrUnknownArgument.Error()},
		{"payload kind", []string{"enable", "rev"}, domain.ErrNotABooleanArgument.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockApp()
			_, err := execute(t, mock, tt.args...)
			assert.ErrorContains(t, err, tt.want)
			p := mock.manager.Snapshot()
			assert.Equal(t, []string{"--nogui"}, p.Args.Tokens())
		})
	}
}

func TestCommands_Set(t *testing.T) {
	mock := newMockApp()

	for _, args := range [][]string{
		{"set", "rev", "1.20.4"},
		{"set", "output-dir", "/tmp/my out"},
		{"set", "final-name", "server.jar"},
		{"set", "pull-request", "craftbukkit", "1234"},
		{"set", "compile", "CRAFTBUKKIT", "SPIGOT"},
		{"set", "workdir", "/srv/build"},
		{"set", "java", "/opt/jdk/bin/java"},
	} {
		_, err := execute(t, mock, args...)
		require.NoError(t, err, args)
	}

	p := mock.manager.Snapshot()
	assert.Equal(t, []string{
		"--nogui",
		"--rev", "1.20.4",
		"--output-dir", "/tmp/my out",
		"--final-name", "server.jar",
		"--pull-request", "craftbukkit:1234",
		"--compile", "CRAFTBUKKIT,SPIGOT",
	}, p.Args.Tokens())
	assert.Equal(t, "/srv/build", p.WorkingDir)
	assert.Equal(t, "/opt/jdk/bin/java", p.JavaPath)
}

func TestCommands_Set_InvalidPullRequestID(t *testing.T) {
	mock := newMockApp()

	_, err := execute(t, mock, "set", "pull-request", "spigot", "70000")
	assert.ErrorContains(t, err, domain.ErrInvalidPullRequestID.Error())
}

func TestCommands_Set_RejectsBlankValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"rev", []string{"set", "rev", ""}},
		{"output dir", []string{"set", "output-dir", "  "}},
		{"final name", []string{"set", "final-name", ""}},
		{"pull request repo", []string{"set", "pull-request", " ", "12"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockApp()
			_, err := execute(t, mock, tt.args...)
			assert.ErrorContains(t, err, domain.ErrMissingValue.Error())
			p := mock.manager.Snapshot()
			assert.Equal(t, []string{"--nogui"}, p.Args.Tokens())
		})
	}
}

func TestCommands_UnsetAndReset(t *testing.T) {
	mock := newMockApp()
	require.NoError(t, mock.manager.SetRev("1.21"))

	_, err := execute(t, mock, "unset", "rev", "nogui")
	require.NoError(t, err)
	p := mock.manager.Snapshot()
	assert.Empty(t, p.Args.Tokens())

	_, err = execute(t, mock, "reset")
	require.NoError(t, err)
	assert.True(t, mock.resetCalled)
}

func TestCommands_Launch(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.LaunchOptions
	}{
		{"defaults", []string{"launch"}, app.LaunchOptions{Output: detector.ModeAuto}},
		{"tui shorthand", []string{"launch", "--tui", "-k"}, app.LaunchOptions{Output: detector.ModeTUI, KeepOpen: true}},
		{"ci output", []string{"launch", "-o", "ci", "--fail-on-error", "--fetch"}, app.LaunchOptions{
			Output:      detector.ModeLinear,
			FailOnError: true,
			Fetch:       true,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got app.LaunchOptions
			mock := newMockApp()
			mock.launchFunc = func(_ context.Context, opts app.LaunchOptions) (domain.ExitStatus, error) {
				got = opts
				return domain.ExitStatus{}, nil
			}

			_, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommands_Launch_Errors(t *testing.T) {
	mock := newMockApp()
	mock.launchFunc = func(_ context.Context, _ app.LaunchOptions) (domain.ExitStatus, error) {
		return domain.ExitStatus{Code: -1}, errors.New("simulated error")
	}

	_, err := execute(t, mock, "launch")
	assert.ErrorContains(t, err, "simulated error")

	_, err = execute(t, newMockApp(), "launch", "-o", "fancy")
	assert.ErrorContains(t, err, "unknown output mode")
}

func TestCommands_Versions(t *testing.T) {
	mock := newMockApp()
	mock.versionsFunc = func(_ context.Context) ([]string, error) {
		return []string{"1.21.4", "1.21", "1.8.8"}, nil
	}

	out, err := execute(t, mock, "versions")
	require.NoError(t, err)
	assert.Equal(t, "1.21.4\n1.21\n1.8.8\n", out)
}

func TestCommands_Versions_Check(t *testing.T) {
	var gotRev string
	mock := newMockApp()
	mock.checkRevFunc = func(_ context.Context, rev string) (domain.VersionCheck, error) {
		gotRev = rev
		if rev == "" {
			return domain.VersionCheck{Current: "1.21.4", Latest: "1.21.4"}, nil
		}
		return domain.VersionCheck{Current: rev, Latest: "1.21.4", Outdated: true}, nil
	}

	out, err := execute(t, mock, "versions", "--check", "1.20")
	require.NoError(t, err)
	assert.Equal(t, "1.20", gotRev)
	assert.Equal(t, "1.20 is outdated, the newest version is 1.21.4\n", out)

	out, err = execute(t, mock, "versions", "-c")
	require.NoError(t, err)
	assert.Empty(t, gotRev)
	assert.Equal(t, "1.21.4 is up to date\n", out)
}

func TestCommands_Fetch(t *testing.T) {
	mock := newMockApp()
	mock.fetchFunc = func(_ context.Context) (string, error) {
		return "/work/BuildTools.jar", nil
	}

	out, err := execute(t, mock, "fetch")
	require.NoError(t, err)
	assert.Equal(t, "saved /work/BuildTools.jar\n", out)
}

func TestCommands_History(t *testing.T) {
	var gotLimit int
	started := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	mock := newMockApp()
	mock.historyFunc = func(_ context.Context, limit int) ([]domain.LaunchRecord, error) {
		gotLimit = limit
		return []domain.LaunchRecord{{
			Command:   []string{"java", "-jar", "BuildTools.jar", "--rev", "1.21"},
			StartedAt: started,
			EndedAt:   started.Add(95 * time.Second),
			ExitCode:  1,
		}}, nil
	}

	out, err := execute(t, mock, "history", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, gotLimit)
	assert.Contains(t, out, "STARTED")
	assert.Contains(t, out, "2024-06-01 12:00:00")
	assert.Contains(t, out, "exit status: 1")
	assert.Contains(t, out, "1m35s")
	assert.Contains(t, out, "java -jar BuildTools.jar --rev 1.21")
}

func TestCommands_History_Empty(t *testing.T) {
	out, err := execute(t, newMockApp(), "history")
	require.NoError(t, err)
	assert.Equal(t, "no launches recorded\n", out)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, newMockApp(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestCommands_Version_Check(t *testing.T) {
	mock := newMockApp()
	mock.checkUpdateFunc = func(_ context.Context) (domain.VersionCheck, error) {
		return domain.VersionCheck{Current: "1.0.0", Latest: "1.1.0", Outdated: true}, nil
	}

	out, err := execute(t, mock, "version", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "a newer release is available: 1.1.0")
}
