package app_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/btl/internal/adapters/detector"
	"go.trai.ch/btl/internal/app"
	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/btl/internal/core/ports"
	"go.trai.ch/btl/internal/core/ports/mocks"
	"go.trai.ch/btl/internal/engine/settings"
	"go.uber.org/mock/gomock"
)

const profilePath = "/profiles/test.yaml"

type fixture struct {
	app       *app.App
	profiles  *mocks.MockProfileStore
	launcher  *mocks.MockLauncher
	history   *mocks.MockHistoryStore
	versions  *mocks.MockVersionSource
	fetcher   *mocks.MockJarFetcher
	updates   *mocks.MockUpdateChecker
	telemetry *mocks.MockTelemetry
	vertex    *mocks.MockVertex
	logger    *mocks.MockLogger
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	f := &fixture{
		profiles:  mocks.NewMockProfileStore(ctrl),
		launcher:  mocks.NewMockLauncher(ctrl),
		history:   mocks.NewMockHistoryStore(ctrl),
		versions:  mocks.NewMockVersionSource(ctrl),
		fetcher:   mocks.NewMockJarFetcher(ctrl),
		updates:   mocks.NewMockUpdateChecker(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		vertex:    mocks.NewMockVertex(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
	}

	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f.app = app.New(
		settings.NewManager(domain.DefaultProfile()),
		f.profiles, f.launcher, f.history, f.versions,
		f.fetcher, f.updates, f.telemetry, f.logger,
	).
		WithOutput(f.stdout, f.stderr).
		WithDetector(func() detector.OutputMode { return detector.ModeLinear }).
		WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		})
	f.app.UseProfile(profilePath)
	return f
}

// profileWithJar returns a profile whose working directory holds a BuildTools.jar.
func profileWithJar(t *testing.T) domain.Profile {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.JarFileName), []byte("jar"), 0o600))
	return domain.Profile{
		WorkingDir: dir,
		JavaPath:   "java",
		Args:       domain.NewArgumentSet(domain.NoGui, domain.Rev("1.21")),
	}
}

func (f *fixture) expectRecord() {
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, f.vertex), f.vertex
		})
	f.vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
}

func emit(status domain.ExitStatus, lines ...string) func(context.Context, *domain.Task, string, ports.LineSink) (domain.ExitStatus, error) {
	return func(_ context.Context, _ *domain.Task, _ string, sink ports.LineSink) (domain.ExitStatus, error) {
		for _, line := range lines {
			sink.WriteLine(line)
		}
		return status, nil
	}
}

func TestApp_Show(t *testing.T) {
	f := newFixture(t)
	want := profileWithJar(t)
	f.profiles.EXPECT().Load(profilePath).Return(want, nil)

	got, err := f.app.Show(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApp_Show_LoadError(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().Load(profilePath).Return(domain.Profile{}, domain.ErrProfileParseFailed)

	_, err := f.app.Show(context.Background())
	assert.ErrorContains(t, err, domain.ErrProfileParseFailed.Error())
}

func TestApp_Configure_SavesResult(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().Load(profilePath).Return(domain.DefaultProfile(), nil)
	f.profiles.EXPECT().Save(profilePath, gomock.Any()).DoAndReturn(func(_ string, p domain.Profile) error {
		assert.Equal(t, []string{"--nogui", "--rev", "1.20.4"}, p.Args.Tokens())
		return nil
	})

	err := f.app.Configure(context.Background(), func(m *settings.Manager) error {
		return m.SetRev("1.20.4")
	})
	require.NoError(t, err)
}

func TestApp_Configure_FailureSavesNothing(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().Load(profilePath).Return(domain.DefaultProfile(), nil)

	err := f.app.Configure(context.Background(), func(m *settings.Manager) error {
		return m.SetWorkingDirectory("")
	})
	assert.ErrorContains(t, err, domain.ErrMissingValue.Error())
}

func TestApp_Reset(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().Save(profilePath, domain.DefaultProfile()).Return(nil)
	f.logger.EXPECT().Info("profile reset to defaults")

	require.NoError(t, f.app.Reset(context.Background()))
}

func TestApp_Launch_Linear(t *testing.T) {
	f := newFixture(t)
	profile := profileWithJar(t)

	f.profiles.EXPECT().Load(profilePath).Return(profile, nil)
	f.history.EXPECT().Last(gomock.Any()).Return(nil, nil)
	f.expectRecord()
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), profile.WorkingDir, gomock.Any()).
		DoAndReturn(emit(domain.ExitStatus{Code: 0}, "Loading BuildTools version", "Success!"))
	f.vertex.EXPECT().Complete(nil)
	f.history.EXPECT().Append(gomock.Any()).DoAndReturn(func(r domain.LaunchRecord) error {
		assert.Equal(t, profile.WorkingDir, r.Dir)
		assert.Equal(t, 0, r.ExitCode)
		assert.Equal(t, profile.Task().Fingerprint(), r.Fingerprint)
		assert.Equal(t, profile.Task().Command(), r.Command)
		assert.True(t, r.EndedAt.After(r.StartedAt))
		return nil
	})

	status, err := f.app.Launch(context.Background(), app.LaunchOptions{})
	require.NoError(t, err)
	assert.True(t, status.Success())
	assert.Equal(t, "Loading BuildTools version\nSuccess!\n", f.stdout.String())
	assert.Contains(t, f.stderr.String(), "java -jar "+profile.JarPath()+" --nogui --rev 1.21")
	assert.Contains(t, f.stderr.String(), "BuildTools finished")
}

func TestApp_Launch_NonZeroExit(t *testing.T) {
	tests := []struct {
		name        string
		failOnError bool
		wantErr     bool
	}{
		{"reported only", false, false},
		{"fail on error", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			profile := profileWithJar(t)

			f.profiles.EXPECT().Load(profilePath).Return(profile, nil)
			f.history.EXPECT().Last(gomock.Any()).Return(nil, nil)
			f.expectRecord()
			f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(emit(domain.ExitStatus{Code: 2}, "Error compiling"))
			f.vertex.EXPECT().Complete(gomock.Not(nil))
			f.history.EXPECT().Append(gomock.Any()).Return(nil)

			status, err := f.app.Launch(context.Background(), app.LaunchOptions{FailOnError: tt.failOnError})
			assert.Equal(t, 2, status.Code)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrBuildToolsFailed)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, f.stderr.String(), "exit status: 2")
		})
	}
}

func TestApp_Launch_SpawnFailure(t *testing.T) {
	f := newFixture(t)
	profile := profileWithJar(t)
	spawnErr := domain.ErrSpawnFailed

	f.profiles.EXPECT().Load(profilePath).Return(profile, nil)
	f.history.EXPECT().Last(gomock.Any()).Return(nil, nil)
	f.expectRecord()
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ExitStatus{Code: -1}, spawnErr)
	f.vertex.EXPECT().Complete(spawnErr)

	_, err := f.app.Launch(context.Background(), app.LaunchOptions{})
	assert.ErrorIs(t, err, domain.ErrSpawnFailed)
	assert.Empty(t, f.stdout.String())
}

func TestApp_Launch_JarMissing(t *testing.T) {
	f := newFixture(t)
	profile := domain.Profile{WorkingDir: t.TempDir(), JavaPath: "java"}
	f.profiles.EXPECT().Load(profilePath).Return(profile, nil)

	_, err := f.app.Launch(context.Background(), app.LaunchOptions{})
	assert.ErrorContains(t, err, domain.ErrJarNotFound.Error())
}

func TestApp_Launch_FetchesMissingJar(t *testing.T) {
	f := newFixture(t)
	profile := domain.Profile{WorkingDir: t.TempDir(), JavaPath: "java"}

	f.profiles.EXPECT().Load(profilePath).Return(profile, nil)
	f.logger.EXPECT().Info("BuildTools.jar is missing, downloading it")
	f.fetcher.EXPECT().Fetch(gomock.Any(), profile.JarPath()).Return(nil)
	f.history.EXPECT().Last(gomock.Any()).Return(nil, nil)
	f.expectRecord()
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(emit(domain.ExitStatus{Code: 0}))
	f.vertex.EXPECT().Complete(nil)
	f.history.EXPECT().Append(gomock.Any()).Return(nil)

	_, err := f.app.Launch(context.Background(), app.LaunchOptions{Fetch: true})
	require.NoError(t, err)
}

func TestApp_Launch_HistoryFailureOnlyWarns(t *testing.T) {
	f := newFixture(t)
	profile := profileWithJar(t)

	f.profiles.EXPECT().Load(profilePath).Return(profile, nil)
	f.history.EXPECT().Last(gomock.Any()).Return(nil, domain.ErrHistoryReadFailed)
	f.expectRecord()
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(emit(domain.ExitStatus{Code: 0}))
	f.vertex.EXPECT().Complete(nil)
	f.history.EXPECT().Append(gomock.Any()).Return(domain.ErrHistoryWriteFailed)
	f.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, domain.ErrHistoryWriteFailed.Error())
	})

	_, err := f.app.Launch(context.Background(), app.LaunchOptions{})
	require.NoError(t, err)
}

func TestApp_Launch_ReportsPreviousRun(t *testing.T) {
	f := newFixture(t)
	profile := profileWithJar(t)
	started := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	f.profiles.EXPECT().Load(profilePath).Return(profile, nil)
	f.history.EXPECT().Last(profile.Task().Fingerprint()).Return(&domain.LaunchRecord{
		StartedAt: started,
		EndedAt:   started.Add(90 * time.Second),
		ExitCode:  1,
	}, nil)
	f.logger.EXPECT().Info("this configuration last ran 2024-05-01 09:30:00 and ended with exit status: 1 after 1m30s")
	f.expectRecord()
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(emit(domain.ExitStatus{Code: 0}))
	f.vertex.EXPECT().Complete(nil)
	f.history.EXPECT().Append(gomock.Any()).Return(nil)

	_, err := f.app.Launch(context.Background(), app.LaunchOptions{})
	require.NoError(t, err)
}

func TestApp_Launch_TUI(t *testing.T) {
	f := newFixture(t)
	f.app.WithTeaOptions(
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
	profile := profileWithJar(t)

	f.profiles.EXPECT().Load(profilePath).Return(profile, nil)
	f.history.EXPECT().Last(gomock.Any()).Return(nil, nil)
	f.expectRecord()
	f.launcher.EXPECT().Launch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(emit(domain.ExitStatus{Code: 0}, "one", "two"))
	f.vertex.EXPECT().Complete(nil)
	f.history.EXPECT().Append(gomock.Any()).Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := f.app.Launch(context.Background(), app.LaunchOptions{Output: detector.ModeTUI})
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("launch with terminal UI did not finish")
	}
	assert.Empty(t, f.stdout.String(), "lines go to the terminal UI")
}

func TestApp_CheckRev_UsesProfileRev(t *testing.T) {
	f := newFixture(t)
	profile := profileWithJar(t)
	want := domain.VersionCheck{Current: "1.21", Latest: "1.21.4", Outdated: true}

	f.profiles.EXPECT().Load(profilePath).Return(profile, nil)
	f.versions.EXPECT().Check(gomock.Any(), "1.21").Return(want, nil)

	got, err := f.app.CheckRev(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApp_CheckRev_Explicit(t *testing.T) {
	f := newFixture(t)
	f.versions.EXPECT().Check(gomock.Any(), "1.8.8").Return(domain.VersionCheck{Current: "1.8.8"}, nil)

	got, err := f.app.CheckRev(context.Background(), "1.8.8")
	require.NoError(t, err)
	assert.Equal(t, "1.8.8", got.Current)
}

func TestApp_Versions(t *testing.T) {
	f := newFixture(t)
	f.versions.EXPECT().Versions(gomock.Any()).Return([]string{"1.21", "1.20.4"}, nil)

	got, err := f.app.Versions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1.21", "1.20.4"}, got)
}

func TestApp_FetchJar(t *testing.T) {
	f := newFixture(t)
	profile := domain.Profile{WorkingDir: "/work", JavaPath: "java"}

	f.profiles.EXPECT().Load(profilePath).Return(profile, nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), filepath.Join("/work", domain.JarFileName)).Return(nil)

	dest, err := f.app.FetchJar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/work", domain.JarFileName), dest)
}

func TestApp_FetchJar_Error(t *testing.T) {
	f := newFixture(t)
	f.profiles.EXPECT().Load(profilePath).Return(domain.DefaultProfile(), nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(domain.ErrJarFetchFailed)

	_, err := f.app.FetchJar(context.Background())
	assert.ErrorIs(t, err, domain.ErrJarFetchFailed)
}

func TestApp_History(t *testing.T) {
	f := newFixture(t)
	records := []domain.LaunchRecord{{ID: "b"}, {ID: "a"}}
	f.history.EXPECT().List(5).Return(records, nil)

	got, err := f.app.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestApp_CheckUpdate_DevBuild(t *testing.T) {
	f := newFixture(t)

	got, err := f.app.CheckUpdate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.VersionCheck{Current: "dev"}, got)
}

func TestApp_Close(t *testing.T) {
	f := newFixture(t)
	f.telemetry.EXPECT().Close().Return(nil)

	require.NoError(t, f.app.Close())
}
