// Package app implements the application layer for btl.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/btl/internal/adapters/detector"
	"go.trai.ch/btl/internal/adapters/linear"
	"go.trai.ch/btl/internal/adapters/tui"
	"go.trai.ch/btl/internal/build"
	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/btl/internal/core/ports"
	"go.trai.ch/btl/internal/engine/settings"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	settings  *settings.Manager
	profiles  ports.ProfileStore
	launcher  ports.Launcher
	history   ports.HistoryStore
	versions  ports.VersionSource
	fetcher   ports.JarFetcher
	updates   ports.UpdateChecker
	telemetry ports.Telemetry
	logger    ports.Logger

	profilePath string
	stdout      io.Writer
	stderr      io.Writer
	teaOptions  []tea.ProgramOption
	detect      func() detector.OutputMode
	now         func() time.Time
}

// New creates a new App instance.
func New(
	manager *settings.Manager,
	profiles ports.ProfileStore,
	launcher ports.Launcher,
	history ports.HistoryStore,
	versions ports.VersionSource,
	fetcher ports.JarFetcher,
	updates ports.UpdateChecker,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		settings:    manager,
		profiles:    profiles,
		launcher:    launcher,
		history:     history,
		versions:    versions,
		fetcher:     fetcher,
		updates:     updates,
		telemetry:   telemetry,
		logger:      log,
		profilePath: domain.DefaultProfilePath(),
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		detect:      detector.DetectEnvironment,
		now:         time.Now,
	}
}

// UseProfile selects the profile file every command reads and writes.
// An empty path keeps the current one.
func (a *App) UseProfile(path string) {
	if path != "" {
		a.profilePath = path
	}
}

// ProfilePath returns the selected profile file.
func (a *App) ProfilePath() string {
	return a.profilePath
}

// WithOutput redirects launch output. Nil keeps the current writer.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	if stdout != nil {
		a.stdout = stdout
	}
	if stderr != nil {
		a.stderr = stderr
	}
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDetector replaces terminal detection for the auto output mode.
func (a *App) WithDetector(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// WithClock replaces the clock used for launch records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// load replaces the held profile with the one on disk.
func (a *App) load() error {
	profile, err := a.profiles.Load(a.profilePath)
	if err != nil {
		return zerr.With(err, "profile", a.profilePath)
	}
	a.settings.Replace(profile)
	return nil
}

func (a *App) save() error {
	if err := a.profiles.Save(a.profilePath, a.settings.Snapshot()); err != nil {
		return zerr.With(err, "profile", a.profilePath)
	}
	return nil
}

// Show returns the current profile.
func (a *App) Show(_ context.Context) (domain.Profile, error) {
	if err := a.load(); err != nil {
		return domain.Profile{}, err
	}
	return a.settings.Snapshot(), nil
}

// Configure applies fn to the profile and saves the result.
// Nothing is written when fn fails.
func (a *App) Configure(_ context.Context, fn func(m *settings.Manager) error) error {
	if err := a.load(); err != nil {
		return err
	}
	if err := fn(a.settings); err != nil {
		return err
	}
	return a.save()
}

// Reset restores the default profile and saves it.
func (a *App) Reset(_ context.Context) error {
	a.settings.Reset()
	if err := a.save(); err != nil {
		return err
	}
	a.logger.Info("profile reset to defaults")
	return nil
}

// LaunchOptions configuration for the Launch method.
type LaunchOptions struct {
	// Output selects how relayed lines are displayed.
	Output detector.OutputMode
	// KeepOpen leaves the terminal UI up after BuildTools exits.
	KeepOpen bool
	// FailOnError turns a non-zero exit into ErrBuildToolsFailed.
	FailOnError bool
	// Fetch downloads BuildTools.jar when it is missing.
	Fetch bool
}

// Launch runs BuildTools with the current profile and records the outcome.
// A non-zero exit is returned as a status; it is an error only with FailOnError.
func (a *App) Launch(ctx context.Context, opts LaunchOptions) (domain.ExitStatus, error) {
	failed := domain.ExitStatus{Code: -1}

	if err := a.load(); err != nil {
		return failed, err
	}
	profile := a.settings.Snapshot()
	if err := a.ensureJar(ctx, &profile, opts.Fetch); err != nil {
		return failed, err
	}

	task := profile.Task()
	fingerprint := task.Fingerprint()
	a.reportPrevious(fingerprint)

	ctx, vertex := a.telemetry.Record(ctx, fingerprint)
	started := a.now()

	var status domain.ExitStatus
	var err error
	if detector.Resolve(opts.Output, a.detect) == detector.ModeTUI {
		status, err = a.launchTUI(ctx, task, profile.WorkingDir, opts.KeepOpen)
	} else {
		status, err = a.launchLinear(ctx, task, profile.WorkingDir)
	}
	ended := a.now()

	if err != nil {
		vertex.Log(domain.LogLevelError, err.Error())
		vertex.Complete(err)
		return status, err
	}
	state := domain.StateFor(status)
	level := domain.LogLevelInfo
	if state == domain.LaunchStateFailed {
		level = domain.LogLevelWarn
	}
	vertex.Log(level, fmt.Sprintf("%s (%s)", state, status))
	vertex.Complete(statusError(status))

	record := domain.LaunchRecord{
		Fingerprint: fingerprint,
		Command:     task.Command(),
		Dir:         profile.WorkingDir,
		StartedAt:   started,
		EndedAt:     ended,
		ExitCode:    status.Code,
	}
	if err := a.history.Append(record); err != nil {
		a.logger.Warn(fmt.Sprintf("could not record launch: %v", err))
	}

	if opts.FailOnError && !status.Success() {
		return status, domain.ErrBuildToolsFailed
	}
	return status, nil
}

func (a *App) ensureJar(ctx context.Context, profile *domain.Profile, fetch bool) error {
	jar := profile.JarPath()
	_, err := os.Stat(jar)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return zerr.With(zerr.Wrap(err, "failed to inspect BuildTools.jar"), "path", jar)
	case !fetch:
		return zerr.With(domain.ErrJarNotFound, "path", jar)
	}

	a.logger.Info("BuildTools.jar is missing, downloading it")
	return a.fetcher.Fetch(ctx, jar)
}

func (a *App) reportPrevious(fingerprint string) {
	last, err := a.history.Last(fingerprint)
	if err != nil || last == nil {
		return
	}
	a.logger.Info(fmt.Sprintf("this configuration last ran %s and ended with %s after %s",
		last.StartedAt.Format(time.DateTime),
		domain.ExitStatus{Code: last.ExitCode},
		last.Duration().Round(time.Second),
	))
}

func (a *App) launchLinear(ctx context.Context, task *domain.Task, dir string) (domain.ExitStatus, error) {
	printer := linear.NewPrinter(a.stdout, a.stderr)
	printer.Begin(task.Invocation(dir).String())

	started := a.now()
	status, err := a.launcher.Launch(ctx, task, dir, printer)
	if err != nil {
		return status, err
	}
	printer.End(status, a.now().Sub(started))
	return status, nil
}

func (a *App) launchTUI(
	ctx context.Context,
	task *domain.Task,
	dir string,
	keepOpen bool,
) (domain.ExitStatus, error) {
	model := tui.NewModel(task.Invocation(dir).String())
	model.KeepOpen = keepOpen
	optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
	renderer := tui.NewRenderer(&model, optsTea...)

	var status domain.ExitStatus
	var launchErr error

	g := new(errgroup.Group)

	// Renderer Routine
	g.Go(func() error {
		renderer.Start()
		if err := renderer.Wait(); err != nil {
			return zerr.Wrap(err, "terminal UI failed")
		}
		return nil
	})

	// Launch Routine
	g.Go(func() error {
		status, launchErr = a.launcher.Launch(ctx, task, dir, renderer)
		renderer.Finish(status, launchErr)
		return nil
	})

	uiErr := g.Wait()
	if launchErr != nil {
		return status, launchErr
	}
	if uiErr != nil {
		// BuildTools ran to completion, so its status is still valid.
		a.logger.Warn(uiErr.Error())
	}
	return status, nil
}

func statusError(status domain.ExitStatus) error {
	if status.Success() {
		return nil
	}
	return zerr.With(domain.ErrBuildToolsFailed, "exit_code", status.Code)
}

// Versions returns the Spigot versions BuildTools can build, newest first.
func (a *App) Versions(ctx context.Context) ([]string, error) {
	return a.versions.Versions(ctx)
}

// CheckRev reports whether rev is behind the newest version.
// An empty rev checks the revision configured in the profile.
func (a *App) CheckRev(ctx context.Context, rev string) (domain.VersionCheck, error) {
	if rev == "" {
		if err := a.load(); err != nil {
			return domain.VersionCheck{}, err
		}
		profile := a.settings.Snapshot()
		if arg, ok := profile.Args.Get(domain.KindRev); ok {
			rev = string(arg.(domain.Rev))
		}
	}
	return a.versions.Check(ctx, rev)
}

// FetchJar downloads BuildTools.jar into the profile's working directory
// and returns where it was written.
func (a *App) FetchJar(ctx context.Context) (string, error) {
	if err := a.load(); err != nil {
		return "", err
	}
	profile := a.settings.Snapshot()
	dest := profile.JarPath()
	if err := a.fetcher.Fetch(ctx, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// History returns up to limit launch records, newest first.
func (a *App) History(_ context.Context, limit int) ([]domain.LaunchRecord, error) {
	return a.history.List(limit)
}

// CheckUpdate reports whether a newer btl release exists.
// Development builds are never reported as outdated.
func (a *App) CheckUpdate(ctx context.Context) (domain.VersionCheck, error) {
	if !build.IsRelease() {
		return domain.VersionCheck{Current: build.Version}, nil
	}
	return a.updates.Check(ctx, build.Version)
}

// Close releases the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}
