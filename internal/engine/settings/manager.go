// Package settings serializes every change to the launcher profile.
package settings

import (
	"strings"
	"sync"

	"go.trai.ch/btl/internal/core/domain"
	"go.trai.ch/zerr"
)

// Manager owns one Profile. Every read-modify-write happens under a single lock,
// so concurrent callers never lose updates.
type Manager struct {
	mu      sync.Mutex
	profile domain.Profile
}

// NewManager creates a Manager holding a copy of p.
func NewManager(p domain.Profile) *Manager {
	return &Manager{profile: p.Clone()}
}

// Replace swaps the held profile for a copy of p.
func (m *Manager) Replace(p domain.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = p.Clone()
}

// Snapshot returns a copy of the current profile.
func (m *Manager) Snapshot() domain.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile.Clone()
}

// Task builds a launch task from a snapshot of the profile.
func (m *Manager) Task() *domain.Task {
	p := m.Snapshot()
	return p.Task()
}

// Apply runs fn on the profile inside the critical section.
// If fn fails, the profile is left as it was.
func (m *Manager) Apply(fn func(p *domain.Profile) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.profile.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	m.profile = next
	return nil
}

// Reset restores the default profile.
func (m *Manager) Reset() {
	m.Replace(domain.DefaultProfile())
}

// SetFlag enables or disables a boolean argument.
func (m *Manager) SetFlag(kind domain.Kind, enabled bool) error {
	if !kind.IsBoolean() {
		return zerr.With(domain.ErrNotABooleanArgument, "argument", kind.String())
	}
	return m.Apply(func(p *domain.Profile) error {
		p.Args.SetFlag(domain.Flag(kind), enabled)
		return nil
	})
}

// SetRev sets the revision to build.
func (m *Manager) SetRev(rev string) error {
	return m.setValue(rev, func(v string) domain.Argument { return domain.Rev(v) })
}

// SetOutputDir sets where BuildTools places the built jars.
func (m *Manager) SetOutputDir(dir string) error {
	return m.setValue(dir, func(v string) domain.Argument { return domain.OutputDir(v) })
}

// SetFinalName sets the file name of the built server jar.
func (m *Manager) SetFinalName(name string) error {
	return m.setValue(name, func(v string) domain.Argument { return domain.FinalName(v) })
}

// SetPullRequest builds a pull request of repo instead of a release.
// The repository is stored as given.
func (m *Manager) SetPullRequest(repo string, id uint16) error {
	return m.Apply(func(p *domain.Profile) error {
		p.Args.Set(domain.PullRequest{Repository: repo, ID: id})
		return nil
	})
}

// SetCompileTargets replaces the compile list. Unknown names become NONE.
func (m *Manager) SetCompileTargets(raw []string) error {
	return m.Apply(func(p *domain.Profile) error {
		p.Args.SetCompileTargets(raw)
		return nil
	})
}

// Unset removes every argument of kind.
func (m *Manager) Unset(kind domain.Kind) error {
	return m.Apply(func(p *domain.Profile) error {
		p.Args.Remove(kind)
		return nil
	})
}

// SetWorkingDirectory sets where BuildTools runs.
func (m *Manager) SetWorkingDirectory(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return zerr.With(domain.ErrMissingValue, "setting", "workdir")
	}
	return m.Apply(func(p *domain.Profile) error {
		p.WorkingDir = dir
		return nil
	})
}

// SetJavaPath sets the java executable. An empty path restores the default.
func (m *Manager) SetJavaPath(path string) error {
	if strings.TrimSpace(path) == "" {
		path = domain.DefaultJava
	}
	return m.Apply(func(p *domain.Profile) error {
		p.JavaPath = path
		return nil
	})
}

// setValue stores value verbatim, including empty or space-padded values.
func (m *Manager) setValue(value string, build func(string) domain.Argument) error {
	return m.Apply(func(p *domain.Profile) error {
		p.Args.Set(build(value))
		return nil
	})
}
