package domain

import "path/filepath"

// Profile is the persisted launcher configuration.
type Profile struct {
	// WorkingDir is where BuildTools runs and where BuildTools.jar lives.
	WorkingDir string
	// JavaPath is the java executable; empty means DefaultJava.
	JavaPath string
	// Args are the BuildTools arguments in launch order.
	Args ArgumentSet
}

// DefaultProfile returns the configuration of a fresh install: nogui in the temp working dir.
func DefaultProfile() Profile {
	return Profile{
		WorkingDir: DefaultWorkDir(),
		JavaPath:   DefaultJava,
		Args:       NewArgumentSet(NoGui),
	}
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() Profile {
	return Profile{
		WorkingDir: p.WorkingDir,
		JavaPath:   p.JavaPath,
		Args:       p.Args.Clone(),
	}
}

// JarPath returns the location of BuildTools.jar inside the working directory.
func (p *Profile) JarPath() string {
	return filepath.Join(p.WorkingDir, JarFileName)
}

// Task builds a launch task from the profile.
func (p *Profile) Task() *Task {
	return NewTask(p.JavaPath, p.JarPath(), p.Args)
}
