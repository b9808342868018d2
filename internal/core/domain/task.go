package domain

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultJava is the java executable used when a profile does not name one.
const DefaultJava = "java"

// Task bundles the BuildTools jar with the arguments for one launch.
// It is immutable once constructed.
type Task struct {
	java    string
	jarPath string
	args    ArgumentSet
}

// NewTask snapshots args so later changes to the caller's set do not leak in.
// An empty java falls back to DefaultJava.
func NewTask(java, jarPath string, args ArgumentSet) *Task {
	if java == "" {
		java = DefaultJava
	}
	return &Task{
		java:    java,
		jarPath: jarPath,
		args:    args.Clone(),
	}
}

// Java returns the java executable.
func (t *Task) Java() string { return t.java }

// JarPath returns the path to BuildTools.jar.
func (t *Task) JarPath() string { return t.jarPath }

// Args returns a copy of the task's arguments.
func (t *Task) Args() ArgumentSet { return t.args.Clone() }

// Command returns the full invocation: java -jar <jar> <tokens...>.
func (t *Task) Command() []string {
	cmd := []string{t.java, "-jar", t.jarPath}
	return append(cmd, t.args.Tokens()...)
}

// Invocation pairs the task's command with the directory to run it in.
func (t *Task) Invocation(dir string) Invocation {
	cmd := t.Command()
	return Invocation{
		Name: cmd[0],
		Args: cmd[1:],
		Dir:  dir,
	}
}

// Fingerprint identifies the command line, independent of the working directory.
func (t *Task) Fingerprint() string {
	sum := xxhash.Sum64String(strings.Join(t.Command(), "\x00"))
	return strconv.FormatUint(sum, 16)
}

// Invocation is a resolved process launch plan.
type Invocation struct {
	Name string
	Args []string
	Dir  string
}

// String renders the invocation as a single shell-like line.
func (i Invocation) String() string {
	return strings.Join(append([]string{i.Name}, i.Args...), " ")
}
