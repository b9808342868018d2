package domain

import (
	"strconv"
	"time"
)

// ExitStatus is the terminal status of a BuildTools process.
// A non-zero code is information for the caller, not a launcher failure.
type ExitStatus struct {
	// Code is the process exit code, or -1 when the process was terminated by a signal.
	Code int
}

// Success reports whether the process exited with code 0.
func (s ExitStatus) Success() bool {
	return s.Code == 0
}

// String renders the status the way the launch report prints it.
func (s ExitStatus) String() string {
	if s.Code < 0 {
		return "signal"
	}
	return "exit status: " + strconv.Itoa(s.Code)
}

// LaunchRecord is one entry of the launch history.
type LaunchRecord struct {
	ID          string    `json:"id,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	Command     []string  `json:"command,omitzero"`
	Dir         string    `json:"dir,omitzero"`
	StartedAt   time.Time `json:"started_at,omitzero"`
	EndedAt     time.Time `json:"ended_at,omitzero"`
	ExitCode    int       `json:"exit_code"`
}

// Duration returns how long the launch ran.
func (r LaunchRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// VersionCheck compares a version against the newest one available.
type VersionCheck struct {
	Current  string
	Latest   string
	Outdated bool
}
