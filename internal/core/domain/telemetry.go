package domain

// LaunchState represents the lifecycle state of a BuildTools launch as shown to the user.
type LaunchState string

const (
	// LaunchStatePending indicates the process has not been started yet.
	LaunchStatePending LaunchState = "pending"
	// LaunchStateRunning indicates the process is running and output is being relayed.
	LaunchStateRunning LaunchState = "running"
	// LaunchStateCompleted indicates the process exited with code 0.
	LaunchStateCompleted LaunchState = "completed"
	// LaunchStateFailed indicates the process exited non-zero or could not be started.
	LaunchStateFailed LaunchState = "failed"
)

// IsTerminal checks if a state is final (Completed or Failed).
func (s LaunchState) IsTerminal() bool {
	return s == LaunchStateCompleted || s == LaunchStateFailed
}

// StateFor maps an exit status to its terminal launch state.
func StateFor(status ExitStatus) LaunchState {
	if status.Success() {
		return LaunchStateCompleted
	}
	return LaunchStateFailed
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
