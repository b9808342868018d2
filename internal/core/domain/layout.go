package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the directory under the user config dir holding btl state.
	AppDirName = "btl"

	// ProfileFileName is the name of the default profile file.
	ProfileFileName = "profile.yaml"

	// HistoryFileName is the name of the launch history file.
	HistoryFileName = "history.json"

	// JarFileName is the file name BuildTools is stored under in the working directory.
	JarFileName = "BuildTools.jar"

	// DefaultWorkDirName is created under the temp dir when no working directory is configured.
	DefaultWorkDirName = "buildtools-gui"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// StateDir returns the directory btl keeps its profile and history in.
// It falls back to the temp dir when the user config dir is unknown.
func StateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, AppDirName)
}

// DefaultProfilePath returns the path of the default profile file.
func DefaultProfilePath() string {
	return filepath.Join(StateDir(), ProfileFileName)
}

// DefaultHistoryPath returns the path of the launch history file.
func DefaultHistoryPath() string {
	return filepath.Join(StateDir(), HistoryFileName)
}

// DefaultWorkDir returns the working directory used by a fresh profile.
func DefaultWorkDir() string {
	return filepath.Join(os.TempDir(), DefaultWorkDirName)
}
