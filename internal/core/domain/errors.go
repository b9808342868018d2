package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownArgument is returned when an argument name matches no BuildTools flag.
	ErrUnknownArgument = zerr.New("unknown argument")

	// ErrNotABooleanArgument is returned when a payload-carrying argument is toggled like a flag.
	ErrNotABooleanArgument = zerr.New("argument takes a value and cannot be toggled")

	// ErrInvalidPullRequestID is returned when a pull request number does not fit in 16 bits.
	ErrInvalidPullRequestID = zerr.New("invalid pull request id")

	// ErrMissingValue is returned when a value-carrying argument is set without a value.
	ErrMissingValue = zerr.New("missing value")

	// ErrSpawnFailed is returned when the BuildTools process cannot be started.
	ErrSpawnFailed = zerr.New("failed to start process")

	// ErrBuildToolsFailed is returned when BuildTools exits non-zero and the caller asked to fail on it.
	ErrBuildToolsFailed = zerr.New("buildtools exited with a non-zero status")

	// ErrJarNotFound is returned when BuildTools.jar is missing from the working directory.
	ErrJarNotFound = zerr.New("BuildTools.jar not found, run 'btl fetch' first")

	// ErrProfileReadFailed is returned when the profile file cannot be read.
	ErrProfileReadFailed = zerr.New("failed to read profile")

	// ErrProfileParseFailed is returned when the profile file cannot be parsed.
	ErrProfileParseFailed = zerr.New("failed to parse profile")

	// ErrProfileWriteFailed is returned when the profile file cannot be written.
	ErrProfileWriteFailed = zerr.New("failed to write profile")

	// ErrHistoryReadFailed is returned when the launch history cannot be read.
	ErrHistoryReadFailed = zerr.New("failed to read launch history")

	// ErrHistoryWriteFailed is returned when the launch history cannot be written.
	ErrHistoryWriteFailed = zerr.New("failed to write launch history")

	// ErrVersionFetchFailed is returned when the versions index cannot be fetched.
	ErrVersionFetchFailed = zerr.New("failed to fetch available versions")

	// ErrJarFetchFailed is returned when BuildTools.jar cannot be downloaded.
	ErrJarFetchFailed = zerr.New("failed to download BuildTools.jar")

	// ErrUpdateCheckFailed is returned when the latest btl release cannot be determined.
	ErrUpdateCheckFailed = zerr.New("failed to check for updates")
)
