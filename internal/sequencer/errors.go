package sequencer

import "errors"

// Sentinel errors returned by the startup sequence to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrNotADirectory is returned when the configured log path already
	// exists but is not a directory. The sequence aborts before any
	// ownership or permission change is attempted.
	ErrNotADirectory = errors.New("log path exists and is not a directory")

	// ErrDirectoryPrepare is returned when creating the log directory (or
	// one of its parents) fails, e.g. due to missing permissions.
	ErrDirectoryPrepare = errors.New("failed to create log directory")

	// ErrOwnershipChange is returned when the strict ownership step cannot
	// resolve the configured user/group or cannot apply the chown.
	ErrOwnershipChange = errors.New("failed to change log directory ownership")

	// ErrModeChange is returned when applying the configured mode bits to
	// the log directory fails, e.g. on filesystems without POSIX
	// permission support.
	ErrModeChange = errors.New("failed to change log directory mode")

	// ErrPreinitCommand is returned when the optional pre-start command
	// exits non-zero or exceeds its timeout.
	ErrPreinitCommand = errors.New("pre-start command failed")

	// ErrNotReady is returned when the readiness wait exhausts its probe
	// budget without the endpoint reporting ready.
	ErrNotReady = errors.New("readiness wait exhausted")

	// ErrCommandNotFound is returned when the server command cannot be
	// resolved on PATH. The process image is never replaced in this case.
	ErrCommandNotFound = errors.New("server command not found")

	// ErrExecFailed is returned when execve itself fails after the command
	// was resolved, e.g. the file is not executable.
	ErrExecFailed = errors.New("failed to replace process image")
)
