package sequencer

import "context"

// Executor abstracts process image replacement so the final hand-off step
// can be verified in tests without actually exec'ing.
//
// Implementations are expected to mirror execve semantics: a successful
// Exec never returns because the calling process ceases to exist.
type Executor interface {
	// LookPath resolves the named command on PATH and returns its
	// absolute path.
	LookPath(file string) (string, error)

	// Exec replaces the current process image with the program at argv0,
	// passing argv (including the program name at index 0) and env.
	Exec(argv0 string, argv []string, env []string) error
}

// CommandRunner runs the optional pre-start command to completion.
type CommandRunner interface {
	// Run executes the named command with args, honoring ctx for
	// cancellation and deadline. Returns an error on non-zero exit.
	Run(ctx context.Context, name string, args ...string) error
}

// Prober checks whether an HTTP endpoint reports ready.
type Prober interface {
	// Probe performs a single readiness check against url.
	// Returns nil when the endpoint is considered ready.
	Probe(ctx context.Context, url string) error
}
