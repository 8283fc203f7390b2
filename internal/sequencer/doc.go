// Package sequencer implements the container startup sequence: prepare the
// application log directory, run the optional pre-start steps, and replace
// the current process image with the configured server command.
//
// The sequence is strictly ordered and fail-fast: directory creation →
// ownership → permissions → pre-start steps → exec. Any failure aborts
// startup; restart-on-failure is the orchestrator's job, not ours. The
// final step never returns on success — once execve succeeds the server
// inherits the PID and receives OS signals directly.
package sequencer
