package sequencer

import (
	"context"
	"os"
	"os/exec"
	"syscall"
)

// systemExecutor is the production [Executor]: it resolves commands with
// exec.LookPath and replaces the process image with syscall.Exec.
//
// os/exec cannot serve here — it forks a child, which would leave this
// binary as PID 1 relaying signals. execve keeps the PID and hands signal
// delivery to the server directly.
type systemExecutor struct{}

// NewSystemExecutor constructs the [Executor] backed by the operating
// system's execve.
func NewSystemExecutor() Executor {
	return &systemExecutor{}
}

func (e *systemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (e *systemExecutor) Exec(argv0 string, argv []string, env []string) error {
	return syscall.Exec(argv0, argv, env)
}

// systemCommandRunner is the production [CommandRunner]: it runs the
// pre-start command as a child process with inherited standard streams so
// its output lands in the container log.
type systemCommandRunner struct{}

// NewSystemCommandRunner constructs the [CommandRunner] backed by os/exec.
func NewSystemCommandRunner() CommandRunner {
	return &systemCommandRunner{}
}

func (r *systemCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
