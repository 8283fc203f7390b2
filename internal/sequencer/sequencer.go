// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sequencer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/go-entrypoint/internal/config"
	"github.com/MKhiriev/go-entrypoint/internal/logger"
)

// Sequencer runs the container startup sequence described in the package
// documentation. Construct it with [New] and call [Sequencer.Run] exactly
// once; on success Run never returns.
type Sequencer struct {
	cfg    *config.StructuredConfig
	log    *logger.Logger
	exec   Executor
	runner CommandRunner
	prober Prober
}

// New constructs a *Sequencer wired to the real operating system: execve
// for the hand-off, os/exec for the pre-start command, and an HTTP client
// for the readiness wait.
func New(cfg *config.StructuredConfig, log *logger.Logger) *Sequencer {
	return &Sequencer{
		cfg:    cfg,
		log:    log,
		exec:   NewSystemExecutor(),
		runner: NewSystemCommandRunner(),
		prober: NewHTTPProber(cfg.Preinit.ProbeTimeout),
	}
}

// Run executes the startup sequence: prepare the log directory, run the
// optional pre-start steps, then replace the process image with the server
// command. Every step is fail-fast; the first error aborts the sequence.
//
// ctx bounds only the pre-start steps. The final hand-off has no
// cancellation semantics — once execve succeeds this process no longer
// exists.
func (s *Sequencer) Run(ctx context.Context) error {
	if err := s.prepareLogDir(); err != nil {
		return err
	}

	if err := s.runPreinit(ctx); err != nil {
		return err
	}

	return s.replaceProcess()
}

// prepareLogDir creates the log directory, applies ownership under the
// strict variant, and sets the configured mode bits.
func (s *Sequencer) prepareLogDir() error {
	dir := s.cfg.Prepare.LogDir
	mode := s.cfg.Prepare.LogDirMode.FileMode()

	if err := EnsureDirectory(dir, mode); err != nil {
		return err
	}

	if s.cfg.Prepare.Owner != "" {
		if s.cfg.Prepare.StrictOwner {
			if err := ChangeOwnership(dir, s.cfg.Prepare.Owner, s.cfg.Prepare.Group); err != nil {
				return err
			}
		} else {
			// Lenient variant: unprivileged runs cannot chown, so the
			// step is skipped rather than attempted.
			s.log.Debug().
				Str("dir", dir).
				Str("owner", s.cfg.Prepare.Owner).
				Msg("ownership step skipped (strict-owner disabled)")
		}
	}

	if err := ApplyMode(dir, mode); err != nil {
		return err
	}

	s.log.Info().
		Str("dir", dir).
		Str("mode", s.cfg.Prepare.LogDirMode.String()).
		Msg("log directory prepared")

	return nil
}

// runPreinit executes the optional pre-start steps in order: the command
// first, then the readiness wait. Both are no-ops when unconfigured.
func (s *Sequencer) runPreinit(ctx context.Context) error {
	if commandLine := s.cfg.Preinit.Command; commandLine != "" {
		fields := strings.Fields(commandLine)
		if len(fields) == 0 {
			return errors.Join(ErrPreinitCommand, errors.New("command is blank"))
		}

		commandCtx, cancel := context.WithTimeout(ctx, s.cfg.Preinit.CommandTimeout)
		defer cancel()

		s.log.Info().Str("command", commandLine).Msg("running pre-start command")
		if err := s.runner.Run(commandCtx, fields[0], fields[1:]...); err != nil {
			return errors.Join(ErrPreinitCommand, err)
		}
	}

	if s.cfg.Preinit.WaitURL != "" {
		return s.waitForReady(ctx)
	}

	return nil
}

// waitForReady probes the configured URL until it reports ready or the
// attempt budget is exhausted.
func (s *Sequencer) waitForReady(ctx context.Context) error {
	pre := s.cfg.Preinit

	for attempt := 1; attempt <= pre.ProbeAttempts; attempt++ {
		err := s.prober.Probe(ctx, pre.WaitURL)
		if err == nil {
			s.log.Info().Str("url", pre.WaitURL).Int("attempt", attempt).Msg("endpoint ready")
			return nil
		}

		s.log.Debug().
			Str("url", pre.WaitURL).
			Int("attempt", attempt).
			Err(err).
			Msg("endpoint not ready yet")

		if attempt < pre.ProbeAttempts {
			select {
			case <-ctx.Done():
				return errors.Join(ErrNotReady, ctx.Err())
			case <-time.After(pre.ProbeInterval):
			}
		}
	}

	return fmt.Errorf("%w: %s not ready after %d attempts", ErrNotReady, pre.WaitURL, pre.ProbeAttempts)
}

// replaceProcess resolves the server command on PATH and hands off via
// execve. On success this function never returns.
func (s *Sequencer) replaceProcess() error {
	path, err := s.exec.LookPath(s.cfg.Server.Command)
	if err != nil {
		return errors.Join(ErrCommandNotFound, err)
	}

	argv := BuildArgs(s.cfg.Server)
	s.log.Info().
		Str("path", path).
		Strs("argv", argv).
		Msg("replacing process image")

	if err := s.exec.Exec(path, argv, os.Environ()); err != nil {
		return errors.Join(ErrExecFailed, err)
	}

	// Unreachable with the real executor: execve replaced this process.
	return nil
}
