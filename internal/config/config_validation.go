// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants before the sequencer uses it.
//
// Returns nil if the configuration is valid, or one of the sentinel
// validation errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Prepare.LogDir == "" || cfg.Prepare.LogDirMode == 0 {
		return ErrInvalidPrepareConfigs
	}

	if cfg.Server.Command == "" || cfg.Server.AppTarget == "" || cfg.Server.BindAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.Workers < 1 || cfg.Server.Threads < 1 {
		return ErrInvalidServerConfigs
	}

	if cfg.Preinit.Command != "" && cfg.Preinit.CommandTimeout <= 0 {
		return ErrInvalidPreinitConfigs
	}

	if cfg.Preinit.WaitURL != "" {
		if cfg.Preinit.ProbeAttempts < 1 || cfg.Preinit.ProbeInterval <= 0 || cfg.Preinit.ProbeTimeout <= 0 {
			return ErrInvalidPreinitConfigs
		}
	}

	return nil
}
