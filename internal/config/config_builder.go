package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in defaults as the lowest-priority source:
// merging fills only fields that every earlier source left at zero.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		Prepare: Prepare{
			LogDir:     DefaultLogDir,
			LogDirMode: DefaultLogDirMode,
		},
		Server: Server{
			Command:     DefaultCommand,
			AppTarget:   DefaultAppTarget,
			BindAddress: DefaultBindAddress,
			Workers:     DefaultWorkers,
			Threads:     DefaultThreads,
			LogLevel:    DefaultLogLevel,
			AccessLog:   DefaultAccessLog,
			ErrorLog:    DefaultErrorLog,
		},
		Preinit: Preinit{
			CommandTimeout: DefaultCommandTimeout,
			ProbeAttempts:  DefaultProbeAttempts,
			ProbeInterval:  DefaultProbeInterval,
			ProbeTimeout:   DefaultProbeTimeout,
		},
	})

	return b
}
