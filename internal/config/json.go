package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags and the
// [Duration]/[FileMode] wrappers so values like "30s" and "0755" can be
// written as strings in the config file.
type StructuredJSONConfig struct {
	Prepare struct {
		LogDir      string   `json:"log_dir"`
		LogDirMode  FileMode `json:"log_dir_mode"`
		Owner       string   `json:"owner"`
		Group       string   `json:"group"`
		StrictOwner bool     `json:"strict_owner"`
	} `json:"prepare,omitempty"`

	Server struct {
		Command     string `json:"command"`
		AppTarget   string `json:"app_target"`
		BindAddress string `json:"bind_address"`
		Workers     int    `json:"workers"`
		Threads     int    `json:"threads"`
		LogLevel    string `json:"log_level"`
		AccessLog   string `json:"access_log"`
		ErrorLog    string `json:"error_log"`
		Preload     bool   `json:"preload"`
	} `json:"server,omitempty"`

	Preinit struct {
		Command        string   `json:"command"`
		CommandTimeout Duration `json:"command_timeout"`
		WaitURL        string   `json:"wait_url"`
		ProbeAttempts  int      `json:"probe_attempts"`
		ProbeInterval  Duration `json:"probe_interval"`
		ProbeTimeout   Duration `json:"probe_timeout"`
	} `json:"preinit,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Prepare: Prepare{
			LogDir:      jsonCfg.Prepare.LogDir,
			LogDirMode:  jsonCfg.Prepare.LogDirMode,
			Owner:       jsonCfg.Prepare.Owner,
			Group:       jsonCfg.Prepare.Group,
			StrictOwner: jsonCfg.Prepare.StrictOwner,
		},
		Server: Server{
			Command:     jsonCfg.Server.Command,
			AppTarget:   jsonCfg.Server.AppTarget,
			BindAddress: jsonCfg.Server.BindAddress,
			Workers:     jsonCfg.Server.Workers,
			Threads:     jsonCfg.Server.Threads,
			LogLevel:    jsonCfg.Server.LogLevel,
			AccessLog:   jsonCfg.Server.AccessLog,
			ErrorLog:    jsonCfg.Server.ErrorLog,
			Preload:     jsonCfg.Server.Preload,
		},
		Preinit: Preinit{
			Command:        jsonCfg.Preinit.Command,
			CommandTimeout: time.Duration(jsonCfg.Preinit.CommandTimeout),
			WaitURL:        jsonCfg.Preinit.WaitURL,
			ProbeAttempts:  jsonCfg.Preinit.ProbeAttempts,
			ProbeInterval:  time.Duration(jsonCfg.Preinit.ProbeInterval),
			ProbeTimeout:   time.Duration(jsonCfg.Preinit.ProbeTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
