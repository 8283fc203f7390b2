package sequencer

import (
	"strconv"

	"github.com/MKhiriev/go-entrypoint/internal/config"
)

// BuildArgs assembles the replacement command line for the server process
// manager from the configured settings. The returned slice is a full argv:
// the command name at index 0, the application target last.
//
// Optional flags are appended only when their value is set: empty access or
// error log destinations omit the corresponding flag, and --preload appears
// only when enabled.
func BuildArgs(srv config.Server) []string {
	args := []string{
		srv.Command,
		"-b", srv.BindAddress,
		"-w", strconv.Itoa(srv.Workers),
		"--threads", strconv.Itoa(srv.Threads),
		"--log-level", srv.LogLevel,
	}

	if srv.AccessLog != "" {
		args = append(args, "--access-logfile", srv.AccessLog)
	}

	if srv.ErrorLog != "" {
		args = append(args, "--error-logfile", srv.ErrorLog)
	}

	if srv.Preload {
		args = append(args, "--preload")
	}

	return append(args, srv.AppTarget)
}
