package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-b bind address in format [host]:[port]
//	-command server executable name
//	-app application target in format module:callable
//	-w worker process count
//	-threads threads per worker
//	-log-level server log verbosity
//	-access-logfile access log destination ("-" for stdout)
//	-error-logfile error log destination ("-" for stderr)
//	-preload load the application before forking workers
//	-log-dir log directory path
//	-log-dir-mode log directory mode in octal (e.g. "0755")
//	-owner/-group log directory ownership
//	-strict-owner abort startup when chown fails
//	-preinit-command pre-start command line
//	-preinit-timeout pre-start command timeout (e.g. "30s")
//	-wait-url URL probed for readiness before hand-off
//	-probe-attempts/-probe-interval/-probe-timeout readiness probe budget
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var bindAddress NetAddress
	var serverCommand string
	var appTarget string
	var workers int
	var threads int
	var logLevel string
	var accessLog string
	var errorLog string
	var preload bool
	var logDir string
	var logDirMode FileMode
	var owner string
	var group string
	var strictOwner bool
	var preinitCommand string
	var preinitTimeout time.Duration
	var waitURL string
	var probeAttempts int
	var probeInterval time.Duration
	var probeTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&bindAddress, "b", "Bind address host:port")
	flag.StringVar(&serverCommand, "command", "", "Server executable name")
	flag.StringVar(&appTarget, "app", "", "Application target module:callable")
	flag.IntVar(&workers, "w", 0, "Worker process count")
	flag.IntVar(&threads, "threads", 0, "Threads per worker")
	flag.StringVar(&logLevel, "log-level", "", "Server log verbosity")
	flag.StringVar(&accessLog, "access-logfile", "", "Access log destination")
	flag.StringVar(&errorLog, "error-logfile", "", "Error log destination")
	flag.BoolVar(&preload, "preload", false, "Load the application before forking workers")
	flag.StringVar(&logDir, "log-dir", "", "Log directory path")
	flag.Var(&logDirMode, "log-dir-mode", "Log directory mode in octal (e.g. 0755)")
	flag.StringVar(&owner, "owner", "", "Log directory owner user")
	flag.StringVar(&group, "group", "", "Log directory owner group")
	flag.BoolVar(&strictOwner, "strict-owner", false, "Abort startup when chown fails")
	flag.StringVar(&preinitCommand, "preinit-command", "", "Pre-start command line")
	flag.DurationVar(&preinitTimeout, "preinit-timeout", 0, "Pre-start command timeout (e.g. 30s)")
	flag.StringVar(&waitURL, "wait-url", "", "URL probed for readiness before hand-off")
	flag.IntVar(&probeAttempts, "probe-attempts", 0, "Max readiness probes before abort")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Pause between readiness probes (e.g. 2s)")
	flag.DurationVar(&probeTimeout, "probe-timeout", 0, "Single readiness probe timeout (e.g. 5s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Prepare: Prepare{
			LogDir:      logDir,
			LogDirMode:  logDirMode,
			Owner:       owner,
			Group:       group,
			StrictOwner: strictOwner,
		},
		Server: Server{
			Command:     serverCommand,
			AppTarget:   appTarget,
			BindAddress: bindAddress.String(),
			Workers:     workers,
			Threads:     threads,
			LogLevel:    logLevel,
			AccessLog:   accessLog,
			ErrorLog:    errorLog,
			Preload:     preload,
		},
		Preinit: Preinit{
			Command:        preinitCommand,
			CommandTimeout: preinitTimeout,
			WaitURL:        waitURL,
			ProbeAttempts:  probeAttempts,
			ProbeInterval:  probeInterval,
			ProbeTimeout:   probeTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, with IPv6
// hosts bracketed. If neither Host nor Port are set, it returns an empty
// string so the merge step treats the field as unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// IPv6 literals use the bracketed form (e.g. "[::]:8000"). It validates the
// port range, checks IP correctness unless host is "localhost", and returns
// an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
