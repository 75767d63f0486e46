package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileEnv overrides the location of the persistent log file. Setting it
// to "-" disables the file sink.
const LogFileEnv = "STAU_LOG_FILE"

// Options controls where log events go.
type Options struct {
	Verbosity int
	// Console receives human readable events. Defaults to os.Stderr.
	Console io.Writer
	// LogFile is the JSON log sink. Empty means LogFilePath().
	LogFile string
	NoColor bool
}

// LevelFor maps the -v count onto a zerolog level.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger from a verbosity count, logging
// to stderr and to the state log file.
func SetupLogger(verbosity int) {
	Setup(Options{
		Verbosity: verbosity,
		NoColor:   os.Getenv("NO_COLOR") != "",
	})
}

// Setup installs the global logger. A log file that cannot be opened is
// reported once on the console and otherwise ignored.
func Setup(opts Options) {
	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	sinks := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}}

	path := opts.LogFile
	if path == "" {
		path = LogFilePath()
	}
	var fileErr error
	if path != "-" {
		var f *os.File
		if f, fileErr = openLogFile(path); fileErr == nil {
			sinks = append(sinks, f)
		}
	}

	ctx := zerolog.New(io.MultiWriter(sinks...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("log file unavailable, console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", path).Msg("logger ready")
}

// GetLogger returns a logger tagged with a component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath resolves the persistent log file: $STAU_LOG_FILE, then
// $XDG_STATE_HOME/stau/stau.log, then ~/.local/state/stau/stau.log.
func LogFilePath() string {
	if p := os.Getenv(LogFileEnv); p != "" {
		return p
	}
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "stau.log"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "stau", "stau.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// LogOperationStart logs the start of an operation and returns a func that
// logs its completion with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("operation started")
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("operation completed")
	}
}
