package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration options
type Config struct {
	// Level is the minimum log level to output
	Level string

	// Format is the output format (json, console)
	Format string

	// Output is where to write logs (stderr, stdout, discard, or a file path)
	Output string
}

// DefaultConfig logs to a file, since the terminal belongs to the browser UI
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
		Output: "puppetgallery.log",
	}
}

// New creates a logger from configuration. The returned closer releases the log
// file, if one was opened.
func New(cfg Config) (zerolog.Logger, io.Closer) {
	out, closer := openOutput(cfg.Output)

	var w io.Writer = out
	if strings.EqualFold(cfg.Format, "console") {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: true}
	}

	logger := zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()
	return logger, closer
}

// ParseLevel parses a log level string, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "off", "none":
		return zerolog.Disabled
	}
	if l, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
		return l
	}
	return zerolog.InfoLevel
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openOutput(output string) (io.Writer, io.Closer) {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout, nopCloser{}
	case "stderr":
		return os.Stderr, nopCloser{}
	case "", "discard", "none":
		return io.Discard, nopCloser{}
	}

	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// Fall back to stderr rather than losing the session
		return os.Stderr, nopCloser{}
	}
	return file, file
}
