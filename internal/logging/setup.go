package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"
)

// Options configures Setup.
type Options struct {
	Level   string
	LogsDir string
	Name    string
	Start   time.Time

	// Console receives colored output; defaults to os.Stdout.
	Console io.Writer

	// GraylogAddress enables the GELF sink when non-empty.
	GraylogAddress string
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "TRACE":
		return zerolog.TraceLevel
	default:
		return zerolog.InfoLevel
	}
}

// Setup builds the application logger: colored console output, a plain log
// file under LogsDir and, optionally, a Graylog sink. The returned closer
// releases the file and the GELF connection.
func Setup(opts Options) (zerolog.Logger, io.Closer, error) {
	if opts.Console == nil {
		opts.Console = os.Stdout
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	if err := os.MkdirAll(opts.LogsDir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create logs dir: %w", err)
	}
	path := LogFilePath(opts.LogsDir, opts.Name, opts.Start)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	closers := multiCloser{file}

	writers := []io.Writer{
		// console format with colors to console
		zerolog.ConsoleWriter{
			Out:        opts.Console,
			TimeFormat: time.RFC3339,
		},
		// console format without colors to file
		zerolog.ConsoleWriter{
			Out:        file,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		},
	}

	if opts.GraylogAddress != "" {
		gw, err := gelf.NewWriter(opts.GraylogAddress)
		if err != nil {
			_ = closers.Close()
			return zerolog.Nop(), nil, fmt.Errorf("connect graylog: %w", err)
		}
		writers = append(writers, gw)
		closers = append(closers, gw)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(opts.Level)).
		With().Timestamp().Str("app", opts.Name).Logger()

	logger.Info().Str("loglevel", logger.GetLevel().String()).Str("file", path).Msg("Logging set up")
	return logger, closers, nil
}

type multiCloser []io.Closer

func (m multiCloser) Close() error {
	var errs []error
	for _, c := range m {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
