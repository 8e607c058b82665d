// pkg/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Log is the process-wide logger. Entrypoints tune it with SetLevel and
// UseJSON; everything else just logs.
var Log zerolog.Logger

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano

	console := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
	}
	Log = build(console, zerolog.InfoLevel)
}

func build(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "zprofit").
		Logger()
}

// UseJSON switches to plain JSON lines on stdout, for non-interactive
// deployments where console coloring gets in the way.
func UseJSON() {
	Log = build(os.Stdout, Log.GetLevel())
}

// SetLevel sets the global log level. Unknown or empty values fall back to
// info so a bad flag never silences the process.
func SetLevel(levelStr string) {
	levelStr = strings.ToLower(strings.TrimSpace(levelStr))
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil || level == zerolog.NoLevel {
		if levelStr != "" {
			Log.Warn().Str("level", levelStr).Msg("invalid log level, defaulting to info")
		}
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	Log = Log.Level(level)
}
