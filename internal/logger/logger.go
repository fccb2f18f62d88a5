package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var globalLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var once sync.Once

// InitLogging points the global logger at stdout and, when logFilePath is set,
// at that file too. Unknown levels fall back to info. Only the first call has any effect.
func InitLogging(logFilePath, level string) {
	once.Do(func() {
		lvl, err := zerolog.ParseLevel(level)
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}

		l := zerolog.New(zerolog.MultiLevelWriter(outputs(logFilePath)...)).
			With().Timestamp().Logger().
			Level(lvl)
		globalLogger = l
		log.Logger = l
	})
}

func outputs(logFilePath string) []io.Writer {
	writers := []io.Writer{os.Stdout}
	if logFilePath == "" {
		return writers
	}
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
	if err != nil {
		// The logger is not built yet
		os.Stderr.WriteString("Failed to open log file: " + err.Error() + "\n")
		return writers
	}
	return append(writers, file)
}

// WithLogger returns a context whose logger carries fields on top of the
// fields already attached to ctx.
func WithLogger(ctx context.Context, fields map[string]interface{}) context.Context {
	l := getLogger(ctx).With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

// WithEmployee tags every later log line on ctx with the employee id.
func WithEmployee(ctx context.Context, id int) context.Context {
	return WithLogger(ctx, map[string]interface{}{"employee_id": id})
}

func getLogger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	// zerolog.Ctx returns a disabled logger if none is in context
	if l.GetLevel() == zerolog.Disabled {
		return &globalLogger
	}
	return l
}

func logAt(ctx context.Context, lvl zerolog.Level, msg string, args []interface{}) {
	getLogger(ctx).WithLevel(lvl).Msgf(msg, args...)
}

func DebugLog(ctx context.Context, msg string, args ...interface{}) {
	logAt(ctx, zerolog.DebugLevel, msg, args)
}

func InfoLog(ctx context.Context, msg string, args ...interface{}) {
	logAt(ctx, zerolog.InfoLevel, msg, args)
}

func WarnLog(ctx context.Context, msg string, args ...interface{}) {
	logAt(ctx, zerolog.WarnLevel, msg, args)
}

// ErrorLog logs at error level. A lone error argument goes to the "error"
// field and msg is written as is; otherwise args format msg.
func ErrorLog(ctx context.Context, msg string, args ...interface{}) {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			getLogger(ctx).Error().Err(err).Msg(msg)
			return
		}
	}
	logAt(ctx, zerolog.ErrorLevel, msg, args)
}
