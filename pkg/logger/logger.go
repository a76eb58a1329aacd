package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config se arma desde APP_ENV y LOG_LEVEL en cmd/api y en granjactl.
type Config struct {
	Env    string    // development -> consola legible; resto -> JSON
	Level  string    // trace, debug, info, warn, error
	Output io.Writer // opcional; por defecto os.Stdout
}

// Logger es el logger de la granja; se pasa explícito a handlers, bootstrap y comandos.
type Logger struct {
	zl zerolog.Logger
}

// New arma el logger con marca de tiempo. Con Env "development" escribe por consola
// en texto; en cualquier otro entorno, una línea JSON por evento.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Output != nil {
		w = cfg.Output
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// log.Logger global queda igual al de la granja
	log.Logger = zl

	return &Logger{zl: zl}
}

// Nop no escribe nada.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// parseLevel: nivel desconocido o vacío cae en info.
func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Eventos por nivel; Fatal termina el proceso al enviarse.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With parte de los campos actuales para derivar otro logger.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Component sublogger con el campo "component" (http, storage, cli...).
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.With().Str("component", name).Logger()}
}
