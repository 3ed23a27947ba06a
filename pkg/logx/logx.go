// Package logx is a thin logging facade over zerolog so callers don't
// carry the logger around as a dependency.
package logx

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

type Level = zerolog.Level

const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger()

// SetLevel sets the global minimum level.
func SetLevel(level Level) {
	zerolog.SetGlobalLevel(level)
}

func Debug(msg string) { log.Debug().Msg(msg) }
func Info(msg string)  { log.Info().Msg(msg) }
func Warn(msg string)  { log.Warn().Msg(msg) }
func Error(msg string) { log.Error().Msg(msg) }

func Debugf(format string, args ...any) { log.Debug().Msg(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { log.Info().Msg(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { log.Warn().Msg(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { log.Error().Msg(fmt.Sprintf(format, args...)) }

// Fatalf logs and exits with status 1.
func Fatalf(format string, args ...any) {
	log.Fatal().Msg(fmt.Sprintf(format, args...))
}
