// Package logging provides module-scoped loggers backed by zap.
//
// Every package declares its logger once:
//
//	var log = logging.LoggerForModule()
//
// The module name is derived from the calling package's import path.
package logging

import (
	"os"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const modulePrefix = "github.com/stackrox/cdn-migrator/"

var (
	level = zap.NewAtomicLevelAt(levelFromEnv())

	rootOnce sync.Once
	root     *zap.Logger
)

// Logger is a sugared zap logger named after its module.
type Logger struct {
	*zap.SugaredLogger
	module string
}

// Module returns the module name the logger was created for.
func (l *Logger) Module() string {
	return l.module
}

// LoggerForModule returns a logger named after the package of its caller.
func LoggerForModule() *Logger {
	return LoggerForName(callerModule(2))
}

// LoggerForName returns a logger with an explicit module name.
func LoggerForName(module string) *Logger {
	return &Logger{
		SugaredLogger: rootLogger().Named(module).Sugar(),
		module:        module,
	}
}

// SetLevel changes the level of every logger, including ones already created.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(name string) (zapcore.Level, error) {
	return zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
}

func rootLogger() *zap.Logger {
	rootOnce.Do(func() {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level)
		root = zap.New(core)
	})
	return root
}

func levelFromEnv() zapcore.Level {
	if l, err := ParseLevel(os.Getenv("LOGLEVEL")); err == nil {
		return l
	}
	return zapcore.InfoLevel
}

func callerModule(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	// fn.Name() looks like "github.com/x/y/pkg/name.init" or "...pkg/name.(*T).M".
	name := fn.Name()
	if slash := strings.LastIndex(name, "/"); slash >= 0 {
		if dot := strings.Index(name[slash:], "."); dot >= 0 {
			name = name[:slash+dot]
		}
	} else if dot := strings.Index(name, "."); dot >= 0 {
		name = name[:dot]
	}
	return strings.TrimPrefix(name, modulePrefix)
}
