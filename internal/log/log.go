// Package log provides centralized logging functionality using zap logger.
package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	log          *zap.SugaredLogger
	fallbackOnce sync.Once
)

// Init initializes the package-level logger. Production config by default,
// development config when debug is on.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	log = zapLogger.Sugar()
	return nil
}

// get returns the logger, building a production fallback once when Init
// was never called (library use, tests).
func get() *zap.SugaredLogger {
	fallbackOnce.Do(func() {
		if log != nil {
			return
		}
		zapLogger, err := zap.NewProduction(zap.AddCallerSkip(1))
		if err != nil {
			zapLogger = zap.NewNop()
		}
		log = zapLogger.Sugar()
	})
	return log
}

// GetSugaredLogger returns the sugared logger instance
func GetSugaredLogger() *zap.SugaredLogger {
	return get()
}

// Sync flushes any buffered log entries
func Sync() {
	if log != nil {
		log.Sync()
	}
}

// Package-level convenience functions
func Debug(args ...interface{}) {
	get().Debug(args...)
}

func Debugf(template string, args ...interface{}) {
	get().Debugf(template, args...)
}

func Debugw(msg string, keysAndValues ...interface{}) {
	get().Debugw(msg, keysAndValues...)
}

func Info(args ...interface{}) {
	get().Info(args...)
}

func Infof(template string, args ...interface{}) {
	get().Infof(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	get().Infow(msg, keysAndValues...)
}

func Warn(args ...interface{}) {
	get().Warn(args...)
}

func Warnf(template string, args ...interface{}) {
	get().Warnf(template, args...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	get().Warnw(msg, keysAndValues...)
}

func Error(args ...interface{}) {
	get().Error(args...)
}

func Errorf(template string, args ...interface{}) {
	get().Errorf(template, args...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	get().Errorw(msg, keysAndValues...)
}

func Fatalf(template string, args ...interface{}) {
	get().Fatalf(template, args...)
}
