// Package logger is the logging interface the toolkit and the picker report
// through, with a zap backed implementation and a stub that discards.
package logger

import (
	"go.uber.org/zap"

	"go.hasen.dev/datepicker/internal/errors"
)

type Logger interface {
	With(label string) Logger

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	Warn(err error)
	Error(err error)

	Sync() error
}

func New(env Env) (Logger, error) {
	var base *zap.Logger
	var err error

	switch env {
	case Production:
		base, err = zap.NewProduction()
	default:
		base, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, errors.WrapFail(err, "init logger")
	}

	return &wrapper{base: base.Sugar()}, nil
}

// FromZap wraps an already configured zap logger.
func FromZap(base *zap.Logger) Logger {
	return &wrapper{base: base.Sugar()}
}

type wrapper struct {
	base *zap.SugaredLogger
}

func (w *wrapper) With(label string) Logger {
	return &wrapper{w.base.Named(label)}
}

func (w *wrapper) Debugf(format string, args ...any) {
	w.base.Debugf(format, args...)
}

func (w *wrapper) Infof(format string, args ...any) {
	w.base.Infof(format, args...)
}

func (w *wrapper) Warnf(format string, args ...any) {
	w.base.Warnf(format, args...)
}

func (w *wrapper) Errorf(format string, args ...any) {
	w.base.Errorf(format, args...)
}

func (w *wrapper) Warn(err error) {
	w.base.Warnf("%s", err)
}

func (w *wrapper) Error(err error) {
	w.base.Errorf("%s", err)
}

func (w *wrapper) Sync() error {
	return w.base.Sync()
}
