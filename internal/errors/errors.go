package errors

import (
	"errors"
	"fmt"
)

var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

const cantPrefix = "can't"

func Errorf(msgFormat string, args ...any) error {
	return fmt.Errorf(msgFormat, args...)
}

// Fail builds an error that reads "can't <whatFailed>".
func Fail(whatFailed string) error {
	return fmt.Errorf("%s %s", cantPrefix, whatFailed)
}

func Wrap(err error, wrapper string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", wrapper, err)
}

func Wrapf(err error, wrapperFormat string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(wrapperFormat, args...))
}

// WrapFail wraps err as "can't <whatFailed>: <err>".
func WrapFail(err error, whatFailed string) error {
	if err == nil {
		return nil
	}
	return Wrapf(err, "%s %s", cantPrefix, whatFailed)
}

func WrapFailf(err error, whatFailedFormat string, args ...any) error {
	if err == nil {
		return nil
	}
	return WrapFail(err, fmt.Sprintf(whatFailedFormat, args...))
}
