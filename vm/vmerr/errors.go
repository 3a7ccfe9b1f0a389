// Package vmerr classifies hook and call failures into the three severity bands
// of the VM: recoverable user errors, unavailable hooks and fatal failures.
package vmerr

import (
	"fmt"

	"github.com/pkg/errors"
)

type Severity int

const (
	// User errors abort the current call. The contract signals them on purpose or
	// trips a semantic check, and the parent async context can observe them.
	SeverityUser Severity = iota
	// Unavailable hooks are declared in the ABI but not served by this host.
	SeverityUnavailable
	// Fatal errors terminate the whole transaction.
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityUser:
		return "user"
	case SeverityUnavailable:
		return "unavailable"
	default:
		return "fatal"
	}
}

// VMError is the error type every hook returns.
type VMError struct {
	Severity Severity
	Code     ReturnCode
	Message  []byte
}

func (e *VMError) Error() string {
	return fmt.Sprintf("%s error (%s): %s", e.Severity, e.Code, string(e.Message))
}

func (e *VMError) IsUser() bool {
	return e.Severity == SeverityUser
}

func (e *VMError) IsFatal() bool {
	return e.Severity != SeverityUser
}

func newError(severity Severity, code ReturnCode, msg []byte) *VMError {
	return &VMError{Severity: severity, Code: code, Message: msg}
}

// User returns a recoverable error carrying msg.
func User(msg string) error {
	return newError(SeverityUser, UserError, []byte(msg))
}

// UserBytes returns a recoverable error carrying raw message bytes.
func UserBytes(msg []byte) error {
	m := make([]byte, len(msg))
	copy(m, msg)
	return newError(SeverityUser, UserError, m)
}

// Userf formats a recoverable error.
func Userf(format string, args ...interface{}) error {
	return User(fmt.Sprintf(format, args...))
}

// Failed returns a recoverable error with a specific return code, e.g. OutOfFunds.
func Failed(code ReturnCode, msg string) error {
	return newError(SeverityUser, code, []byte(msg))
}

// Unavailable reports a call to a hook this host doesn't serve.
func Unavailable(hook string) error {
	return newError(SeverityUnavailable, ExecutionFailed, []byte("unavailable hook: "+hook))
}

// Fatal returns an error that terminates the transaction.
func Fatal(code ReturnCode, msg string) error {
	return newError(SeverityFatal, code, []byte(msg))
}

// Fatalf formats a fatal ExecutionFailed error.
func Fatalf(format string, args ...interface{}) error {
	return Fatal(ExecutionFailed, fmt.Sprintf(format, args...))
}

func OutOfGasError() error {
	return Fatal(OutOfGas, "not enough gas")
}

func MemoryOutOfBounds(ptr, length int32, size int) error {
	return Fatalf("mem access out of bounds: ptr=%d len=%d size=%d", ptr, length, size)
}

func InvalidHandle(table string, handle int32) error {
	return Fatalf("no %s under the given handle %d", table, handle)
}

// From classifies any error. Errors that aren't a *VMError anywhere in their
// cause chain are fatal ExecutionFailed.
func From(err error) *VMError {
	if err == nil {
		return nil
	}
	if vmErr, ok := errors.Cause(err).(*VMError); ok {
		return vmErr
	}
	return newError(SeverityFatal, ExecutionFailed, []byte(err.Error()))
}

// CodeOf returns the return code of err, Ok for nil.
func CodeOf(err error) ReturnCode {
	if err == nil {
		return Ok
	}
	return From(err).Code
}

// IsUser reports whether err is a recoverable user error.
func IsUser(err error) bool {
	return err != nil && From(err).IsUser()
}

// IsUnavailable reports whether err comes from an unavailable hook.
func IsUnavailable(err error) bool {
	return err != nil && From(err).Severity == SeverityUnavailable
}
