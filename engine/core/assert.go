package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
)

// AssertMode selects what happens when a precondition check fails.
type AssertMode int32

const (
	// AssertModeStrict panics with an *AssertionError. This is the default.
	AssertModeStrict AssertMode = iota
	// AssertModeIgnore logs the violation and lets the caller continue with
	// its documented fallback result.
	AssertModeIgnore
)

var assertMode atomic.Int32

func (m AssertMode) String() string {
	switch m {
	case AssertModeStrict:
		return "strict"
	case AssertModeIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("AssertMode(%d)", int32(m))
	}
}

// ParseAssertMode converts "strict" or "ignore" (case insensitive).
func ParseAssertMode(mode string) (AssertMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "strict", "":
		return AssertModeStrict, nil
	case "ignore", "disabled":
		return AssertModeIgnore, nil
	}
	return AssertModeStrict, fmt.Errorf("unknown assertion mode %q", mode)
}

func SetAssertMode(mode AssertMode) {
	assertMode.Store(int32(mode))
}

func GetAssertMode() AssertMode {
	return AssertMode(assertMode.Load())
}

// AssertionError is the panic value raised by a failed assertion in strict mode.
type AssertionError struct {
	Condition string
	File      string
	Line      int
	Message   string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion '%s' failed at %s:%d: %s", e.Condition, filepath.Base(e.File), e.Line, e.Message)
}

// Is makes every assertion failure match ErrAssertion.
func (e *AssertionError) Is(target error) bool {
	return target == ErrAssertion
}

/**
 * @brief Checks a precondition.
 *
 * @param ok The result of the check.
 * @param condition The text of the checked expression, reported on failure.
 * @param msg A format string describing the violation.
 * @return ok. In strict mode a failed check never returns.
 */
func Assert(ok bool, condition string, msg string, args ...interface{}) bool {
	if ok {
		return true
	}

	_, file, line, _ := runtime.Caller(1)
	err := &AssertionError{
		Condition: condition,
		File:      file,
		Line:      line,
		Message:   fmt.Sprintf(msg, args...),
	}

	if GetAssertMode() == AssertModeIgnore {
		LogWarn("%s (ignored)", err)
		return false
	}
	LogError("%s", err)
	panic(err)
}
