// Package trace provides a verbose debug-print helper, colorized on an
// interactive terminal, the way the teacher's modules/trace does it.
package trace

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var debugMode bool

func EnableDebugMode() {
	debugMode = true
}

func DebugEnabled() bool {
	return debugMode
}

func Location(skip int) (string, int) {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return "?", line
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "?", line
	}
	return fn.Name(), line
}

// Errorf logs the message with caller location and returns it as an error.
func Errorf(format string, a ...any) error {
	fn, line := Location(2)
	msg := fmt.Sprintf(format, a...)
	logrus.Errorf("%s:%d %s", fn, line, msg)
	return errors.New(msg)
}

// DbgPrint writes a message to stderr when debug mode is enabled,
// colorized when stderr is a terminal.
func DbgPrint(format string, args ...any) {
	if !debugMode {
		return
	}
	message := fmt.Sprintf(format, args...)
	var buffer bytes.Buffer
	colorize := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	for _, s := range strings.Split(strings.TrimSuffix(message, "\n"), "\n") {
		if colorize {
			_, _ = buffer.WriteString("\x1b[33m* ")
			_, _ = buffer.WriteString(s)
			_, _ = buffer.WriteString("\x1b[0m\n")
		} else {
			_, _ = buffer.WriteString(s)
			_ = buffer.WriteByte('\n')
		}
	}
	_, _ = os.Stderr.Write(buffer.Bytes())
}
