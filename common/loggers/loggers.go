package loggers

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	jww "github.com/spf13/jwalterweatherman"
)

// Logger is the logger used throughout the build.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)

	// Process traces a pipeline step.
	Process(step, msg string)

	Out() io.Writer
}

type logger struct {
	*jww.Notepad
	out io.Writer
}

// New creates a new Logger writing messages at or above threshold to out.
func New(threshold jww.Threshold, out io.Writer) Logger {
	if out == nil {
		out = os.Stdout
	}
	flags := log.Ldate | log.Ltime
	if isTerminal(out) {
		flags = 0
	}
	return &logger{
		Notepad: jww.NewNotepad(threshold, jww.LevelFatal, out, ioutil.Discard, "", flags),
		out:     out,
	}
}

// NewDefault creates a Logger printing warnings and errors to stdout.
func NewDefault() Logger {
	return New(jww.LevelWarn, os.Stdout)
}

// NewBasicLoggerForWriter creates a Logger writing everything at or above
// threshold to w. Mostly useful in tests.
func NewBasicLoggerForWriter(threshold jww.Threshold, w io.Writer) Logger {
	return &logger{
		Notepad: jww.NewNotepad(threshold, jww.LevelFatal, w, ioutil.Discard, "", 0),
		out:     w,
	}
}

// NewDiscard creates a Logger that throws everything away.
func NewDiscard() Logger {
	return NewBasicLoggerForWriter(jww.LevelFatal, ioutil.Discard)
}

// NewBuffer creates a Logger writing to a buffer, returned for inspection.
func NewBuffer(threshold jww.Threshold) (Logger, *bytes.Buffer) {
	var b bytes.Buffer
	return NewBasicLoggerForWriter(threshold, &b), &b
}

// ThresholdFromString maps a level name (debug, info, warn, error) to a
// threshold. Unknown names map to warn.
func ThresholdFromString(s string) jww.Threshold {
	switch strings.ToLower(s) {
	case "trace":
		return jww.LevelTrace
	case "debug":
		return jww.LevelDebug
	case "info":
		return jww.LevelInfo
	case "error":
		return jww.LevelError
	default:
		return jww.LevelWarn
	}
}

func (l *logger) Debugf(format string, v ...any) {
	l.DEBUG.Printf(format, v...)
}

func (l *logger) Infof(format string, v ...any) {
	l.INFO.Printf(format, v...)
}

func (l *logger) Warnf(format string, v ...any) {
	l.WARN.Printf(format, v...)
}

func (l *logger) Errorf(format string, v ...any) {
	l.ERROR.Printf(format, v...)
}

func (l *logger) Process(step, msg string) {
	l.DEBUG.Println(fmt.Sprintf("%s: %s", step, msg))
}

func (l *logger) Out() io.Writer {
	return l.out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
