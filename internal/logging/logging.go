// Package logging hands out named logrus loggers that share one level and one
// line format.
package logging

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const timeFormat = "2006/01/02 15:04:05.000000"

var (
	mu      sync.Mutex
	loggers = make(map[string]*Logger)
	level   = logrus.InfoLevel
	out     io.Writer = os.Stderr
)

// Logger is a logrus logger bound to a component name.
type Logger struct {
	logrus.Logger

	name string
}

// Format renders "time name[pid] <LEVEL>: message k=v ...".
func (l *Logger) Format(e *logrus.Entry) ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s[%d] <%s>: %s",
		e.Time.Format(timeFormat),
		l.name,
		os.Getpid(),
		strings.ToUpper(e.Level.String()),
		e.Message)

	if len(e.Data) != 0 {
		keys := make([]string, 0, len(e.Data))
		for k := range e.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, " %s=%v", k, e.Data[k])
		}
	}

	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

// Name returns the component name.
func (l *Logger) Name() string {
	return l.name
}

func newLogger(name string) *Logger {
	l := &Logger{name: name}
	l.Out = out
	l.Formatter = l
	l.Level = level
	l.Hooks = make(logrus.LevelHooks)
	return l
}

// GetLogger returns the logger registered under name, creating it on first use.
func GetLogger(name string) *Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}
	l := newLogger(name)
	loggers[name] = l
	return l
}

// SetLevel sets lvl on every logger, including ones created later.
func SetLevel(lvl logrus.Level) {
	mu.Lock()
	defer mu.Unlock()

	level = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
}

// ParseLevel is logrus.ParseLevel with an empty string meaning info.
func ParseLevel(s string) (logrus.Level, error) {
	if s == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(s)
}

// SetOutput redirects every logger, including ones created later, to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	out = w
	for _, l := range loggers {
		l.SetOutput(w)
	}
}
