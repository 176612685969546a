package event

import (
	"fmt"
	"strings"
	"time"
)

// Level is the severity of a log event
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// String returns the upper-case level name
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}

	return levelNames[LevelInfo]
}

// ParseLevel converts a level name, unknown names map to INFO
func ParseLevel(name string) Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return LevelTrace
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR", "FATAL":
		return LevelError
	default:
		return LevelInfo
	}
}

// Event is a single structured log event
type Event struct {
	Timestamp time.Time
	Level     Level
	Logger    string
	Thread    string
	Message   string
	Throwable *Throwable
}

// Throwable is one link of an error cause chain
type Throwable struct {
	ClassName    string
	Message      string
	Frames       []Frame
	CommonFrames int
	Cause        *Throwable
}

// Frame is a single stack frame
type Frame struct {
	Class  string
	Method string
	File   string
	Line   int
}

// String renders the frame the way stack traces print it
func (f Frame) String() string {
	location := f.File
	if location == "" {
		location = "Unknown Source"
	} else if f.Line > 0 {
		location = fmt.Sprintf("%s:%d", f.File, f.Line)
	}

	if f.Class == "" {
		return fmt.Sprintf("at %s(%s)", f.Method, location)
	}

	return fmt.Sprintf("at %s.%s(%s)", f.Class, f.Method, location)
}

// Summary returns "Class: message", or just the class when there is no message
func (t *Throwable) Summary() string {
	if t.Message == "" {
		return t.ClassName
	}

	return fmt.Sprintf("%s: %s", t.ClassName, t.Message)
}
