package core

import (
	"runtime"
	"time"
)

// Record is one finished log event. It must not be modified after it
// has been handed to a handler.
type Record struct {
	// Time is when the log statement began executing, not when it was printed
	Time time.Time
	// Level is the severity the call site was written at
	Level Level
	// File is the full path of the originating source file
	File string
	// Line is the originating line, 0 when unknown
	Line int
	// Message is the text drained from the stream's accumulator
	Message string
}

// Caller returns the file and line skip frames above its caller.
// It returns an empty file and line 0 when the frame cannot be resolved.
func Caller(skip int) (file string, line int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0
	}
	return file, line
}
