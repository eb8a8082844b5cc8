package logger

import (
	"log"
	"os"
)

var (
	// Info writes to stdout.
	Info *log.Logger

	// Error writes to stderr.
	Error *log.Logger
)

func init() {
	Info = log.New(os.Stdout, "", log.LstdFlags)
	Error = log.New(os.Stderr, "", log.LstdFlags)
}

// Println logs to stdout.
func Println(v ...interface{}) {
	Info.Println(v...)
}

// Printf logs a formatted line to stdout.
func Printf(format string, v ...interface{}) {
	Info.Printf(format, v...)
}

// Errorln logs to stderr.
func Errorln(v ...interface{}) {
	Error.Println(v...)
}

// Errorf logs a formatted line to stderr.
func Errorf(format string, v ...interface{}) {
	Error.Printf(format, v...)
}

// Fatalf logs to stderr and exits.
func Fatalf(format string, v ...interface{}) {
	Error.Fatalf(format, v...)
}
