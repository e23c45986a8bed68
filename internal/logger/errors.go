package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrAppNameIsEmpty     = errors.New("log: AppName is required")
	ErrServiceNameIsEmpty = errors.New("log: ServiceName is required")
)

// writeFailed is installed as zerolog.ErrorHandler. The logger itself is broken
// at that point, so the failure goes straight to stderr.
func writeFailed(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "doctor-portal: dropped log event: %v\n", err)
}
