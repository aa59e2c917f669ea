// Package agentlog provides the shared logger used across the agent and
// its simulation.
package agentlog

import (
	"fmt"
	"io"
	"os"
)

// writer is the destination for log output, stdout by default.
var writer io.Writer = os.Stdout

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	writer = w
}

// Logf writes a formatted log line.
func Logf(format string, args ...interface{}) {
	fmt.Fprintln(writer, fmt.Sprintf(format, args...))
}
