package logging

import (
	"fmt"
	"log"

	applog "github.com/akinaridici/stowagemaster/internal/application/logging"
)

// StdLogger implements the application logging port on top of the
// standard library's log package, matching the plain log.Printf style
// used at the composition root rather than pulling in a structured
// logging library the rest of the stack doesn't use.
type StdLogger struct{}

func NewStdLogger() *StdLogger { return &StdLogger{} }

func (l *StdLogger) Log(level, message string, fields map[string]interface{}) {
	if len(fields) == 0 {
		log.Printf("[%s] %s", level, message)
		return
	}
	log.Printf("[%s] %s %s", level, message, formatFields(fields))
}

func formatFields(fields map[string]interface{}) string {
	out := ""
	for k, v := range fields {
		out += fmt.Sprintf("%s=%v ", k, v)
	}
	return out
}

var _ applog.Logger = (*StdLogger)(nil)
