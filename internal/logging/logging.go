// Package logging configures the module's single shared logging backend.
// Library packages (bitengine, chess, internal/perft) never log; only the
// CLI does, since a library has no business deciding how its caller wants
// output formatted.
package logging

import (
	"os"

	logging "github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
)

// Get returns a named logger backed by a single stdout backend at the
// given level. Every call reconfigures the shared backend, matching the
// teacher's own GetLog: cheap, and fine for a module with no concurrent
// loggers fighting over backend state.
func Get(name string, level logging.Level) *logging.Logger {
	log := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
	return log
}
