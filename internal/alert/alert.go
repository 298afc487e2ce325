// Package alert is the user-facing notification boundary. The sync layer
// raises one alert per playback error; how it is rendered is up to the
// installed Notifier.
package alert

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gen2brain/beeep"
)

// Notifier delivers a single user-visible alert message.
type Notifier interface {
	Alert(title, message string)
}

// Func adapts a function to the Notifier interface.
type Func func(title, message string)

// Alert calls f.
func (f Func) Alert(title, message string) {
	f(title, message)
}

// Desktop raises native desktop notifications.
type Desktop struct {
	log *slog.Logger
}

// NewDesktop returns a desktop notifier. A nil logger falls back to
// slog.Default.
func NewDesktop(logger *slog.Logger) *Desktop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Desktop{log: logger}
}

// Alert shows a desktop notification. Delivery failures are logged; an
// alert that cannot be shown is not worth failing playback over.
func (d *Desktop) Alert(title, message string) {
	if err := beeep.Alert(title, message, ""); err != nil {
		d.log.Warn("failed to deliver desktop alert", "title", title, "error", err)
	}
}

// Console writes alerts to stderr, for headless environments.
type Console struct{}

// Alert prints the alert to stderr.
func (Console) Alert(title, message string) {
	fmt.Fprintf(os.Stderr, "⚠ %s: %s\n", title, message)
}
