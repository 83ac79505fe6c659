// Package notify is the storefront's toast channel. Calls are
// fire-and-forget: a sink that fails to display a message never turns
// that into an operation error.
package notify

import "log"

// Notifier receives user-visible messages after mutating operations.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to a logger. It stands in for the UI
// toast stack when the core runs headless.
type LogNotifier struct {
	logger *log.Logger
}

// NewLog returns a Notifier backed by logger.
func NewLog(logger *log.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(msg string) { n.logger.Printf("toast success: %s", msg) }

func (n *LogNotifier) Info(msg string) { n.logger.Printf("toast info: %s", msg) }

func (n *LogNotifier) Warn(msg string) { n.logger.Printf("toast warn: %s", msg) }

func (n *LogNotifier) Error(msg string) { n.logger.Printf("toast error: %s", msg) }
