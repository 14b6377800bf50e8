package presupuesto

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Notifier receives the user-visible outcome of each remote operation.
// Exactly one notification is emitted per failed call; success messages are
// informational. The web original used toasts; the TUI status bar and the
// CLI both implement this.
type Notifier interface {
	Exito(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the structured log. It is the default
// when no UI is attached (scripted CLI usage, tests that don't care).
type LogNotifier struct{}

func (LogNotifier) Exito(msg string) { log.Info().Msg(msg) }
func (LogNotifier) Error(msg string) { log.Error().Msg(msg) }

// Buffer retains the most recent notification so a pull-based UI (bubbletea)
// can read it after an operation command completes.
type Buffer struct {
	mu     sync.Mutex
	ultimo string
	esErr  bool
}

func (b *Buffer) Exito(msg string) { b.set(msg, false) }
func (b *Buffer) Error(msg string) { b.set(msg, true) }

func (b *Buffer) set(msg string, esErr bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ultimo = msg
	b.esErr = esErr
}

// Ultimo returns and clears the pending notification.
func (b *Buffer) Ultimo() (msg string, esError bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	msg, esError = b.ultimo, b.esErr
	b.ultimo, b.esErr = "", false
	return msg, esError
}
