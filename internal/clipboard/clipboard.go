// Package clipboard provides the clipboards the edit engine copies to and
// pastes from: the system clipboard and an in-memory one.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/dshills/doccore/internal/logging"
)

// System is the operating system clipboard.
//
// Clipboard access can fail (no display, missing xclip/xsel); failures are
// logged and reads report no content.
type System struct {
	logger *logging.Logger
}

// NewSystem returns the system clipboard. A nil logger logs nothing.
func NewSystem(logger *logging.Logger) *System {
	if logger == nil {
		logger = logging.Null()
	}
	return &System{logger: logger.WithComponent("clipboard")}
}

// Available reports whether the platform has a clipboard utility.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// GetString returns the clipboard content.
func (s *System) GetString() (string, bool) {
	text, err := clipboard.ReadAll()
	if err != nil {
		s.logger.Warn("read failed: %v", err)
		return "", false
	}
	return text, true
}

// PutString replaces the clipboard content.
func (s *System) PutString(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		s.logger.Warn("write failed: %v", err)
	}
}

// Memory is a process-local clipboard. It is safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	text string
	set  bool
}

// NewMemory returns an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// GetString returns the last string put, and false if nothing was put yet.
func (m *Memory) GetString() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, m.set
}

// PutString stores text.
func (m *Memory) PutString(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.set = true
}
