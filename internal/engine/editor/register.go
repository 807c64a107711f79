package editor

import "github.com/dshills/doccore/internal/engine/cursor"

// RegisterData is text held by a register together with how it was taken.
type RegisterData struct {
	Content string
	Mode    cursor.VisualMode
}

// IsLinewise returns true if the content was taken as whole lines.
func (d RegisterData) IsLinewise() bool {
	return d.Mode == cursor.VisualLinewise
}

// RegisterKind tells which operation filled a register.
type RegisterKind uint8

const (
	RegisterDelete RegisterKind = iota
	RegisterYank
)

// Register holds the unnamed register and the last yank.
//
// Every delete and yank lands in the unnamed register; only yanks update
// LastYank, so a delete does not lose the text that was copied before it.
type Register struct {
	Unnamed  RegisterData
	LastYank RegisterData
}

// Add stores data for the given kind of operation.
func (r *Register) Add(kind RegisterKind, data RegisterData) {
	if kind == RegisterYank {
		r.LastYank = data
	}
	r.Unnamed = data
}

// Clipboard is the system clipboard as seen by the edit engine.
type Clipboard interface {
	GetString() (string, bool)
	PutString(s string)
}
