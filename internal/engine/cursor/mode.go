package cursor

// Mode identifies which state a cursor is in.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeVisual
	ModeInsert
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeVisual:
		return "visual"
	case ModeInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// VisualMode distinguishes charwise from linewise visual selections.
type VisualMode uint8

const (
	VisualCharwise VisualMode = iota
	VisualLinewise
)

// String returns the visual mode name.
func (v VisualMode) String() string {
	if v == VisualLinewise {
		return "linewise"
	}
	return "charwise"
}

// MotionMode is an operator waiting for a motion to define its range.
type MotionMode uint8

const (
	MotionDelete MotionMode = iota
	MotionYank
	MotionIndent
	MotionOutdent
)

// String returns the operator name.
func (m MotionMode) String() string {
	switch m {
	case MotionDelete:
		return "delete"
	case MotionYank:
		return "yank"
	case MotionIndent:
		return "indent"
	case MotionOutdent:
		return "outdent"
	default:
		return "unknown"
	}
}

// Pending returns a pointer to m, for assigning Cursor.MotionMode.
func Pending(m MotionMode) *MotionMode {
	return &m
}
