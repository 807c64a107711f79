package editor

import "fmt"

// Command is an edit command understood by DoEdit.
type Command uint8

const (
	InsertNewLine Command = iota
	InsertTab
	DeleteBackward
	DeleteForward
	DeleteSelection
	Yank
	Paste
	PasteBefore
	ClipboardCopy
	ClipboardCut
	ClipboardPaste
	IndentLine
	OutdentLine
	JoinLines
	NormalMode
	InsertMode
	Append
	AppendEndOfLine
	InsertFirstNonBlank
	NewLineBelow
	NewLineAbove
	ToggleVisual
	ToggleLinewiseVisual
	Undo
	Redo
)

var commandNames = [...]string{
	InsertNewLine:        "insert-new-line",
	InsertTab:            "insert-tab",
	DeleteBackward:       "delete-backward",
	DeleteForward:        "delete-forward",
	DeleteSelection:      "delete-selection",
	Yank:                 "yank",
	Paste:                "paste",
	PasteBefore:          "paste-before",
	ClipboardCopy:        "clipboard-copy",
	ClipboardCut:         "clipboard-cut",
	ClipboardPaste:       "clipboard-paste",
	IndentLine:           "indent-line",
	OutdentLine:          "outdent-line",
	JoinLines:            "join-lines",
	NormalMode:           "normal-mode",
	InsertMode:           "insert-mode",
	Append:               "append",
	AppendEndOfLine:      "append-end-of-line",
	InsertFirstNonBlank:  "insert-first-non-blank",
	NewLineBelow:         "new-line-below",
	NewLineAbove:         "new-line-above",
	ToggleVisual:         "toggle-visual",
	ToggleLinewiseVisual: "toggle-linewise-visual",
	Undo:                 "undo",
	Redo:                 "redo",
}

// String returns the command name.
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", c)
}

// ParseCommand returns the command with the given name.
func ParseCommand(name string) (Command, error) {
	for i, n := range commandNames {
		if n == name {
			return Command(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}
