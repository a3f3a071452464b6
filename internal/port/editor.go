package port

// EditorSurface is the host editor as seen by the transformer.
// Line numbers are 1-based.
type EditorSurface interface {
	IsTestClass(documentFullText string) bool

	DocumentText() string

	// CurrentSelectionText returns "" when nothing is selected.
	CurrentSelectionText() string

	CursorLineIndex() int

	// LineText returns the line without its terminator.
	LineText(line int) string

	// WidenSelectionToLine selects the whole line including its terminator.
	WidenSelectionToLine(line int)

	ReplaceCurrentSelection(newText string)
}
