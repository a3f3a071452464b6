package buffer

import (
	"strings"

	"stubgen/internal/adapter/analyzer"
)

// Document is an in-memory EditorSurface over a text buffer. Lines are
// delimited by "\n"; a preceding "\r" belongs to the terminator.
type Document struct {
	text       string
	selStart   int
	selEnd     int
	cursorLine int
}

// NewDocument creates a document with an empty selection at the start of
// cursorLine (1-based).
func NewDocument(text string, cursorLine int) *Document {
	d := &Document{text: text}
	d.SetCursor(cursorLine)
	return d
}

func (d *Document) Text() string {
	return d.text
}

// SetCursor collapses the selection to the start of line.
func (d *Document) SetCursor(line int) {
	line = d.clampLine(line)
	start, _ := d.lineBounds(line)
	d.cursorLine = line
	d.selStart, d.selEnd = start, start
}

// Select sets the selection to the byte range [start, end). The cursor moves
// to the line containing end.
func (d *Document) Select(start, end int) {
	start = d.clampOffset(start)
	end = d.clampOffset(end)
	if end < start {
		start, end = end, start
	}
	d.selStart, d.selEnd = start, end
	d.cursorLine = d.lineAt(end)
}

// SelectLines selects whole lines fromLine..toLine. The terminator of the
// last line is not part of the selection.
func (d *Document) SelectLines(fromLine, toLine int) {
	fromLine = d.clampLine(fromLine)
	toLine = d.clampLine(toLine)
	if toLine < fromLine {
		fromLine, toLine = toLine, fromLine
	}
	start, _ := d.lineBounds(fromLine)
	lastStart, _ := d.lineBounds(toLine)
	end := lastStart + len(d.LineText(toLine))
	d.selStart, d.selEnd = start, end
	d.cursorLine = toLine
}

// Selection returns the current byte range.
func (d *Document) Selection() (int, int) {
	return d.selStart, d.selEnd
}

func (d *Document) LineCount() int {
	return strings.Count(d.text, "\n") + 1
}

func (d *Document) IsTestClass(documentFullText string) bool {
	return analyzer.ContainsTestClassMarker(documentFullText)
}

func (d *Document) DocumentText() string {
	return d.text
}

func (d *Document) CurrentSelectionText() string {
	return d.text[d.selStart:d.selEnd]
}

func (d *Document) CursorLineIndex() int {
	return d.cursorLine
}

func (d *Document) LineText(line int) string {
	if line < 1 || line > d.LineCount() {
		return ""
	}
	start, end := d.lineBounds(line)
	text := d.text[start:end]
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}

func (d *Document) WidenSelectionToLine(line int) {
	line = d.clampLine(line)
	d.selStart, d.selEnd = d.lineBounds(line)
	d.cursorLine = line
}

// ReplaceCurrentSelection splices newText over the selection and collapses
// the selection to the end of the inserted text.
func (d *Document) ReplaceCurrentSelection(newText string) {
	d.text = d.text[:d.selStart] + newText + d.text[d.selEnd:]
	d.selStart += len(newText)
	d.selEnd = d.selStart
	d.cursorLine = d.lineAt(d.selEnd)
}

// lineBounds returns [start, end) of line including its terminator.
func (d *Document) lineBounds(line int) (int, int) {
	start := 0
	for i := 1; i < line; i++ {
		idx := strings.IndexByte(d.text[start:], '\n')
		if idx < 0 {
			return len(d.text), len(d.text)
		}
		start += idx + 1
	}
	idx := strings.IndexByte(d.text[start:], '\n')
	if idx < 0 {
		return start, len(d.text)
	}
	return start, start + idx + 1
}

func (d *Document) lineAt(offset int) int {
	return strings.Count(d.text[:offset], "\n") + 1
}

func (d *Document) clampLine(line int) int {
	if line < 1 {
		return 1
	}
	if n := d.LineCount(); line > n {
		return n
	}
	return line
}

func (d *Document) clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(d.text) {
		return len(d.text)
	}
	return offset
}
