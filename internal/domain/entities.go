package domain

// LineBreak is the only sequence treated as a line break inside a selection.
const LineBreak = "\r\n"

// TestClassMarker marks a document as eligible for stub generation.
const TestClassMarker = "[TestClass]"

// Line is a single editor line as raw text.
type Line string

type Mode int

const (
	ModeEmpty Mode = iota
	ModeSingle
	ModeMulti
)

func (m Mode) String() string {
	switch m {
	case ModeEmpty:
		return "empty"
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// Selection is a snapshot of the editor selection, read once per pass.
type Selection struct {
	Text       string
	CursorLine int // 1-based
}

// Resolution is what the resolver extracted from a Selection.
type Resolution struct {
	Lines []Line
	Mode  Mode
	// WidenToLine is set for ModeEmpty: the edit region becomes the whole
	// cursor line including its terminator.
	WidenToLine bool
}

type Reason string

const (
	ReasonApplied      Reason = "applied"
	ReasonNotTestClass Reason = "not a test class"
	ReasonNothingToDo  Reason = "line does not qualify"
)

// Outcome reports what a single transformation pass did.
type Outcome struct {
	Applied     bool   `json:"applied"`
	Reason      Reason `json:"reason"`
	Mode        string `json:"mode,omitempty"`
	Replacement string `json:"replacement,omitempty"`
}

// ScanResult describes one file visited by the scan command.
type ScanResult struct {
	Path      string `json:"path"`
	TestClass bool   `json:"test_class"`
	Lines     int    `json:"lines"`
}
