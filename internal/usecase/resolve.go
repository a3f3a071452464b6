package usecase

import (
	"strings"

	"stubgen/internal/domain"
	"stubgen/internal/port"
)

// Resolve gates the document on the test-class marker and classifies the
// current selection. It returns false when the document is not a test class;
// the caller must then leave the editor untouched.
func Resolve(surface port.EditorSurface) (domain.Resolution, bool) {
	if !surface.IsTestClass(surface.DocumentText()) {
		return domain.Resolution{}, false
	}

	sel := domain.Selection{
		Text:       surface.CurrentSelectionText(),
		CursorLine: surface.CursorLineIndex(),
	}
	return ResolveSelection(sel, surface.LineText), true
}

// ResolveSelection classifies sel. lineText is only consulted for an empty
// selection.
func ResolveSelection(sel domain.Selection, lineText func(int) string) domain.Resolution {
	switch {
	case len(sel.Text) == 0:
		return domain.Resolution{
			Lines:       []domain.Line{domain.Line(strings.TrimSpace(lineText(sel.CursorLine)))},
			Mode:        domain.ModeEmpty,
			WidenToLine: true,
		}

	case !strings.Contains(sel.Text, domain.LineBreak):
		return domain.Resolution{
			Lines: []domain.Line{domain.Line(strings.TrimSpace(sel.Text))},
			Mode:  domain.ModeSingle,
		}

	default:
		parts := strings.Split(sel.Text, domain.LineBreak)
		lines := make([]domain.Line, len(parts))
		for i, p := range parts {
			lines[i] = domain.Line(p)
		}
		return domain.Resolution{
			Lines: lines,
			Mode:  domain.ModeMulti,
		}
	}
}
