package usecase

import (
	"strings"

	"go.uber.org/zap"

	"stubgen/internal/adapter/stub"
	"stubgen/internal/domain"
	"stubgen/internal/port"
)

// Transformer runs one gate/resolve/generate/commit pass against an editor.
// It keeps no editor state between calls.
type Transformer struct {
	generator port.StubGenerator
	logger    *zap.Logger
}

// NewTransformer creates a transformer. A nil logger disables logging.
func NewTransformer(generator port.StubGenerator, logger *zap.Logger) *Transformer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transformer{
		generator: generator,
		logger:    logger,
	}
}

// Apply transforms the current selection of surface in place.
func (t *Transformer) Apply(surface port.EditorSurface) domain.Outcome {
	res, ok := Resolve(surface)
	if !ok {
		t.logger.Debug("document has no test-class marker, skipping")
		return domain.Outcome{Reason: domain.ReasonNotTestClass}
	}

	t.logger.Debug("selection resolved",
		zap.String("mode", res.Mode.String()),
		zap.Int("lines", len(res.Lines)))

	replacement := t.Assemble(res)

	// An empty cursor line passes through the generator unchanged; widening
	// and replacing it would delete the line.
	if res.Mode == domain.ModeEmpty && replacement == string(res.Lines[0]) {
		return domain.Outcome{Reason: domain.ReasonNothingToDo, Mode: res.Mode.String()}
	}

	if res.WidenToLine {
		surface.WidenSelectionToLine(surface.CursorLineIndex())
	}
	surface.ReplaceCurrentSelection(replacement)

	t.logger.Debug("selection replaced", zap.Int("bytes", len(replacement)))

	return domain.Outcome{
		Applied:     true,
		Reason:      domain.ReasonApplied,
		Mode:        res.Mode.String(),
		Replacement: replacement,
	}
}

// Assemble builds the replacement text for a resolution. In multi-line mode
// every generated block, including pass-through blank segments, is followed
// by a closing brace line; single and empty modes get no closing brace.
func (t *Transformer) Assemble(res domain.Resolution) string {
	if res.Mode != domain.ModeMulti {
		return t.generator.Generate(string(res.Lines[0]))
	}

	var sb strings.Builder
	for _, line := range res.Lines {
		sb.WriteString(t.generator.Generate(string(line)))
		sb.WriteString(stub.CloseBrace)
		sb.WriteString(domain.LineBreak)
	}
	return sb.String()
}
