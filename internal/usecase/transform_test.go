package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stubgen/internal/adapter/buffer"
	"stubgen/internal/adapter/stub"
	"stubgen/internal/domain"
)

const header = "[TestClass]\r\npublic class CalcTests\r\n{\r\n"

func newTransformer() *Transformer {
	return NewTransformer(stub.NewGenerator(""), nil)
}

func stubFor(id string) string {
	return "[TestMethod]\r\npublic void " + id + "() \r\n{\r\n" +
		"// Arrange\r\n\r\n\r\n// Act\r\n\r\n\r\n// Assert\r\n\r\n\r\n" +
		"throw new NotImplementedException();\r\n"
}

func TestApply_SingleSelection(t *testing.T) {
	text := header + "adds two numbers\r\n}"
	doc := buffer.NewDocument(text, 1)
	start := strings.Index(text, "adds")
	doc.Select(start, start+len("adds two numbers"))

	out := newTransformer().Apply(doc)

	require.True(t, out.Applied)
	assert.Equal(t, "single", out.Mode)
	assert.Equal(t, stubFor("adds_two_numbers"), out.Replacement)
	assert.Equal(t, header+stubFor("adds_two_numbers")+"\r\n}", doc.Text())
}

func TestApply_EmptySelectionWidensToLine(t *testing.T) {
	text := header + "    adds two numbers\r\n}"
	doc := buffer.NewDocument(text, 4)

	out := newTransformer().Apply(doc)

	require.True(t, out.Applied)
	assert.Equal(t, "empty", out.Mode)
	assert.Equal(t, header+stubFor("adds_two_numbers")+"}", doc.Text())
}

func TestApply_EmptySelectionOnBlankLine(t *testing.T) {
	text := header + "   \r\n}"
	doc := buffer.NewDocument(text, 4)

	out := newTransformer().Apply(doc)

	assert.False(t, out.Applied)
	assert.Equal(t, domain.ReasonNothingToDo, out.Reason)
	assert.Equal(t, text, doc.Text())
}

func TestApply_MultiSelection(t *testing.T) {
	text := header + "case one\r\ncase two\r\n}"
	doc := buffer.NewDocument(text, 1)
	doc.SelectLines(4, 5)

	out := newTransformer().Apply(doc)

	require.True(t, out.Applied)
	assert.Equal(t, "multi", out.Mode)

	want := stubFor("case_one") + "}\r\n" + stubFor("case_two") + "}\r\n"
	assert.Equal(t, want, out.Replacement)
	assert.Equal(t, header+want+"\r\n}", doc.Text())
	assert.Less(t, strings.Index(out.Replacement, "case_one"), strings.Index(out.Replacement, "case_two"))
}

func TestApply_MultiSelectionTrailingBreak(t *testing.T) {
	text := header + "case one\r\n}"
	doc := buffer.NewDocument(text, 1)
	start := strings.Index(text, "case one")
	doc.Select(start, start+len("case one\r\n"))

	out := newTransformer().Apply(doc)

	require.True(t, out.Applied)
	// The empty segment passes through and still gets a closing brace.
	assert.Equal(t, stubFor("case_one")+"}\r\n"+"}\r\n", out.Replacement)
}

func TestApply_NotATestClass(t *testing.T) {
	text := "public class Calc\r\n{\r\nadds two numbers\r\n}"
	doc := buffer.NewDocument(text, 3)
	doc.SelectLines(3, 3)

	out := newTransformer().Apply(doc)

	assert.False(t, out.Applied)
	assert.Equal(t, domain.ReasonNotTestClass, out.Reason)
	assert.Equal(t, text, doc.Text())
}

func TestAssemble_BlockCount(t *testing.T) {
	tr := newTransformer()
	res := domain.Resolution{
		Lines: []domain.Line{"one", "two", "three"},
		Mode:  domain.ModeMulti,
	}

	got := tr.Assemble(res)
	assert.Equal(t, 3, strings.Count(got, "[TestMethod]"))
	assert.Equal(t, 3, strings.Count(got, "}\r\n"))
}

type recordingSurface struct {
	doc      string
	sel      string
	cursor   int
	widened  int
	replaced []string
}

func (s *recordingSurface) IsTestClass(text string) bool {
	return strings.Contains(text, "[TestClass]")
}
func (s *recordingSurface) DocumentText() string             { return s.doc }
func (s *recordingSurface) CurrentSelectionText() string     { return s.sel }
func (s *recordingSurface) CursorLineIndex() int             { return s.cursor }
func (s *recordingSurface) LineText(int) string              { return "from cursor" }
func (s *recordingSurface) WidenSelectionToLine(line int)    { s.widened = line }
func (s *recordingSurface) ReplaceCurrentSelection(t string) { s.replaced = append(s.replaced, t) }

func TestApply_SurfaceCalls(t *testing.T) {
	s := &recordingSurface{doc: "[TestClass]", cursor: 7}

	newTransformer().Apply(s)

	assert.Equal(t, 7, s.widened)
	require.Len(t, s.replaced, 1)
	assert.Equal(t, stubFor("from_cursor"), s.replaced[0])

	s = &recordingSurface{doc: "[TestClass]", sel: "picked", cursor: 7}
	newTransformer().Apply(s)

	assert.Equal(t, 0, s.widened)
	require.Len(t, s.replaced, 1)
}

func TestApply_GateSkipsSurface(t *testing.T) {
	s := &recordingSurface{doc: "class Plain", sel: "picked"}

	newTransformer().Apply(s)

	assert.Empty(t, s.replaced)
}
