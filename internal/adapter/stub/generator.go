package stub

import (
	"strings"

	"stubgen/config"
	"stubgen/internal/adapter/analyzer"
	"stubgen/internal/domain"
)

const (
	annotation      = "[TestMethod]"
	signaturePrefix = "public void "
	signatureSuffix = "() "
	openBrace       = "{"
	CloseBrace      = "}"
)

var sections = []string{"// Arrange", "// Act", "// Assert"}

// Generator assembles MSTest method stubs.
type Generator struct {
	failStatement string
}

// NewGenerator creates a generator ending every stub with failStatement.
func NewGenerator(failStatement string) *Generator {
	if failStatement == "" {
		failStatement = config.DefaultFailStatement
	}
	return &Generator{failStatement: failStatement}
}

// Generate builds a stub for line, or returns line unchanged when it does not
// qualify. The stub has no closing brace.
func (g *Generator) Generate(line string) string {
	if !analyzer.Qualifies(line) {
		return line
	}

	id := analyzer.Sanitize(line)

	var sb strings.Builder
	writeLine(&sb, annotation)
	writeLine(&sb, signaturePrefix+id+signatureSuffix)
	writeLine(&sb, openBrace)
	for _, section := range sections {
		writeLine(&sb, section)
		writeLine(&sb, "")
		writeLine(&sb, "")
	}
	writeLine(&sb, g.failStatement)
	return sb.String()
}

func writeLine(sb *strings.Builder, s string) {
	sb.WriteString(s)
	sb.WriteString(domain.LineBreak)
}
