package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"stubgen/internal/adapter/stub"
	"stubgen/internal/domain"
	"stubgen/internal/usecase"
)

var generateCmd = &cobra.Command{
	Use:   "generate [text...]",
	Short: "Print the stub for a test description",
	Long: `Generate a test method stub from the given description. Without arguments
the description is read from stdin; line feeds are normalized to CRLF and every
line becomes its own closed stub.

Examples:
  stubgen generate adds two numbers
  printf 'case one\ncase two\n' | stubgen generate`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = normalizeLineBreaks(string(data))
		text = strings.TrimSuffix(text, domain.LineBreak)
	}

	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no test description given")
	}

	tr := usecase.NewTransformer(stub.NewGenerator(GetConfig().Stub.FailStatement), GetLogger())
	res := usecase.ResolveSelection(domain.Selection{Text: text}, nil)

	fmt.Fprint(cmd.OutOrStdout(), tr.Assemble(res))
	return nil
}

// normalizeLineBreaks rewrites bare "\n" as "\r\n".
func normalizeLineBreaks(s string) string {
	s = strings.ReplaceAll(s, domain.LineBreak, "\n")
	return strings.ReplaceAll(s, "\n", domain.LineBreak)
}
