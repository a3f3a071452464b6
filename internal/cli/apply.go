package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stubgen/internal/adapter/buffer"
	"stubgen/internal/adapter/stub"
	"stubgen/internal/usecase"
)

var (
	applyLine  int
	applyFrom  int
	applyTo    int
	applyStart int
	applyEnd   int
	applyWrite bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <file>",
	Short: "Expand a selection of a test file into stubs",
	Long: `Load a source file, select text the way an editor would, and replace the
selection with generated stubs. Nothing changes unless the file contains
[TestClass].

Selection (pick one):
  --line N            empty selection on line N; the whole line is replaced
  --from A --to B     lines A..B (each line becomes a closed stub)
  --start S --end E   byte range [S, E)

Examples:
  stubgen apply CalcTests.cs --line 12
  stubgen apply CalcTests.cs --from 12 --to 15 --write`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().IntVarP(&applyLine, "line", "l", 0, "cursor line (1-based) for an empty selection")
	applyCmd.Flags().IntVar(&applyFrom, "from", 0, "first selected line (1-based)")
	applyCmd.Flags().IntVar(&applyTo, "to", 0, "last selected line (default: --from)")
	applyCmd.Flags().IntVar(&applyStart, "start", -1, "selection start byte offset")
	applyCmd.Flags().IntVar(&applyEnd, "end", -1, "selection end byte offset")
	applyCmd.Flags().BoolVarP(&applyWrite, "write", "w", false, "rewrite the file in place instead of printing it")
}

func runApply(cmd *cobra.Command, args []string) error {
	path := args[0]
	log := GetLogger()

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	doc := buffer.NewDocument(string(data), 1)
	switch {
	case applyStart >= 0 || applyEnd >= 0:
		if applyStart < 0 || applyEnd < 0 {
			return fmt.Errorf("--start and --end must be given together")
		}
		doc.Select(applyStart, applyEnd)
	case applyFrom > 0:
		to := applyTo
		if to == 0 {
			to = applyFrom
		}
		doc.SelectLines(applyFrom, to)
	case applyLine > 0:
		doc.SetCursor(applyLine)
	default:
		return fmt.Errorf("one of --line, --from or --start is required")
	}

	tr := usecase.NewTransformer(stub.NewGenerator(GetConfig().Stub.FailStatement), log)
	outcome := tr.Apply(doc)

	log.Info("transformation finished",
		zap.String("file", path),
		zap.Bool("applied", outcome.Applied),
		zap.String("reason", string(outcome.Reason)),
		zap.String("mode", outcome.Mode))

	if applyWrite {
		if !outcome.Applied {
			return nil
		}
		if err := os.WriteFile(path, []byte(doc.Text()), info.Mode().Perm()); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s selection)\n", path, outcome.Mode)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), doc.Text())
	return nil
}
