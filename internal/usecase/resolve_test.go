package usecase

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"stubgen/internal/adapter/buffer"
	"stubgen/internal/domain"
)

func TestResolveSelection(t *testing.T) {
	lineText := func(line int) string {
		if line == 3 {
			return "   adds two numbers  "
		}
		return ""
	}

	tests := []struct {
		name string
		sel  domain.Selection
		want domain.Resolution
	}{
		{
			name: "empty selection takes the cursor line",
			sel:  domain.Selection{CursorLine: 3},
			want: domain.Resolution{
				Lines:       []domain.Line{"adds two numbers"},
				Mode:        domain.ModeEmpty,
				WidenToLine: true,
			},
		},
		{
			name: "single line is trimmed",
			sel:  domain.Selection{Text: "  adds two numbers\t", CursorLine: 1},
			want: domain.Resolution{
				Lines: []domain.Line{"adds two numbers"},
				Mode:  domain.ModeSingle,
			},
		},
		{
			name: "bare line feed is not a line break",
			sel:  domain.Selection{Text: "one\ntwo"},
			want: domain.Resolution{
				Lines: []domain.Line{"one\ntwo"},
				Mode:  domain.ModeSingle,
			},
		},
		{
			name: "multi line keeps segments verbatim",
			sel:  domain.Selection{Text: "  case one\r\ncase two  "},
			want: domain.Resolution{
				Lines: []domain.Line{"  case one", "case two  "},
				Mode:  domain.ModeMulti,
			},
		},
		{
			name: "terminal break yields trailing empty segment",
			sel:  domain.Selection{Text: "case one\r\n"},
			want: domain.Resolution{
				Lines: []domain.Line{"case one", ""},
				Mode:  domain.ModeMulti,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveSelection(tt.sel, lineText)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ResolveSelection() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_GateFails(t *testing.T) {
	doc := buffer.NewDocument("public class Calc\r\n{\r\nadds two numbers\r\n}", 3)

	_, ok := Resolve(doc)
	if ok {
		t.Error("expected no-op signal for a document without the marker")
	}
}

func TestResolve_ReadsSurface(t *testing.T) {
	doc := buffer.NewDocument("[TestClass]\r\nadds two numbers\r\n", 2)

	res, ok := Resolve(doc)
	if !ok {
		t.Fatal("expected gate to pass")
	}
	want := domain.Resolution{
		Lines:       []domain.Line{"adds two numbers"},
		Mode:        domain.ModeEmpty,
		WidenToLine: true,
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}
