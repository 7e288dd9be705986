package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestInterface(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name     string
		input    string
		want     []string
		dontWant []string
	}{
		{
			name:  "fen round trip",
			input: "position fen 8/8/8/8/4P3/8/8/4K2k b - e3 0 1\nfen\nquit\nfen\n",
			want:  []string{"8/8/8/8/4P3/8/8/4K2k b - e3 0 1"},
		},
		{
			name:  "rejected position keeps the board",
			input: "position fen 8/8/8 w - - 0 1\nfen\n",
			want: []string{
				"error: cannot load position",
				"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			},
		},
		{
			name:  "flip and history",
			input: "push\nflip\npop\nfen\npop\n",
			want: []string{
				"history 1",
				"Black",
				"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
				"error: history is empty",
			},
		},
		{
			name:  "notation",
			input: "move e7e8q\nmove e2e9\nsquare e4\nsquare h8\n",
			want: []string{
				"e7e8q: Black Pawn e7 -> e8",
				"error: invalid move",
				"e4=28",
				"h8=63 Black Rook",
			},
		},
		{
			name:     "unknown",
			input:    "go depth 5\n",
			want:     []string{`error: unknown command "go"`},
			dontWant: []string{"bestmove"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := NewInterface(strings.NewReader(tt.input), &out).Run(); err != nil {
				t.Fatal("unexpected error:", err)
			}
			got := out.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q:\n%s", w, got)
				}
			}
			for _, w := range tt.dontWant {
				if strings.Contains(got, w) {
					t.Errorf("output contains %q:\n%s", w, got)
				}
			}
		})
	}
}
