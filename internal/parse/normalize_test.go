package parse

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "rule line removed",
			input: "before\n--------\nafter",
			want:  "before\n\nafter",
		},
		{
			name:  "em dash rule line removed",
			input: "before\n————————\nafter",
			want:  "before\n\nafter",
		},
		{
			name:  "short dash run kept",
			input: "a --- b",
			want:  "a --- b",
		},
		{
			name:  "hyphen banner canonicalized",
			input: "--- Chapter 3 ---",
			want:  "———— Chapter 3 ————",
		},
		{
			name:  "long banner canonicalized",
			input: "-------- Chapter 12 --------",
			want:  "———— Chapter 12 ————",
		},
		{
			name:  "canonical banner unchanged",
			input: "———— Chapter 3 ————",
			want:  "———— Chapter 3 ————",
		},
		{
			name:  "text without markers passes through",
			input: "[Hill '79] Hill, D. R. (1979). Some title.",
			want:  "[Hill '79] Hill, D. R. (1979). Some title.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"intro\n-----\n--- Chapter 1 ---\n[A '99] entry one.\n——— Chapter 2 ———\n[B '01] entry two.",
		"———— Chapter 5 ————\ntext",
		"plain text, no structure",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q:\nonce:  %q\ntwice: %q", input, once, twice)
		}
	}
}

func TestNormalizePreservesEntryText(t *testing.T) {
	input := "[Knuth '97] Knuth, D. E. (1997). The Art of Computer Programming."
	if got := Normalize(input); !strings.Contains(got, "Knuth, D. E.") {
		t.Errorf("entry text damaged: %q", got)
	}
}
