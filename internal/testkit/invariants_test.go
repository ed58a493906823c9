package testkit

import (
	"testing"

	"asm09/internal/token"
)

func TestCheckTokens(t *testing.T) {
	line := "start lda #1"
	good := []token.Token{
		{Text: "start", Column: 0, Length: 5},
		{Text: "lda", Column: 6, Length: 3},
		{Text: "#", Column: 10, Length: 1},
		{Text: "1", Column: 11, Length: 1},
	}
	if err := CheckTokens(line, good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string][]token.Token{
		"empty":    {{Text: "", Column: 0, Length: 0, Valid: true}},
		"overflow": {{Text: "1x", Column: 11, Length: 2}},
		"mismatch": {{Text: "stop", Column: 0, Length: 4}},
		"overlap":  {{Text: "start", Column: 0, Length: 5}, {Text: "rt", Column: 3, Length: 2}},
	}
	for name, toks := range cases {
		if err := CheckTokens(line, toks); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
