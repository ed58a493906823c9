package fuzztests

import (
	"strings"
	"testing"
)

const maxSeedBytes = 64 << 10

// languageSeeds covers every operand grammar and literal form.
var languageSeeds = []string{
	"",
	"   ",
	"* banner comment",
	"  ; indented comment",
	"10 start lda #$7F80 ; line number",
	"start: ldx #message",
	":",
	"loop@ leax 1,x",
	" bne loop@",
	"SCREEN equ $0400",
	"count set count+1",
	" fcc /hello/",
	" fcc \"unterminated",
	" fcs 'A",
	" pragma 6309,noindex",
	"*pragmapush list",
	" include \"defs.inc\" trailing",
	" includebin sprites.bin",
	" ldd #0x7F80+7F80H-0FFH",
	" lda #@755+755o+755q",
	" andcc #%11001010|10101100b",
	" ldb #42&&&42||'A++\"AB--",
	"things struct",
	"one rmb 1",
	" ends",
	"test things",
	" lda #test.one",
	"mac macro",
	" endm",
	" export start",
	" rts trailing words",
	"\x00\xff\tbad$$?",
}

func addSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	f.Add([]byte(strings.Join(languageSeeds, "\n")))
}

func clamp(input []byte) []byte {
	if len(input) > maxSeedBytes {
		input = input[:maxSeedBytes]
	}
	return append([]byte(nil), input...)
}
