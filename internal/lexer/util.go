package lexer

import (
	"regexp"
	"strings"
)

// labelPattern is the validity rule for labels and macro/struct names.
var labelPattern = regexp.MustCompile(`^[A-Za-z_@$][A-Za-z0-9.$_@?]+$`)

func isValidLabel(name string) bool { return labelPattern.MatchString(name) }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\v' || b == '\f'
}

func isCommentMarker(b byte) bool { return b == '*' || b == ';' }

func isDec(b byte) bool { return b >= '0' && b <= '9' }
func isOct(b byte) bool { return b >= '0' && b <= '7' }
func isBin(b byte) bool { return b == '0' || b == '1' }
func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '@' || b == '$' || b == '?' ||
		(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// isIdentContinueByte excludes '.', which separates property accesses in operands.
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

// trimmedEnd returns the end offset of line with trailing whitespace dropped,
// never going below from.
func trimmedEnd(line string, from int) int {
	end := len(strings.TrimRight(line, " \t\r\n\v\f"))
	if end < from {
		return from
	}
	return end
}
