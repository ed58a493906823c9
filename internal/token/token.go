package token

// Token is a single lexical unit of one source line.
type Token struct {
	Text      string
	Column    int
	Length    int
	Kind      Kind
	Type      Type
	Modifiers Modifiers
	Valid     bool
	Local     bool
}

// End returns the column just past the token.
func (t Token) End() int { return t.Column + t.Length }

// IsNumber reports whether the token is a numeric or character literal.
func (t Token) IsNumber() bool { return t.Type == TypeNumber }

// IsOperator reports whether the token is an operator or separator.
func (t Token) IsOperator() bool { return t.Type == TypeOperator }

// IsComment reports whether the token is a comment.
func (t Token) IsComment() bool { return t.Kind == Comment }

// IsLocalName reports whether an identifier contains a local-label marker ($ @ ?).
func IsLocalName(name string) bool {
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '$', '@', '?':
			return true
		}
	}
	return false
}
