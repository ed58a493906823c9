package parser

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"asm09/internal/dialect"
	"asm09/internal/lexer"
	"asm09/internal/symbols"
	"asm09/internal/token"
)

// ParseLine tokenizes text and derives its semantic fields. st is updated in
// place and must be passed to the next line of the same document.
func ParseLine(uri protocol.DocumentUri, text string, st *State, lineNumber int) *Line {
	line := &Line{
		LineNumber: lineNumber,
		Text:       text,
		Tokens:     lexer.Tokenize(text),
	}
	pending := st.takeLonely()

	if line.IsBlank() {
		st.BlockNumber++
		line.BlockNumber = st.BlockNumber
		return line
	}
	line.BlockNumber = st.BlockNumber

	p := lineParser{uri: uri, st: st, line: line}
	p.collect()

	if line.IsCommentOnly() {
		if n := len(pending); n > 0 {
			appendDoc(pending[n-1], line.Comment.Text)
		}
		return line
	}

	p.applyOpcode()
	p.collectOperand()

	if line.Label != nil && line.OpCode == nil {
		st.LonelyLabels = append(st.LonelyLabels, line.Label)
	}
	return line
}

type lineParser struct {
	uri  protocol.DocumentUri
	st   *State
	line *Line

	opIndex int
}

// collect picks out the label, opcode and comment tokens.
func (p *lineParser) collect() {
	p.opIndex = -1
	for i := range p.line.Tokens {
		tok := &p.line.Tokens[i]
		switch tok.Kind {
		case token.Label:
			if tok.Length == 0 {
				continue
			}
			sym := p.symbol(*tok)
			if !tok.Local {
				sym.BlockNumber = symbols.GlobalBlock
			}
			p.line.Label = sym
		case token.OpCode, token.MacroOrStruct:
			p.line.OpCode = tok
			p.opIndex = i
		case token.Comment:
			p.line.Comment = tok
		}
	}
	if p.line.Label != nil && p.line.Comment != nil {
		p.line.Label.Documentation = commentText(p.line.Comment.Text)
	}
}

func (p *lineParser) symbol(tok token.Token) *symbols.Symbol {
	sym := symbols.New(tok, p.uri, p.line.LineNumber)
	sym.BlockNumber = p.st.BlockNumber
	return sym
}

// applyOpcode applies the label-affecting role of the opcode field.
func (p *lineParser) applyOpcode() {
	op := p.line.OpCode
	if op == nil {
		return
	}
	label := p.line.Label
	if op.Kind == token.MacroOrStruct {
		inv := p.symbol(*op)
		inv.BlockNumber = symbols.GlobalBlock
		p.line.References = append(p.line.References, inv)
		if label != nil {
			label.Type = token.TypeVariable
			label.Instance = inv
		}
		return
	}

	switch dialect.RoleOf(op.Text) {
	case dialect.RoleConstant:
		if label != nil {
			label.Modifiers |= token.ModReadonly | token.ModDefinition
			label.Type = token.TypeVariable
			label.Value = p.operandText()
		}
	case dialect.RoleStorage:
		if label == nil {
			return
		}
		if s := p.st.OpenStruct; s != nil {
			label.Kind = token.Property
			label.Type = token.TypeProperty
			s.AddProperty(label)
			return
		}
		label.Type = token.TypeVariable
		label.Modifiers |= token.ModDefinition
	case dialect.RoleMacroOpen:
		if label != nil {
			label.Type = token.TypeMacro
			p.st.OpenMacro = label
		}
	case dialect.RoleMacroClose:
		p.st.OpenMacro = nil
		p.line.Label = nil
	case dialect.RoleStructOpen:
		if label != nil {
			label.Type = token.TypeStruct
			p.st.OpenStruct = label
		}
	case dialect.RoleStructClose:
		p.st.OpenStruct = nil
		p.line.Label = nil
	case dialect.RoleExternal:
		if label != nil {
			label.Kind = token.Reference
			label.Type = token.TypeVariable
			label.Modifiers = token.ModDeclaration
			p.line.References = append(p.line.References, label)
			p.line.Label = nil
		}
	}
}

// collectOperand turns operand identifiers into reference and property symbols.
func (p *lineParser) collectOperand() {
	if p.opIndex < 0 {
		return
	}
	p.line.Operand = p.operandText()

	var last *symbols.Symbol
	for _, tok := range p.line.Tokens[p.opIndex+1:] {
		switch tok.Kind {
		case token.Reference:
			last = p.symbol(tok)
			p.line.References = append(p.line.References, last)
		case token.Property:
			if last == nil {
				last = p.symbol(tok)
				last.Kind = token.Reference
				p.line.References = append(p.line.References, last)
				continue
			}
			prop := p.symbol(tok)
			last.AddChild(prop)
			p.line.Properties = append(p.line.Properties, prop)
			last = prop
		case token.File:
			f := tok
			p.line.File = &f
		case token.Comment:
			return
		default:
			if tok.Text != "." {
				last = nil
			}
		}
	}
}

// operandText returns the source text between the opcode and the comment.
func (p *lineParser) operandText() string {
	if p.opIndex < 0 {
		return ""
	}
	toks := p.line.Tokens[p.opIndex+1:]
	start, end := -1, -1
	for _, tok := range toks {
		if tok.Kind == token.Comment {
			break
		}
		if start < 0 {
			start = tok.Column
		}
		end = tok.End()
	}
	if start < 0 {
		return ""
	}
	return p.line.Text[start:end]
}

// commentText strips comment markers and surrounding blanks.
func commentText(s string) string {
	return strings.TrimSpace(strings.TrimLeft(s, "*;"))
}

func appendDoc(sym *symbols.Symbol, comment string) {
	text := commentText(comment)
	if sym.Documentation != "" {
		sym.Documentation += "\n" + text
		return
	}
	sym.Documentation = text
}
