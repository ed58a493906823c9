package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"asm09/internal/diagfmt"
	"asm09/internal/lexer"
	"asm09/internal/opdoc"
	"asm09/internal/parser"
)

const (
	replHistoryFile = ".asm09_history"
	replPrompt      = "asm09> "
	replURI         = "untitled:repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse assembly lines interactively",
	Long: `Repl parses each typed line with the state left by the previous one, so
blocks, open structs and macros carry over. Commands: :tokens, :state, :reset,
:op NAME, :quit.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

type replSession struct {
	out        io.Writer
	opts       diagfmt.PrettyOpts
	docs       *opdoc.Table
	state      *parser.State
	line       int
	showTokens bool
}

func runRepl(cmd *cobra.Command, _ []string) error {
	docs, err := loadOpcodeTable(cmd)
	if err != nil {
		return err
	}
	s := &replSession{
		out:   cmd.OutOrStdout(),
		opts:  diagfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)},
		docs:  docs,
		state: parser.NewState(),
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, replHistoryFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		text, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("repl: %w", err)
		}
		if strings.TrimSpace(text) != "" {
			ln.AppendHistory(text)
		}
		if quit := s.handle(text); quit {
			return nil
		}
	}
}

// handle evaluates one input line and reports whether the session ends.
func (s *replSession) handle(text string) bool {
	if cmd, ok := strings.CutPrefix(strings.TrimSpace(text), ":"); ok {
		return s.command(cmd)
	}
	line := parser.ParseLine(replURI, text, s.state, s.line)
	s.line++
	if line.IsBlank() {
		fmt.Fprintf(s.out, "block %d\n", line.BlockNumber)
		return false
	}
	diagfmt.FormatLinePretty(s.out, line, s.opts)
	if s.showTokens {
		_ = diagfmt.FormatTokensPretty(s.out, line.LineNumber, line.Tokens, s.opts)
	}
	return false
}

func (s *replSession) command(cmd string) bool {
	name, arg, _ := strings.Cut(cmd, " ")
	switch strings.ToLower(name) {
	case "quit", "q", "exit":
		return true
	case "reset":
		s.state = parser.NewState()
		s.line = 0
		fmt.Fprintln(s.out, "state reset")
	case "tokens":
		s.showTokens = !s.showTokens
		fmt.Fprintf(s.out, "tokens %s\n", map[bool]string{true: "on", false: "off"}[s.showTokens])
	case "state":
		s.printState()
	case "op":
		s.printOpcode(strings.TrimSpace(arg))
	case "lex":
		_ = diagfmt.FormatTokensPretty(s.out, s.line, lexer.Tokenize(arg), s.opts)
	default:
		fmt.Fprintln(s.out, "unknown command. Type :quit to exit.")
	}
	return false
}

func (s *replSession) printState() {
	fmt.Fprintf(s.out, "line %d, block %d\n", s.line+1, s.state.BlockNumber)
	if st := s.state.OpenStruct; st != nil {
		fmt.Fprintf(s.out, "open struct %s (%d members)\n", st.Text, len(st.Properties))
	}
	if m := s.state.OpenMacro; m != nil {
		fmt.Fprintf(s.out, "open macro %s\n", m.Text)
	}
	for _, l := range s.state.LonelyLabels {
		fmt.Fprintf(s.out, "pending label %s\n", l.Text)
	}
}

func (s *replSession) printOpcode(name string) {
	e, ok := s.docs.Lookup(name)
	if !ok {
		fmt.Fprintf(s.out, "no documentation for %q\n", name)
		return
	}
	fmt.Fprintln(s.out, e.Markdown())
}
