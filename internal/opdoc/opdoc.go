// Package opdoc loads hover documentation for opcodes and pseudo-ops.
//
// A table is tab-separated text, one row per word:
//
//	name	processor	class	summary	description
//
// Blank lines and lines starting with '#' are skipped. A malformed row is
// logged as "opdoc.row" and dropped; the rest of the table still loads.
package opdoc

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"asm09/internal/dialect"
	"asm09/internal/trace"
)

//go:embed opcodes.tsv
var defaultTable string

// Entry documents one opcode-field word.
type Entry struct {
	Name        string
	Processor   dialect.Processor
	Class       dialect.OpClass
	Summary     string
	Description string
}

// Table maps lower-case names to entries.
type Table struct {
	entries map[string]Entry
}

// Default parses the built-in table.
func Default(ctx context.Context) *Table {
	t, _ := Parse(ctx, strings.NewReader(defaultTable), "builtin")
	return t
}

// Parse reads a table from r. origin names the source in row logs. The
// returned error is reserved for read failures; the table holds every good
// row read so far.
func Parse(ctx context.Context, r io.Reader, origin string) (*Table, error) {
	tr := trace.FromContext(ctx)
	t := &Table{entries: make(map[string]Entry)}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		e, err := parseRow(text)
		if err != nil {
			trace.Log(tr, trace.LevelWarn, trace.ScopeDriver, "opdoc.row", err.Error(),
				"origin", origin, "line", strconv.Itoa(line))
			continue
		}
		t.entries[strings.ToLower(e.Name)] = e
	}
	if err := sc.Err(); err != nil {
		return t, fmt.Errorf("read %s: %w", origin, err)
	}
	return t, nil
}

func parseRow(text string) (Entry, error) {
	fields := strings.Split(text, "\t")
	if len(fields) < 4 || len(fields) > 5 {
		return Entry{}, fmt.Errorf("expected 4 or 5 tab-separated fields, got %d", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	e := Entry{Name: fields[0], Summary: fields[3]}
	if e.Name == "" {
		return Entry{}, fmt.Errorf("empty name")
	}
	var err error
	if e.Processor, err = dialect.ParseProcessor(fields[1]); err != nil {
		return Entry{}, fmt.Errorf("%s: %w", e.Name, err)
	}
	if e.Class, err = dialect.ParseClass(fields[2]); err != nil {
		return Entry{}, fmt.Errorf("%s: %w", e.Name, err)
	}
	if known := dialect.Classify(e.Name); known.Known() && known != e.Class {
		return Entry{}, fmt.Errorf("%s: class %s conflicts with %s", e.Name, e.Class, known)
	}
	if len(fields) == 5 {
		e.Description = fields[4]
	}
	return e, nil
}

// Lookup finds the entry for name, ignoring case.
func (t *Table) Lookup(name string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.entries[strings.ToLower(name)]
	return e, ok
}

// Merge overlays other onto t; rows in other win.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	maps.Copy(t.entries, other.entries)
}

// Names returns the documented names in sorted order.
func (t *Table) Names() []string {
	return slices.Sorted(maps.Keys(t.entries))
}

func (t *Table) Len() int { return len(t.entries) }

// Markdown renders an entry for a hover.
func (e Entry) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s** (%s, %s)\n\n%s", strings.ToUpper(e.Name), e.Processor, e.Class, e.Summary)
	if e.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(e.Description)
	}
	return b.String()
}
