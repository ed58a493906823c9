package incgraph_test

import (
	"context"
	"slices"
	"testing"

	"asm09/internal/document"
	"asm09/internal/incgraph"
	"asm09/internal/source"
	"asm09/internal/symbols"
)

func load(t *testing.T, files map[string]string) []*document.Document {
	t.Helper()
	ov := source.NewOverlay(nil)
	uris := make([]string, 0, len(files))
	for uri, text := range files {
		ov.Open(uri, text)
		uris = append(uris, uri)
	}
	slices.Sort(uris)
	mgr := symbols.NewManager()
	docs := make([]*document.Document, 0, len(uris))
	for _, uri := range uris {
		doc := document.Create(context.Background(), uri, ov, mgr)
		if doc == nil {
			t.Fatalf("could not load %s", uri)
		}
		docs = append(docs, doc)
	}
	return docs
}

func TestIncludesComeFirst(t *testing.T) {
	docs := load(t, map[string]string{
		"file:///g/main.asm": " include \"a.inc\"\n include \"b.inc\"\n",
		"file:///g/a.inc":    " include \"b.inc\"\n",
		"file:///g/b.inc":    "B equ 1\n",
		"file:///g/c.asm":    " include \"missing.inc\"\n",
	})
	idx := incgraph.BuildIndex(docs)
	if len(idx.IDToURI) != 5 {
		t.Fatalf("expected 5 nodes, got %v", idx.IDToURI)
	}
	g, missing := incgraph.BuildGraph(idx, docs)
	if len(missing) != 1 || missing[0].From != "file:///g/c.asm" || missing[0].To != "file:///g/missing.inc" {
		t.Fatalf("unexpected missing links %+v", missing)
	}

	topo := incgraph.ToposortKahn(g)
	if topo.Cyclic {
		t.Fatalf("unexpected cycle %v", idx.Names(topo.Cycles))
	}
	want := []string{"file:///g/b.inc", "file:///g/c.asm", "file:///g/a.inc", "file:///g/main.asm"}
	if got := idx.Names(topo.Order); !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if len(topo.Batches) != 3 || len(topo.Batches[0]) != 2 {
		t.Fatalf("unexpected batches %v", topo.Batches)
	}
}

func TestCycleMembers(t *testing.T) {
	docs := load(t, map[string]string{
		"file:///g/x.asm": " include \"y.asm\"\n",
		"file:///g/y.asm": " include \"x.asm\"\n",
		"file:///g/z.asm": " include \"x.asm\"\n",
		"file:///g/w.asm": " include \"w.asm\"\n",
	})
	idx := incgraph.BuildIndex(docs)
	g, _ := incgraph.BuildGraph(idx, docs)
	topo := incgraph.ToposortKahn(g)
	if !topo.Cyclic {
		t.Fatal("expected a cycle")
	}
	if got := idx.Names(topo.Order); !slices.Equal(got, []string{"file:///g/w.asm"}) {
		t.Fatalf("self include must not block a document, order %v", got)
	}
	want := []string{"file:///g/x.asm", "file:///g/y.asm", "file:///g/z.asm"}
	if got := idx.Names(topo.Cycles); !slices.Equal(got, want) {
		t.Fatalf("cycles = %v, want %v", got, want)
	}
}
