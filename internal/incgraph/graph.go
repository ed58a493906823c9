package incgraph

import (
	"slices"

	"asm09/internal/document"
)

// Graph has an edge from each included document to every document that
// includes it, so a topological order lists includes first.
type Graph struct {
	Edges   [][]NodeID // Edges[from] = includers of from
	Indeg   []int      // counts present includes only
	Present []bool     // document is held, not only referenced
}

// Link is one include whose target is not held.
type Link struct {
	From string
	To   string
	Line int
}

// BuildGraph links the documents through idx. Includes of documents that are
// not in docs come back as missing; self includes are dropped.
func BuildGraph(idx Index, docs []*document.Document) (Graph, []Link) {
	n := len(idx.IDToURI)
	g := Graph{
		Edges:   make([][]NodeID, n),
		Indeg:   make([]int, n),
		Present: make([]bool, n),
	}
	for _, doc := range docs {
		g.Present[int(idx.URIToID[doc.URI])] = true
	}

	var missing []Link
	for _, doc := range docs {
		includer := idx.URIToID[doc.URI]
		for _, ref := range doc.ReferencedDocuments {
			target, ok := idx.URIToID[ref.URI]
			if !ok || target == includer {
				continue
			}
			if !g.Present[int(target)] {
				missing = append(missing, Link{From: doc.URI, To: ref.URI, Line: int(ref.Range.Start.Line)})
				continue
			}
			if slices.Contains(g.Edges[int(target)], includer) {
				continue
			}
			g.Edges[int(target)] = append(g.Edges[int(target)], includer)
			g.Indeg[int(includer)]++
		}
	}
	for i := range g.Edges {
		slices.Sort(g.Edges[i])
	}
	return g, missing
}
