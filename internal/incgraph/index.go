// Package incgraph orders a folder's documents by their include links.
package incgraph

import (
	"slices"

	"asm09/internal/document"
)

type NodeID uint32

// Index assigns dense ids to every uri seen as a document or an include
// target, in sorted order.
type Index struct {
	URIToID map[string]NodeID
	IDToURI []string
}

func BuildIndex(docs []*document.Document) Index {
	uniq := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		uniq[doc.URI] = struct{}{}
		for _, ref := range doc.ReferencedDocuments {
			uniq[ref.URI] = struct{}{}
		}
	}

	uris := make([]string, 0, len(uniq))
	for uri := range uniq {
		uris = append(uris, uri)
	}
	slices.Sort(uris)

	ids := make(map[string]NodeID, len(uris))
	for i, uri := range uris {
		ids[uri] = NodeID(i)
	}
	return Index{URIToID: ids, IDToURI: uris}
}

func (idx Index) Names(ids []NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = idx.IDToURI[int(id)]
	}
	return out
}
