package syndicate

import "github.com/matzehuels/canvascast/pkg/canvas"

// Adjacency is one entry in a neighbor list: the neighbor's node ID plus the
// edge that produced it. Multiple edges between the same pair of nodes yield
// multiple entries.
type Adjacency struct {
	NodeID string
	EdgeID string
}

// Index holds one-hop adjacency for every node that participates in at least
// one edge. Nodes without edges simply have no entry; lookups on them return
// nil slices.
type Index struct {
	// Out maps a node ID to its outgoing neighbors, in edge order.
	Out map[string][]Adjacency
	// In maps a node ID to its incoming neighbors, in edge order.
	In map[string][]Adjacency
}

// BuildIndex derives the adjacency index from the canvas edge set in a single
// linear pass. For each edge (from, to, id) it appends (to, id) to from's
// out-list and (from, id) to to's in-list.
//
// The index is pure ID bookkeeping: endpoints are never resolved against the
// node set, so edges referencing missing nodes are recorded like any other
// and surface downstream as unresolved references.
func BuildIndex(c *canvas.Canvas) Index {
	idx := Index{
		Out: make(map[string][]Adjacency),
		In:  make(map[string][]Adjacency),
	}
	for _, e := range c.Edges {
		idx.Out[e.FromNode] = append(idx.Out[e.FromNode], Adjacency{NodeID: e.ToNode, EdgeID: e.ID})
		idx.In[e.ToNode] = append(idx.In[e.ToNode], Adjacency{NodeID: e.FromNode, EdgeID: e.ID})
	}
	return idx
}

// neighborIDs projects an adjacency list to its node IDs, preserving order
// and duplicates.
func neighborIDs(adj []Adjacency) []string {
	if len(adj) == 0 {
		return nil
	}
	ids := make([]string, len(adj))
	for i, a := range adj {
		ids[i] = a.NodeID
	}
	return ids
}
