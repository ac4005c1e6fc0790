package syndicate

import "github.com/matzehuels/canvascast/pkg/canvas"

// Item is the publishable representation of a qualifying canvas node.
// Values are immutable once produced; the neighbor lists are copies, not
// views into the index.
type Item struct {
	// ID is the source node's ID and doubles as the publication identifier.
	ID string
	// Text is the node's full text.
	Text string
	// InNeighborIDs lists nodes pointing at this node, in edge order.
	InNeighborIDs []string
	// OutNeighborIDs lists nodes this node points at, in edge order.
	OutNeighborIDs []string
}

// Batch is the full set of items going out in one publish cycle, keyed by
// item ID. Sinks receive a whole batch at once so they can cross-reference
// items published together.
type Batch map[string]Item

// IDs returns the batch's item IDs in unspecified order.
func (b Batch) IDs() []string {
	ids := make([]string, 0, len(b))
	for id := range b {
		ids = append(ids, id)
	}
	return ids
}

// Selector decides whether a node becomes an Item. It must be a pure
// function of its three inputs: the node and its outgoing and incoming
// adjacency. Returning false rejects the node.
type Selector func(n canvas.Node, out, in []Adjacency) (Item, bool)

// DefaultSelector returns the stock selection policy: accept text nodes with
// non-empty text and the given marker color, reject everything else. On
// acceptance the item's neighbor lists are copied from the adjacency
// arguments, order and duplicates preserved.
func DefaultSelector(markerColor string) Selector {
	return func(n canvas.Node, out, in []Adjacency) (Item, bool) {
		if !n.IsText() {
			return Item{}, false
		}
		if n.Text == "" {
			return Item{}, false
		}
		if n.Color != markerColor {
			return Item{}, false
		}
		return Item{
			ID:             n.ID,
			Text:           n.Text,
			InNeighborIDs:  neighborIDs(in),
			OutNeighborIDs: neighborIDs(out),
		}, true
	}
}

// Collect builds the adjacency index and runs the selector over every node
// in the canvas, returning the full selected set keyed by node ID. A nil
// selector means the red-marker default.
func Collect(c *canvas.Canvas, sel Selector) Batch {
	if sel == nil {
		sel = DefaultSelector(canvas.ColorRed)
	}
	idx := BuildIndex(c)

	items := make(Batch)
	for _, n := range c.Nodes {
		if item, ok := sel(n, idx.Out[n.ID], idx.In[n.ID]); ok {
			items[item.ID] = item
		}
	}
	return items
}
