package canvas

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Node types defined by the JSON Canvas spec.
const (
	NodeText  = "text"
	NodeFile  = "file"
	NodeLink  = "link"
	NodeGroup = "group"
)

// Preset colors. The JSON Canvas format encodes presets as digit strings;
// arbitrary colors appear as "#rrggbb" hex literals.
const (
	ColorRed    = "1"
	ColorOrange = "2"
	ColorYellow = "3"
	ColorGreen  = "4"
	ColorCyan   = "5"
	ColorPurple = "6"
)

// =============================================================================
// Canvas - Top-Level Document
// =============================================================================

// Canvas is a decoded JSON Canvas document. Nodes and edges keep the order
// they have in the file.
type Canvas struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node returns the node with the given ID, or false if no such node exists.
func (c *Canvas) Node(id string) (Node, bool) {
	for _, n := range c.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// NodeCount returns the number of nodes in the canvas.
func (c *Canvas) NodeCount() int { return len(c.Nodes) }

// EdgeCount returns the number of edges in the canvas.
func (c *Canvas) EdgeCount() int { return len(c.Edges) }

// =============================================================================
// Node
// =============================================================================

// Node is a single canvas node. Which content fields are set depends on Type:
// text nodes carry Text, file nodes carry File, link nodes carry URL, and
// group nodes carry Label.
type Node struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color,omitempty"`
	Text   string  `json:"text,omitempty"`
	File   string  `json:"file,omitempty"`
	URL    string  `json:"url,omitempty"`
	Label  string  `json:"label,omitempty"`
}

// IsText reports whether this is a text node.
func (n Node) IsText() bool { return n.Type == NodeText }

// =============================================================================
// Edge
// =============================================================================

// Edge is a directed connection between two nodes. FromNode and ToNode are
// node IDs; they are not guaranteed to resolve within the same canvas.
type Edge struct {
	ID       string `json:"id"`
	FromNode string `json:"fromNode"`
	FromSide string `json:"fromSide,omitempty"`
	ToNode   string `json:"toNode"`
	ToSide   string `json:"toSide,omitempty"`
	Color    string `json:"color,omitempty"`
	Label    string `json:"label,omitempty"`
}
