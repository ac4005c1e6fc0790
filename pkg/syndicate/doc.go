// Package syndicate turns a canvas into publishable microblog items.
//
// # Overview
//
// The package implements the selection half of the canvascast pipeline:
//
//  1. [BuildIndex] derives one-hop adjacency (incoming and outgoing neighbor
//     lists) from the canvas edge set.
//  2. A [Selector] decides, node by node, which canvas nodes become [Item]
//     values. [DefaultSelector] implements the stock policy: text nodes with
//     non-empty text and the marker color.
//  3. [Collect] runs the selector over every node and returns the full
//     selected set keyed by node ID.
//
// Selection is a pure function of the node and its adjacency, so policies
// can be swapped and tested in isolation. Deduplication against previously
// published items happens downstream in the pipeline, not here.
//
// # Ordering
//
// Neighbor lists preserve the order edges appear in the canvas file, and
// duplicate edges between the same pair of nodes stay distinct. Both
// properties keep item content stable for a given file state.
package syndicate
