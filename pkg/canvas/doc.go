// Package canvas reads Obsidian JSON Canvas files.
//
// # Overview
//
// A canvas file is a JSON document with two top-level arrays, "nodes" and
// "edges". Nodes carry a type (text, file, link, group), a position, and an
// optional color; edges are directed connections between node IDs. This
// package decodes that format into [Canvas], [Node], and [Edge] values and
// validates the structural rules canvascast relies on: IDs must be non-empty
// and unique per kind.
//
// Edges are allowed to reference node IDs that do not exist in the file.
// Obsidian produces such edges transiently while a node is being deleted, so
// they are preserved rather than rejected; resolution happens downstream.
//
// # Basic Usage
//
// Read a canvas from disk with [ReadFile], or decode bytes with [Unmarshal]:
//
//	c, err := canvas.ReadFile("notes.canvas")
//	if err != nil {
//	    return err
//	}
//	for _, n := range c.Nodes {
//	    if n.Type == canvas.NodeText && n.Color == canvas.ColorRed {
//	        ...
//	    }
//	}
//
// Node and edge order is preserved exactly as it appears in the file, which
// keeps downstream processing deterministic for a given file state.
package canvas
