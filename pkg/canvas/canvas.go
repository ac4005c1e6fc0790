package canvas

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/canvascast/pkg/errors"
)

// Ext is the file extension canvas files are expected to carry.
const Ext = ".canvas"

// =============================================================================
// Canvas Decoding API
// =============================================================================

// ReadFile reads and decodes a canvas file from disk.
// Read failures carry an IO_ERROR code, malformed content a PARSE_ERROR code,
// so callers can distinguish the two when reporting a failed cycle.
func ReadFile(path string) (*Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a canvas from an io.Reader.
// Use ReadFile for files or pass bytes.NewReader for in-memory data.
func Read(r io.Reader) (*Canvas, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read canvas")
	}
	return Unmarshal(data)
}

// Unmarshal decodes JSON bytes into a validated Canvas.
func Unmarshal(data []byte) (*Canvas, error) {
	var c Canvas
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode canvas")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ValidatePath checks that path points to an existing .canvas file.
// Used at construction time; failures are fatal, not per-cycle.
func ValidatePath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "stat %s", path)
	}
	if info.IsDir() {
		return errors.New(errors.ErrCodeInvalidPath, "path is a directory: %s", path)
	}
	if filepath.Ext(path) != Ext {
		return errors.New(errors.ErrCodeInvalidPath, "expected a %s file: %s", Ext, path)
	}
	return nil
}

// =============================================================================
// Internal Validation
// =============================================================================

// validate enforces the ID rules: node and edge IDs must be non-empty and
// unique within their kind. Edge endpoints are deliberately not resolved
// against the node set.
func (c *Canvas) validate() error {
	nodeIDs := make(map[string]struct{}, len(c.Nodes))
	for i, n := range c.Nodes {
		if n.ID == "" {
			return errors.New(errors.ErrCodeParse, "node %d has an empty ID", i)
		}
		if _, ok := nodeIDs[n.ID]; ok {
			return errors.New(errors.ErrCodeParse, "duplicate node ID %q", n.ID)
		}
		nodeIDs[n.ID] = struct{}{}
	}

	edgeIDs := make(map[string]struct{}, len(c.Edges))
	for i, e := range c.Edges {
		if e.ID == "" {
			return errors.New(errors.ErrCodeParse, "edge %d has an empty ID", i)
		}
		if _, ok := edgeIDs[e.ID]; ok {
			return errors.New(errors.ErrCodeParse, "duplicate edge ID %q", e.ID)
		}
		if e.FromNode == "" || e.ToNode == "" {
			return errors.New(errors.ErrCodeParse, "edge %q is missing an endpoint", e.ID)
		}
		edgeIDs[e.ID] = struct{}{}
	}

	return nil
}

// Marshal encodes a Canvas back to indented JSON. Round-tripping a decoded
// canvas preserves node and edge order.
func Marshal(c *Canvas) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("encode canvas: %w", err)
	}
	return data, nil
}
