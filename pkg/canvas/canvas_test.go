package canvas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/canvascast/pkg/errors"
)

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  errors.Code
		wantN    int
		wantE    int
		check    func(t *testing.T, c *Canvas)
	}{
		{
			name:  "Empty",
			input: `{"nodes":[],"edges":[]}`,
		},
		{
			name: "TextNodeWithColor",
			input: `{"nodes":[{"id":"a1","type":"text","x":0,"y":0,"width":250,"height":60,"color":"1","text":"hello world"}],"edges":[]}`,
			wantN: 1,
			check: func(t *testing.T, c *Canvas) {
				n := c.Nodes[0]
				if !n.IsText() {
					t.Error("expected a text node")
				}
				if n.Color != ColorRed {
					t.Errorf("color = %q, want %q", n.Color, ColorRed)
				}
				if n.Text != "hello world" {
					t.Errorf("text = %q", n.Text)
				}
			},
		},
		{
			name: "EdgePreservesEndpointsAndOrder",
			input: `{"nodes":[{"id":"a","type":"text","text":"a"},{"id":"b","type":"text","text":"b"}],
				"edges":[{"id":"e2","fromNode":"b","toNode":"a"},{"id":"e1","fromNode":"a","toNode":"b","fromSide":"right","toSide":"left"}]}`,
			wantN: 2,
			wantE: 2,
			check: func(t *testing.T, c *Canvas) {
				if c.Edges[0].ID != "e2" || c.Edges[1].ID != "e1" {
					t.Errorf("edge order not preserved: %v", c.Edges)
				}
				if c.Edges[1].FromSide != "right" {
					t.Errorf("fromSide = %q", c.Edges[1].FromSide)
				}
			},
		},
		{
			name: "DanglingEdgeIsLegal",
			input: `{"nodes":[{"id":"a","type":"text","text":"a"}],
				"edges":[{"id":"e1","fromNode":"a","toNode":"ghost"}]}`,
			wantN: 1,
			wantE: 1,
		},
		{
			name:    "MalformedJSON",
			input:   `{"nodes":[`,
			wantErr: errors.ErrCodeParse,
		},
		{
			name:    "DuplicateNodeID",
			input:   `{"nodes":[{"id":"a","type":"text"},{"id":"a","type":"text"}],"edges":[]}`,
			wantErr: errors.ErrCodeParse,
		},
		{
			name:    "EmptyNodeID",
			input:   `{"nodes":[{"id":"","type":"text"}],"edges":[]}`,
			wantErr: errors.ErrCodeParse,
		},
		{
			name:    "DuplicateEdgeID",
			input:   `{"nodes":[],"edges":[{"id":"e","fromNode":"a","toNode":"b"},{"id":"e","fromNode":"b","toNode":"a"}]}`,
			wantErr: errors.ErrCodeParse,
		},
		{
			name:    "EdgeMissingEndpoint",
			input:   `{"nodes":[],"edges":[{"id":"e","fromNode":"a"}]}`,
			wantErr: errors.ErrCodeParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Unmarshal([]byte(tt.input))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error code = %q, want %q (%v)", errors.GetCode(err), tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if got := c.NodeCount(); got != tt.wantN {
				t.Errorf("nodes = %d, want %d", got, tt.wantN)
			}
			if got := c.EdgeCount(); got != tt.wantE {
				t.Errorf("edges = %d, want %d", got, tt.wantE)
			}
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestNodeLookup(t *testing.T) {
	c, err := Unmarshal([]byte(`{"nodes":[{"id":"a","type":"text","text":"x"}],"edges":[]}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if n, ok := c.Node("a"); !ok || n.Text != "x" {
		t.Errorf("Node(a) = %+v, %v", n, ok)
	}
	if _, ok := c.Node("missing"); ok {
		t.Error("Node(missing) should not resolve")
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.canvas")
	content := `{"nodes":[{"id":"n","type":"text","text":"hi","color":"1"}],"edges":[]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if c.NodeCount() != 1 {
		t.Errorf("nodes = %d, want 1", c.NodeCount())
	}

	_, err = ReadFile(filepath.Join(dir, "missing.canvas"))
	if !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("missing file should be IO_ERROR, got %v", err)
	}
}

func TestValidatePath(t *testing.T) {
	dir := t.TempDir()

	canvasPath := filepath.Join(dir, "ok.canvas")
	if err := os.WriteFile(canvasPath, []byte(`{"nodes":[],"edges":[]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ValidatePath(canvasPath); err != nil {
		t.Errorf("valid path rejected: %v", err)
	}

	if err := ValidatePath(dir); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("directory should be INVALID_PATH, got %v", err)
	}

	txtPath := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(txtPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := ValidatePath(txtPath); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("wrong extension should be INVALID_PATH, got %v", err)
	}

	if err := ValidatePath(filepath.Join(dir, "none.canvas")); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("missing file should be INVALID_PATH, got %v", err)
	}
}
