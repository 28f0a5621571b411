package scenehcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/scenewalk/internal/ctxlog"
	"github.com/vk/scenewalk/memscene"
	"github.com/vk/scenewalk/scene"
)

// Loader parses HCL scene files into memscene scenes.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a Loader with a fresh parser.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadFile parses and builds the scene described by the file at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (*memscene.Scene, error) {
	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, diags)
	}
	return l.build(ctx, path, file)
}

// Load parses and builds a scene from in-memory HCL source. The filename is
// used in diagnostics only.
func (l *Loader) Load(ctx context.Context, filename string, src []byte) (*memscene.Scene, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse scene source %s: %w", filename, diags)
	}
	return l.build(ctx, filename, file)
}

func (l *Loader) build(ctx context.Context, name string, file *hcl.File) (*memscene.Scene, error) {
	logger := ctxlog.FromContext(ctx)

	var parsed sceneFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode scene file %s: %w", name, diags)
	}

	s := memscene.New()

	for _, block := range parsed.Nodes {
		var parent scene.Node
		if block.Parent != "" {
			p, ok := s.Node(block.Parent)
			if !ok {
				return nil, fmt.Errorf("node %q: parent %q not defined (declare parents before children)", block.Name, block.Parent)
			}
			parent = p
		}

		n, err := s.AddNode(scene.TypeTag(block.Type), block.Name, parent)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", block.Name, err)
		}
		if block.Default {
			s.MarkDefault(n)
		}

		for _, attr := range block.Attributes {
			if err := l.addAttribute(s, n, attr); err != nil {
				return nil, fmt.Errorf("node %q: %w", block.Name, err)
			}
		}
		logger.Debug("Scene node created", "node", block.Name, "type", block.Type, "attributes", len(block.Attributes))
	}

	for _, conn := range parsed.Connections {
		src, ok := s.Plug(conn.Source)
		if !ok {
			return nil, fmt.Errorf("connection: unknown source plug %q", conn.Source)
		}
		dst, ok := s.Plug(conn.Destination)
		if !ok {
			return nil, fmt.Errorf("connection: unknown destination plug %q", conn.Destination)
		}
		if err := s.Connect(src, dst); err != nil {
			return nil, fmt.Errorf("connection %s -> %s: %w", conn.Source, conn.Destination, err)
		}
	}

	logger.Info("Scene loaded", "file", name, "nodes", len(parsed.Nodes), "connections", len(parsed.Connections))
	return s, nil
}

func (l *Loader) addAttribute(s *memscene.Scene, n scene.Node, attr *attributeBlock) error {
	if len(attr.Elements) > 0 && !attr.Array {
		return fmt.Errorf("attribute %q: elements given for a non-array attribute", attr.Name)
	}
	connectable := attr.Connectable == nil || *attr.Connectable

	var p scene.Plug
	switch {
	case attr.Array:
		p = s.AddArrayAttr(n, attr.Name, connectable, attr.Children...)
		for _, logical := range attr.Elements {
			s.Element(p, logical)
		}
	case len(attr.Children) > 0:
		p = s.AddCompoundAttr(n, attr.Name, attr.Children...)
	default:
		p = s.AddAttr(n, attr.Name)
	}

	if attr.Value != nil {
		s.SetValue(p, *attr.Value)
	}
	return nil
}
