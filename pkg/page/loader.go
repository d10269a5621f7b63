package page

import (
	"encoding/json"
	"fmt"
)

// Spec is the declarative JSON description of a page, used by the daemon
// to build test documents and by fixtures in tests.
type Spec struct {
	URL      string     `json:"url,omitempty"`
	Viewport Viewport   `json:"viewport"`
	Nodes    []NodeSpec `json:"nodes,omitempty"`
}

// NodeSpec describes one element, its light children, and an optional
// shadow root.
type NodeSpec struct {
	ID     string      `json:"id"`
	Rect   Rect        `json:"rect"`
	Nodes  []NodeSpec  `json:"nodes,omitempty"`
	Shadow *ShadowSpec `json:"shadow,omitempty"`
}

// ShadowSpec describes a shadow root and its subtree.
type ShadowSpec struct {
	Mode  ShadowMode `json:"mode"`
	Nodes []NodeSpec `json:"nodes,omitempty"`
}

// Load parses a JSON page spec and builds the document.
func Load(data []byte) (*Document, error) {
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse page spec: %w", err)
	}
	return Build(spec)
}

// Build constructs a document from a page spec.
func Build(spec Spec) (*Document, error) {
	viewport := spec.Viewport
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return nil, fmt.Errorf("viewport must have positive dimensions")
	}
	doc := NewDocument(spec.URL, viewport)
	for _, ns := range spec.Nodes {
		if err := buildNode(doc, nil, ns); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func buildNode(doc *Document, parent *Node, spec NodeSpec) error {
	node, err := doc.CreateElement(spec.ID, spec.Rect)
	if err != nil {
		return err
	}
	doc.AttachChild(parent, node)

	if spec.Shadow != nil {
		mode := spec.Shadow.Mode
		if mode == "" {
			mode = ShadowOpen
		}
		root, err := doc.AttachShadow(node, mode)
		if err != nil {
			return err
		}
		for _, child := range spec.Shadow.Nodes {
			if err := buildShadowNode(doc, root, child); err != nil {
				return err
			}
		}
	}
	for _, child := range spec.Nodes {
		if err := buildNode(doc, node, child); err != nil {
			return err
		}
	}
	return nil
}

func buildShadowNode(doc *Document, root *ShadowRoot, spec NodeSpec) error {
	node, err := doc.CreateElement(spec.ID, spec.Rect)
	if err != nil {
		return err
	}
	doc.AttachShadowChild(root, node)

	if spec.Shadow != nil {
		mode := spec.Shadow.Mode
		if mode == "" {
			mode = ShadowOpen
		}
		nested, err := doc.AttachShadow(node, mode)
		if err != nil {
			return err
		}
		for _, child := range spec.Shadow.Nodes {
			if err := buildShadowNode(doc, nested, child); err != nil {
				return err
			}
		}
	}
	for _, child := range spec.Nodes {
		if err := buildNode(doc, node, child); err != nil {
			return err
		}
	}
	return nil
}
