package page

import (
	"errors"
	"fmt"
)

// ErrNoSuchElement is returned when an element lookup finds no node.
var ErrNoSuchElement = errors.New("no such element")

// Document is one rendered page: a node tree, its viewport, and an
// identifier index for element lookups.
type Document struct {
	url      string
	viewport Viewport
	root     *Node
	index    map[string]*Node
}

// NewDocument creates an empty document with a root node spanning the
// viewport. The root stands in for the document element and never appears
// in boundary event chains.
func NewDocument(url string, viewport Viewport) *Document {
	root := &Node{rect: viewport.Rect()}
	return &Document{
		url:      url,
		viewport: viewport,
		root:     root,
		index:    make(map[string]*Node),
	}
}

// URL returns the document's location.
func (d *Document) URL() string { return d.url }

// Viewport returns the visible page area.
func (d *Document) Viewport() Viewport { return d.viewport }

// Root returns the document-level node.
func (d *Document) Root() *Node { return d.root }

// CreateElement allocates and indexes a node. The node still has to be
// attached with AttachChild or AttachShadowChild before it is hit-testable.
func (d *Document) CreateElement(id string, rect Rect) (*Node, error) {
	if id == "" {
		return nil, fmt.Errorf("element id must not be empty")
	}
	if _, exists := d.index[id]; exists {
		return nil, fmt.Errorf("duplicate element id %q", id)
	}
	node := &Node{id: id, rect: rect}
	d.index[id] = node
	return node, nil
}

// AttachChild appends a node to a parent's light tree. A nil parent
// attaches to the document root.
func (d *Document) AttachChild(parent, child *Node) {
	if parent == nil {
		parent = d.root
	}
	child.parent = parent
	parent.children = append(parent.children, child)
}

// AttachShadow attaches a shadow root to a host element. Hosts carry at
// most one root.
func (d *Document) AttachShadow(host *Node, mode ShadowMode) (*ShadowRoot, error) {
	if host.shadow != nil {
		return nil, fmt.Errorf("element %q already hosts a shadow root", host.id)
	}
	host.shadow = &ShadowRoot{mode: mode, host: host}
	return host.shadow, nil
}

// AttachShadowChild appends a node to a shadow root's subtree. The child's
// parent is the host, so ancestor chains cross the shadow boundary.
func (d *Document) AttachShadowChild(root *ShadowRoot, child *Node) {
	child.parent = root.host
	root.children = append(root.children, child)
}

// GetElement resolves an element id anywhere in the document, including
// inside open and closed shadow trees.
func (d *Document) GetElement(id string) (*Node, error) {
	node, ok := d.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoSuchElement, id)
	}
	return node, nil
}

// InViewCenter returns the in-view center point of a node: the midpoint
// of the intersection between the node's rectangle and the viewport. For
// a node entirely outside the viewport the raw center is returned; the
// dispatcher's bounds check rejects it downstream.
func (d *Document) InViewCenter(node *Node) (x, y float64) {
	if visible, ok := node.rect.Intersect(d.viewport.Rect()); ok {
		return visible.Center()
	}
	return node.rect.Center()
}
