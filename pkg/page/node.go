package page

// ShadowMode is the script-visibility mode of a shadow root. Hit testing
// ignores the mode entirely; only ShadowRoot() introspection honors it.
type ShadowMode string

const (
	ShadowOpen   ShadowMode = "open"
	ShadowClosed ShadowMode = "closed"
)

// Node is an element in the rendered tree. Nodes carry their absolute
// viewport-space rectangle; later siblings paint on top of earlier ones.
type Node struct {
	id     string
	rect   Rect
	parent *Node
	shadow *ShadowRoot

	children []*Node
}

// ID returns the element identifier used for event records and lookups.
func (n *Node) ID() string { return n.id }

// Rect returns the node's absolute viewport-space rectangle.
func (n *Node) Rect() Rect { return n.rect }

// SetRect moves or resizes the node. Element-origin resolution reads
// geometry at tick-execution time, so mid-sequence mutations take effect.
func (n *Node) SetRect(r Rect) { n.rect = r }

// Parent returns the parent node. For a shadow-tree child this is the
// shadow host, so ancestor chains cross shadow boundaries.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the light-tree children in paint order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ShadowRoot returns the node's shadow root if it is script-visible.
// Closed roots return nil here but still participate in hit testing.
func (n *Node) ShadowRoot() *ShadowRoot {
	if n.shadow == nil || n.shadow.mode == ShadowClosed {
		return nil
	}
	return n.shadow
}

// Ancestors returns the chain from this node up to the tree root,
// innermost first, hopping from shadow children to their host.
func (n *Node) Ancestors() []*Node {
	var chain []*Node
	for cur := n; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	return chain
}

// ShadowRoot hosts a subtree rendered inside its host element. Nested
// roots are supported; a shadow child may itself host another root.
type ShadowRoot struct {
	mode     ShadowMode
	host     *Node
	children []*Node
}

// Mode returns the declared script-visibility mode.
func (r *ShadowRoot) Mode() ShadowMode { return r.mode }

// Host returns the element the root is attached to.
func (r *ShadowRoot) Host() *Node { return r.host }

// Children returns the shadow-tree children in paint order.
func (r *ShadowRoot) Children() []*Node {
	out := make([]*Node, len(r.children))
	copy(out, r.children)
	return out
}
