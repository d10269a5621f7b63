package page

// HitTest returns the top-most, deepest node at the given viewport
// coordinates, or the document root when nothing else covers the point.
// Shadow roots are descended into regardless of open or closed mode:
// internal dispatch correctness is not a script-visibility concern.
func (d *Document) HitTest(x, y float64) *Node {
	if !d.root.rect.Contains(x, y) {
		return d.root
	}
	return hitNode(d.root, x, y)
}

// hitNode descends into the deepest child covering the point. Children are
// scanned in reverse paint order so later siblings win; within a hit node
// the shadow tree paints over the light tree.
func hitNode(n *Node, x, y float64) *Node {
	if n.shadow != nil {
		for i := len(n.shadow.children) - 1; i >= 0; i-- {
			child := n.shadow.children[i]
			if child.rect.Contains(x, y) {
				return hitNode(child, x, y)
			}
		}
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		child := n.children[i]
		if child.rect.Contains(x, y) {
			return hitNode(child, x, y)
		}
	}
	return n
}
