package gridscene

// A node's absolute position is the pixel-space sum of its local offset and
// its ancestors' absolute positions:
//
//	container: position                                  (pixels)
//	surface:   position * surface cell size              (cells -> pixels)
//	entity:    (position + display offset) * entity cell (cells -> pixels)
//
// Surfaces and entities that use pixel positioning skip the cell scaling.
// Results are cached per node and invalidated for a whole subtree whenever
// an input changes.

// localOffset returns the node's pixel offset relative to its parent.
func localOffset(n *Node) Point {
	pos := n.position
	var cell Size
	switch {
	case n.entity != nil:
		pos = pos.Add(n.entity.displayOffset)
		cell = n.entity.cellSize
	case n.surface != nil:
		cell = n.surface.cellSize
	default:
		return pos
	}
	if n.pixelPositioning {
		return pos
	}
	return pos.Mul(cell)
}

// updateAbsolutePosition recomputes absPosition for n and its descendants.
// parentRecomputed forces recomputation of clean nodes below a dirty one.
func updateAbsolutePosition(n *Node, parentAbs Point, parentRecomputed bool) {
	recompute := n.absDirty || parentRecomputed
	if recompute {
		n.absPosition = parentAbs.Add(localOffset(n))
		n.absDirty = false
	}
	for _, child := range n.children {
		updateAbsolutePosition(child, n.absPosition, recompute)
	}
}

// --- Position accessors ---

// Position returns the node's logical position relative to its parent, in
// pixels for containers and in the node's own cells for surfaces and entities
// (unless pixel positioning is enabled).
func (n *Node) Position() Point {
	return n.position
}

// SetPosition sets the node's logical position and invalidates the absolute
// positions of its subtree.
func (n *Node) SetPosition(p Point) {
	if n.position == p {
		return
	}
	n.position = p
	markSubtreeDirty(n)
}

// PixelPositioning reports whether Position is interpreted in pixels.
func (n *Node) PixelPositioning() bool {
	return n.pixelPositioning
}

// SetPixelPositioning switches Position between cell and pixel units.
// Containers are always pixel-positioned and ignore this flag.
func (n *Node) SetPixelPositioning(enabled bool) {
	if n.pixelPositioning == enabled {
		return
	}
	n.pixelPositioning = enabled
	markSubtreeDirty(n)
}

// MarkDirty forces the node's absolute position to be recomputed on next
// access.
func (n *Node) MarkDirty() {
	markSubtreeDirty(n)
}

// AbsolutePosition returns the node's top-left corner in pixels relative to
// the scene root. Only the dirty part of the ancestor chain is recomputed.
func (n *Node) AbsolutePosition() Point {
	if !n.absDirty {
		return n.absPosition
	}
	var parentAbs Point
	if n.Parent != nil {
		parentAbs = n.Parent.AbsolutePosition()
	}
	n.absPosition = parentAbs.Add(localOffset(n))
	n.absDirty = false
	return n.absPosition
}

// LocalToAbsolute converts a pixel point relative to this node's top-left
// corner into scene pixels.
func (n *Node) LocalToAbsolute(p Point) Point {
	return n.AbsolutePosition().Add(p)
}

// AbsoluteToLocal converts a scene pixel point into a pixel point relative to
// this node's top-left corner.
func (n *Node) AbsoluteToLocal(p Point) Point {
	return p.Sub(n.AbsolutePosition())
}
