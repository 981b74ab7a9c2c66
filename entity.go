package gridscene

// Entity is a movable glyph placed on a grid. Its position is measured in its
// own cells, which may differ in size from the cells of the surface it is
// parented to. The rendered position is Position + DisplayOffset.
type Entity struct {
	node *Node // entity node in the scene graph

	cellSize      Size
	displayOffset Point

	// Appearance is the glyph and colors the renderer draws for the entity.
	Appearance Cell
}

// NewEntity creates an entity drawn with the given cell size.
// Panics if either dimension of cell is not positive.
func NewEntity(name string, cell Size, appearance Cell) *Entity {
	if cell.Width <= 0 || cell.Height <= 0 {
		panic("gridscene: entity cell size must be positive")
	}
	e := &Entity{
		node:       newNode(name, NodeTypeEntity),
		cellSize:   cell,
		Appearance: appearance,
	}
	e.node.entity = e
	return e
}

// Node returns the underlying scene graph node for this entity.
func (e *Entity) Node() *Node {
	return e.node
}

// Position returns the entity's logical position in its own cells.
func (e *Entity) Position() Point {
	return e.node.position
}

// SetPosition moves the entity.
func (e *Entity) SetPosition(p Point) {
	e.node.SetPosition(p)
}

// AbsolutePosition returns the entity's rendered top-left corner in scene
// pixels, including the display offset and all ancestor offsets.
func (e *Entity) AbsolutePosition() Point {
	return e.node.AbsolutePosition()
}

// CellSize returns the pixel size of the entity's cells.
func (e *Entity) CellSize() Size {
	return e.cellSize
}

// OffsetUnit returns the pixel size of one unit of Position and
// DisplayOffset: the cell size, or (1,1) when the node uses pixel
// positioning.
func (e *Entity) OffsetUnit() Size {
	if e.node.pixelPositioning {
		return Size{1, 1}
	}
	return e.cellSize
}

// SetCellSize changes the entity's cell size.
// Panics if either dimension is not positive.
func (e *Entity) SetCellSize(cell Size) {
	if cell.Width <= 0 || cell.Height <= 0 {
		panic("gridscene: entity cell size must be positive")
	}
	if e.cellSize == cell {
		return
	}
	e.cellSize = cell
	markSubtreeDirty(e.node)
}

// DisplayOffset returns the additive offset, in the entity's cells, applied to
// the rendered position.
func (e *Entity) DisplayOffset() Point {
	return e.displayOffset
}

// SetDisplayOffset sets the rendered-position offset. While a ViewSync is
// attached it owns this value; other writers are overwritten on the next
// frame the viewport or position changes.
func (e *Entity) SetDisplayOffset(p Point) {
	if e.displayOffset == p {
		return
	}
	e.displayOffset = p
	markSubtreeDirty(e.node)
}

// Visible reports whether the entity is drawn.
func (e *Entity) Visible() bool {
	return e.node.Visible
}

// SetVisible shows or hides the entity.
func (e *Entity) SetVisible(visible bool) {
	e.node.Visible = visible
}

// Parent returns the node the entity is attached to, or nil.
func (e *Entity) Parent() *Node {
	return e.node.Parent
}

// ParentSurface returns the surface the entity is parented to. ok is false
// when the entity has no parent or its parent is not a surface.
func (e *Entity) ParentSurface() (SurfaceHost, bool) {
	p := e.node.Parent
	if p == nil || p.surface == nil {
		return nil, false
	}
	return p.surface, true
}

// AddComponent attaches c to the entity's node.
func (e *Entity) AddComponent(c Component) error {
	return e.node.AddComponent(c)
}

// RemoveComponent detaches c from the entity's node.
func (e *Entity) RemoveComponent(c Component) bool {
	return e.node.RemoveComponent(c)
}
