package gridscene

// Cell is one glyph of a surface grid.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

// Surface is a scene graph node that owns a grid of cells and a viewport into
// it. Only the viewport is drawn; scrolling moves the viewport over the grid.
// Children are positioned relative to the surface's top-left corner, not the
// viewport, so children that should track scrolling need a ViewSync.
type Surface struct {
	node *Node // surface node in the scene graph

	width    int // grid width in cells
	height   int // grid height in cells
	cellSize Size
	cells    []Cell // row-major, len = width * height

	// view is the visible window in cells. Its origin is always clamped so
	// the window stays inside the grid.
	view Rect

	// Scroll drivers (see scroll.go).
	followTarget *Entity
	scrollTween  *scrollAnim
}

// NewSurface creates a width x height cell grid drawn with the given cell
// size. The viewport initially covers the whole grid.
// Panics if any dimension is not positive.
func NewSurface(name string, width, height int, cell Size) *Surface {
	if width <= 0 || height <= 0 {
		panic("gridscene: surface dimensions must be positive")
	}
	if cell.Width <= 0 || cell.Height <= 0 {
		panic("gridscene: surface cell size must be positive")
	}
	s := &Surface{
		node:     newNode(name, NodeTypeSurface),
		width:    width,
		height:   height,
		cellSize: cell,
		cells:    make([]Cell, width*height),
		view:     Rect{Width: width, Height: height},
	}
	s.node.surface = s
	return s
}

// Node returns the underlying scene graph node for this surface.
func (s *Surface) Node() *Node {
	return s.node
}

// AddChild adds a node (typically an entity's node) as a child of the surface.
func (s *Surface) AddChild(child *Node) {
	s.node.AddChild(child)
}

// Width returns the grid width in cells.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the grid height in cells.
func (s *Surface) Height() int {
	return s.height
}

// CellSize returns the pixel size of one cell.
func (s *Surface) CellSize() Size {
	return s.cellSize
}

// SetCellSize changes the pixel size of one cell. Absolute positions of the
// surface and its subtree are recomputed on next access.
// Panics if either dimension is not positive.
func (s *Surface) SetCellSize(cell Size) {
	if cell.Width <= 0 || cell.Height <= 0 {
		panic("gridscene: surface cell size must be positive")
	}
	if s.cellSize == cell {
		return
	}
	s.cellSize = cell
	markSubtreeDirty(s.node)
}

// ViewRect returns the visible window of the grid, in cells.
func (s *Surface) ViewRect() Rect {
	return s.view
}

// AbsoluteArea returns the on-screen rectangle covered by the viewport, in
// pixels relative to the scene root.
func (s *Surface) AbsoluteArea() Rect {
	abs := s.node.AbsolutePosition()
	return Rect{
		X:      abs.X,
		Y:      abs.Y,
		Width:  s.view.Width * s.cellSize.Width,
		Height: s.view.Height * s.cellSize.Height,
	}
}

// SetViewSize resizes the viewport, clamped to [1, grid size]. The origin is
// re-clamped so the viewport stays inside the grid.
func (s *Surface) SetViewSize(width, height int) {
	s.view.Width = clampInt(width, 1, s.width)
	s.view.Height = clampInt(height, 1, s.height)
	s.view.X, s.view.Y = s.clampViewOrigin(s.view.X, s.view.Y)
}

// --- Cells ---

// InBounds reports whether (x, y) is a valid cell coordinate.
func (s *Surface) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Cell returns the cell at (x, y). Out-of-range coordinates return the zero Cell.
func (s *Surface) Cell(x, y int) Cell {
	if !s.InBounds(x, y) {
		return Cell{}
	}
	return s.cells[y*s.width+x]
}

// SetCell replaces the cell at (x, y). Out-of-range coordinates are ignored.
func (s *Surface) SetCell(x, y int, c Cell) {
	if !s.InBounds(x, y) {
		return
	}
	s.cells[y*s.width+x] = c
}

// Fill sets every cell to c.
func (s *Surface) Fill(c Cell) {
	for i := range s.cells {
		s.cells[i] = c
	}
}

// Clear resets every cell to the zero Cell.
func (s *Surface) Clear() {
	clear(s.cells)
}

// Print writes text left to right starting at (x, y) with the given
// foreground color, keeping each cell's background. Text past the right edge
// is clipped. Returns the number of cells written.
func (s *Surface) Print(x, y int, text string, fg Color) int {
	if y < 0 || y >= s.height {
		return 0
	}
	written := 0
	for _, r := range text {
		if x >= s.width {
			break
		}
		if x >= 0 {
			c := &s.cells[y*s.width+x]
			c.Glyph = r
			c.Fg = fg
			written++
		}
		x++
	}
	return written
}

// release drops the cell buffer and scroll drivers. Called on dispose.
func (s *Surface) release() {
	s.cells = nil
	s.followTarget = nil
	s.scrollTween = nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
