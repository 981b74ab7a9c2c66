package gridscene

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Common colors.
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// Point is a position on a grid. Depending on context it is measured in cells
// of a particular grid or in pixels.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Mul scales p per axis by a cell size, converting cells to pixels.
func (p Point) Mul(s Size) Point {
	return Point{p.X * s.Width, p.Y * s.Height}
}

// TranslateFont converts p from cells of size from into cells of size to.
// Each axis is computed as p*from/to with integer division truncating toward
// zero. An axis whose target size is zero is returned unscaled.
func (p Point) TranslateFont(from, to Size) Point {
	out := p
	if to.Width != 0 {
		out.X = p.X * from.Width / to.Width
	}
	if to.Height != 0 {
		out.Y = p.Y * from.Height / to.Height
	}
	return out
}

// Size is the pixel dimension of one grid cell (a font size), or more
// generally a width/height pair.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned integer rectangle. The coordinate system has its
// origin at the top-left, with Y increasing downward. The zero value is the
// empty rectangle.
type Rect struct {
	X, Y, Width, Height int
}

// Position returns the top-left corner.
func (r Rect) Position() Point {
	return Point{r.X, r.Y}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{r.Width, r.Height}
}

// IsEmpty reports whether the rectangle covers no points.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether p lies inside the rectangle. The rectangle is
// half-open: points on the left and top edges are inside, points on the right
// and bottom edges (X+Width, Y+Height) are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Intersects reports whether r and other share at least one point.
// Adjacent rectangles (sharing only an edge) do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// NodeType distinguishes the role of a Node in the scene graph.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node positioned in pixels
	NodeTypeSurface                   // scrollable cell grid
	NodeTypeEntity                    // movable glyph parented to a surface
)

// String returns the type name used in logs and errors.
func (t NodeType) String() string {
	switch t {
	case NodeTypeContainer:
		return "container"
	case NodeTypeSurface:
		return "surface"
	case NodeTypeEntity:
		return "entity"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of scene event forwarded to an EntityStore.
type EventType uint8

const (
	EventVisibilityChanged EventType = iota // a component toggled a node's visibility
)
