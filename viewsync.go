package gridscene

import (
	"errors"
	"fmt"
)

// ErrInvalidHost is returned when ViewSync is attached to a node that is not
// an entity, or to a second node while still attached to the first.
var ErrInvalidHost = errors.New("gridscene: invalid view sync host")

// SurfaceHost is what ViewSync reads from an entity's parent surface.
type SurfaceHost interface {
	// ViewRect is the visible window in the surface's own cells.
	ViewRect() Rect
	// AbsoluteArea is the visible window in scene pixels.
	AbsoluteArea() Rect
	// CellSize is the pixel size of one surface cell.
	CellSize() Size
}

// EntityHost is the capability ViewSync needs from the entity it manages:
// read access to its placement and write access to exactly the two
// properties ViewSync owns while attached.
type EntityHost interface {
	Position() Point
	AbsolutePosition() Point
	// OffsetUnit is the pixel size of one unit of Position and display
	// offset: the cell size, or (1,1) for pixel-positioned entities.
	OffsetUnit() Size
	ParentSurface() (SurfaceHost, bool)
	SetDisplayOffset(Point)
	SetVisible(bool)
}

var (
	_ EntityHost  = (*Entity)(nil)
	_ SurfaceHost = (*Surface)(nil)
	_ Component   = (*ViewSync)(nil)
)

// ViewSync keeps an entity aligned with the viewport of the surface it is
// parented to. Each frame, if the surface's viewport or the entity's position
// changed, the entity's display offset is set to the negated viewport origin
// converted into the entity's cells, and (when HandleVisibility is set) the
// entity is hidden unless its absolute position lies inside the surface's
// visible area.
//
// While attached, ViewSync is the only writer of the entity's display offset
// and, with HandleVisibility, of its visibility. Detaching restores offset
// (0,0) and visible. A ViewSync serves one node at a time; attaching it to a
// second node fails with ErrInvalidHost until it is detached from the first.
type ViewSync struct {
	// HandleVisibility makes ViewSync own the entity's visibility. Changes
	// take effect on the next update that observes a viewport or position
	// change.
	HandleVisibility bool

	host         *Node
	lastPosition Point
	lastView     Rect
}

// NewViewSync returns a ViewSync with HandleVisibility enabled.
func NewViewSync() *ViewSync {
	return &ViewSync{HandleVisibility: true}
}

// OnAdded rejects hosts that are not entities, and any host while the
// ViewSync is attached elsewhere.
func (v *ViewSync) OnAdded(host *Node) error {
	if host.entity == nil {
		return fmt.Errorf("%w: %q is a %s", ErrInvalidHost, host.Name, host.Type)
	}
	if v.host != nil && v.host != host {
		return fmt.Errorf("%w: already attached to %q", ErrInvalidHost, v.host.Name)
	}
	v.host = host
	return nil
}

// Update synchronizes the host entity for this frame.
func (v *ViewSync) Update(host *Node, _ float64) {
	if host.entity != nil {
		v.Sync(host.entity)
	}
}

// OnRemoved releases the host entity.
func (v *ViewSync) OnRemoved(host *Node) {
	if v.host == host {
		v.host = nil
	}
	if host.entity != nil {
		v.Release(host.entity)
		return
	}
	v.reset()
	host.Visible = true
}

// Sync runs one evaluation against h. It does nothing when h is not parented
// to a surface, or when neither the viewport nor h's position changed since
// the last evaluation. Reports whether h was written.
func (v *ViewSync) Sync(h EntityHost) bool {
	parent, ok := h.ParentSurface()
	if !ok {
		return false
	}

	view := parent.ViewRect()
	pos := h.Position()
	if view == v.lastView && pos == v.lastPosition {
		return false
	}

	h.SetDisplayOffset(view.Position().Neg().TranslateFont(parent.CellSize(), h.OffsetUnit()))

	// The absolute position already includes the offset just applied.
	if v.HandleVisibility {
		h.SetVisible(parent.AbsoluteArea().Contains(h.AbsolutePosition()))
	}

	v.lastPosition = pos
	v.lastView = view
	return true
}

// Release clears the cached state and hands h's display offset and
// visibility back as (0,0) and visible, regardless of HandleVisibility. Safe
// to call on a ViewSync that never synced.
func (v *ViewSync) Release(h EntityHost) {
	v.reset()
	h.SetVisible(true)
	h.SetDisplayOffset(Point{})
}

func (v *ViewSync) reset() {
	v.lastPosition = Point{}
	v.lastView = Rect{}
}
