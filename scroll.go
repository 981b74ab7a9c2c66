package gridscene

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Viewport movement for surfaces. These drivers only move the viewport; they
// never touch the display offset or visibility of the surface's children.

// scrollAnim holds active scroll-to tweens for the viewport origin.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// SetViewPosition moves the viewport origin to p (in cells), clamped so the
// viewport stays inside the grid.
func (s *Surface) SetViewPosition(p Point) {
	s.view.X, s.view.Y = s.clampViewOrigin(p.X, p.Y)
}

// ScrollBy moves the viewport origin by (dx, dy) cells, clamped.
func (s *Surface) ScrollBy(dx, dy int) {
	s.SetViewPosition(Point{s.view.X + dx, s.view.Y + dy})
}

// CenterOn moves the viewport so that the cell p sits at its center, clamped.
func (s *Surface) CenterOn(p Point) {
	s.SetViewPosition(Point{p.X - s.view.Width/2, p.Y - s.view.Height/2})
}

// ScrollTo animates the viewport origin to p over duration seconds. The
// target is clamped up front; an in-flight scroll is replaced.
func (s *Surface) ScrollTo(p Point, duration float32, easeFn ease.TweenFunc) {
	tx, ty := s.clampViewOrigin(p.X, p.Y)
	if easeFn == nil {
		easeFn = ease.Linear
	}
	s.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(s.view.X), float32(tx), duration, easeFn),
		tweenY: gween.New(float32(s.view.Y), float32(ty), duration, easeFn),
	}
}

// IsScrolling reports whether a ScrollTo animation is in progress.
func (s *Surface) IsScrolling() bool {
	return s.scrollTween != nil
}

// StopScroll cancels an in-progress ScrollTo, leaving the viewport where it is.
func (s *Surface) StopScroll() {
	s.scrollTween = nil
}

// Follow keeps the viewport centered on an entity, re-evaluated every frame.
func (s *Surface) Follow(e *Entity) {
	s.followTarget = e
}

// Unfollow stops tracking the current target entity.
func (s *Surface) Unfollow() {
	s.followTarget = nil
}

// update advances follow and scroll drivers. Called from Scene.Update before
// the surface's children are updated, so they observe this frame's viewport.
func (s *Surface) update(dt float64) {
	if t := s.followTarget; t != nil {
		if t.node.IsDisposed() {
			s.followTarget = nil
		} else {
			s.CenterOn(s.cellOf(t))
		}
	}

	if s.scrollTween != nil {
		x, y := s.view.X, s.view.Y
		if !s.scrollTween.doneX {
			val, done := s.scrollTween.tweenX.Update(float32(dt))
			x = int(math.Round(float64(val)))
			s.scrollTween.doneX = done
		}
		if !s.scrollTween.doneY {
			val, done := s.scrollTween.tweenY.Update(float32(dt))
			y = int(math.Round(float64(val)))
			s.scrollTween.doneY = done
		}
		s.SetViewPosition(Point{x, y})
		if s.scrollTween.doneX && s.scrollTween.doneY {
			s.scrollTween = nil
		}
	}
}

// cellOf converts an entity's logical position into this surface's cells.
func (s *Surface) cellOf(e *Entity) Point {
	return e.node.position.TranslateFont(e.OffsetUnit(), s.cellSize)
}

// clampViewOrigin restricts a viewport origin so the viewport stays within
// the grid.
func (s *Surface) clampViewOrigin(x, y int) (int, int) {
	return clampInt(x, 0, s.width-s.view.Width), clampInt(y, 0, s.height-s.view.Height)
}
