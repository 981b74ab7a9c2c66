package gridscene

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestSurfaceDefaults(t *testing.T) {
	s := NewSurface("map", 30, 20, Size{8, 16})
	if s.Width() != 30 || s.Height() != 20 {
		t.Errorf("size = %dx%d, want 30x20", s.Width(), s.Height())
	}
	if s.CellSize() != (Size{8, 16}) {
		t.Errorf("CellSize = %v", s.CellSize())
	}
	if s.ViewRect() != (Rect{0, 0, 30, 20}) {
		t.Errorf("ViewRect = %v, want whole grid", s.ViewRect())
	}
}

func TestNewSurfacePanicsOnBadSize(t *testing.T) {
	for _, tc := range []struct {
		w, h int
		cell Size
	}{
		{0, 5, Size{8, 8}},
		{5, -1, Size{8, 8}},
		{5, 5, Size{0, 8}},
	} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("NewSurface(%d, %d, %v): expected panic", tc.w, tc.h, tc.cell)
				}
			}()
			NewSurface("bad", tc.w, tc.h, tc.cell)
		}()
	}
}

func TestSurfaceCells(t *testing.T) {
	s := NewSurface("map", 4, 3, Size{8, 8})
	c := Cell{Glyph: '#', Fg: ColorWhite, Bg: ColorBlack}
	s.SetCell(1, 2, c)
	if s.Cell(1, 2) != c {
		t.Errorf("Cell(1,2) = %v, want %v", s.Cell(1, 2), c)
	}
	s.SetCell(10, 10, c) // ignored
	if s.Cell(10, 10) != (Cell{}) {
		t.Error("out of range Cell should be zero")
	}

	s.Fill(Cell{Glyph: '.'})
	if s.Cell(0, 0).Glyph != '.' || s.Cell(3, 2).Glyph != '.' {
		t.Error("Fill should set every cell")
	}
	s.Clear()
	if s.Cell(3, 2) != (Cell{}) {
		t.Error("Clear should reset every cell")
	}
}

func TestSurfacePrintClips(t *testing.T) {
	s := NewSurface("map", 5, 2, Size{8, 8})
	s.SetCell(3, 1, Cell{Bg: ColorBlack})
	n := s.Print(2, 1, "hello", ColorWhite)
	if n != 3 {
		t.Errorf("Print wrote %d cells, want 3", n)
	}
	if s.Cell(2, 1).Glyph != 'h' || s.Cell(4, 1).Glyph != 'l' {
		t.Error("unexpected glyphs after Print")
	}
	if s.Cell(3, 1).Bg != ColorBlack {
		t.Error("Print should keep the background")
	}
	if s.Print(-2, 0, "abc", ColorWhite) != 1 || s.Cell(0, 0).Glyph != 'c' {
		t.Error("Print should clip on the left")
	}
	if s.Print(0, 5, "x", ColorWhite) != 0 {
		t.Error("Print outside the grid should write nothing")
	}
}

func TestSurfaceViewClamping(t *testing.T) {
	s := NewSurface("map", 20, 10, Size{8, 8})
	s.SetViewSize(8, 4)

	s.SetViewPosition(Point{50, 50})
	if got := s.ViewRect(); got != (Rect{12, 6, 8, 4}) {
		t.Errorf("ViewRect = %v, want clamped to (12,6)", got)
	}
	s.SetViewPosition(Point{-3, -3})
	if got := s.ViewRect().Position(); got != (Point{}) {
		t.Errorf("view origin = %v, want origin", got)
	}
	s.ScrollBy(2, 1)
	if got := s.ViewRect().Position(); got != (Point{2, 1}) {
		t.Errorf("view origin after ScrollBy = %v, want (2,1)", got)
	}

	s.SetViewPosition(Point{12, 6})
	s.SetViewSize(16, 8)
	if got := s.ViewRect(); got != (Rect{4, 2, 16, 8}) {
		t.Errorf("ViewRect after grow = %v, want (4,2,16,8)", got)
	}
	s.SetViewSize(100, 0)
	if got := s.ViewRect().Size(); got != (Size{20, 1}) {
		t.Errorf("view size = %v, want (20,1)", got)
	}
}

func TestSurfaceCenterOn(t *testing.T) {
	s := NewSurface("map", 40, 40, Size{8, 8})
	s.SetViewSize(10, 10)
	s.CenterOn(Point{20, 20})
	if got := s.ViewRect().Position(); got != (Point{15, 15}) {
		t.Errorf("view origin = %v, want (15,15)", got)
	}
	s.CenterOn(Point{1, 1})
	if got := s.ViewRect().Position(); got != (Point{}) {
		t.Errorf("view origin = %v, want clamped to origin", got)
	}
}

func TestSurfaceAbsoluteArea(t *testing.T) {
	root := NewContainer("root")
	root.SetPosition(Point{100, 50})
	s := NewSurface("map", 40, 40, Size{16, 8})
	s.Node().SetPosition(Point{1, 2})
	s.SetViewSize(10, 5)
	s.SetViewPosition(Point{7, 7})
	root.AddChild(s.Node())

	// The area does not move with the view origin.
	want := Rect{X: 116, Y: 66, Width: 160, Height: 40}
	if got := s.AbsoluteArea(); got != want {
		t.Errorf("AbsoluteArea = %v, want %v", got, want)
	}
}

func TestSurfaceScrollToTween(t *testing.T) {
	s := NewSurface("map", 100, 100, Size{8, 8})
	s.SetViewSize(10, 10)
	s.ScrollTo(Point{20, 40}, 1.0, ease.Linear)
	if !s.IsScrolling() {
		t.Fatal("IsScrolling should be true")
	}

	s.update(0.5)
	if got := s.ViewRect().Position(); got != (Point{10, 20}) {
		t.Errorf("halfway origin = %v, want (10,20)", got)
	}
	s.update(0.6)
	if got := s.ViewRect().Position(); got != (Point{20, 40}) {
		t.Errorf("final origin = %v, want (20,40)", got)
	}
	if s.IsScrolling() {
		t.Error("IsScrolling should be false after completion")
	}
}

func TestSurfaceScrollToClampsTarget(t *testing.T) {
	s := NewSurface("map", 20, 20, Size{8, 8})
	s.SetViewSize(10, 10)
	s.ScrollTo(Point{99, 99}, 0.1, nil)
	s.update(1)
	if got := s.ViewRect().Position(); got != (Point{10, 10}) {
		t.Errorf("origin = %v, want clamped (10,10)", got)
	}
}

func TestSurfaceStopScroll(t *testing.T) {
	s := NewSurface("map", 100, 100, Size{8, 8})
	s.SetViewSize(10, 10)
	s.ScrollTo(Point{50, 0}, 1.0, ease.Linear)
	s.update(0.2)
	s.StopScroll()
	s.update(0.5)
	if got := s.ViewRect().Position(); got != (Point{10, 0}) {
		t.Errorf("origin = %v, want (10,0)", got)
	}
}

func TestSurfaceFollowConvertsCells(t *testing.T) {
	s := NewSurface("map", 100, 100, Size{16, 16})
	s.SetViewSize(10, 10)
	e := NewEntity("hero", Size{8, 8}, Cell{})
	e.SetPosition(Point{60, 80}) // surface cell (30, 40)
	s.AddChild(e.Node())

	s.Follow(e)
	s.update(0)
	if got := s.ViewRect().Position(); got != (Point{25, 35}) {
		t.Errorf("origin = %v, want (25,35)", got)
	}

	s.Unfollow()
	e.SetPosition(Point{0, 0})
	s.update(0)
	if got := s.ViewRect().Position(); got != (Point{25, 35}) {
		t.Errorf("origin after Unfollow = %v, want unchanged", got)
	}
}

func TestSurfaceFollowDisposedTarget(t *testing.T) {
	s := NewSurface("map", 100, 100, Size{8, 8})
	e := NewEntity("hero", Size{8, 8}, Cell{})
	s.Follow(e)
	e.Node().Dispose()
	s.update(0)
	if s.followTarget != nil {
		t.Error("disposed follow target should be dropped")
	}
}

func TestSurfaceScrollDoesNotTouchChildren(t *testing.T) {
	s := NewSurface("map", 40, 40, Size{8, 8})
	s.SetViewSize(10, 10)
	e := NewEntity("hero", Size{8, 8}, Cell{})
	s.AddChild(e.Node())

	s.ScrollBy(5, 5)
	s.ScrollTo(Point{20, 20}, 0.1, nil)
	s.update(1)
	if e.DisplayOffset() != (Point{}) || !e.Visible() {
		t.Error("scrolling alone must not change child offset or visibility")
	}
}
