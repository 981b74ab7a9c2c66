package gridscene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandSurfaceCell CommandType = iota // one viewport cell of a surface
	CommandEntity                         // an entity glyph
)

// RenderCommand is a single draw instruction emitted during scene traversal.
// Coordinates are scene pixels.
type RenderCommand struct {
	Type   CommandType
	X, Y   int
	Width  int
	Height int
	Glyph  rune
	Fg     Color
	Bg     Color
	NodeID uint32
}

// Draw traverses the scene tree, emits render commands and submits them to
// the given screen image in tree order.
func (s *Scene) Draw(screen *ebiten.Image) {
	var stats drawStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.emitCommands()

	if s.debug {
		stats.traverseTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		t0 = time.Now()
	}

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.submitCommands(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		s.debugLogDraw(stats)
	}
}

// emitCommands rebuilds the command list from the current tree.
func (s *Scene) emitCommands() {
	s.commands = s.commands[:0]
	s.traverse(s.root)
}

// Commands returns the commands emitted by the last Draw. The returned slice
// is reused between frames and MUST NOT be retained.
func (s *Scene) Commands() []RenderCommand {
	return s.commands
}

// traverse walks the node tree depth-first, emitting commands for visible
// surfaces and entities. An invisible node prunes its subtree.
func (s *Scene) traverse(n *Node) {
	if !n.Visible {
		return
	}
	switch {
	case n.surface != nil:
		s.emitSurface(n.surface)
	case n.entity != nil:
		s.emitEntity(n.entity)
	}
	for _, child := range n.children {
		s.traverse(child)
	}
}

// emitSurface emits one command per viewport cell that has a glyph or a
// visible background.
func (s *Scene) emitSurface(sf *Surface) {
	abs := sf.node.AbsolutePosition()
	cw, ch := sf.cellSize.Width, sf.cellSize.Height
	view := sf.view
	for row := 0; row < view.Height; row++ {
		rowOffset := (view.Y + row) * sf.width
		for col := 0; col < view.Width; col++ {
			c := sf.cells[rowOffset+view.X+col]
			if c.Glyph == 0 && c.Bg.A == 0 {
				continue
			}
			s.commands = append(s.commands, RenderCommand{
				Type:   CommandSurfaceCell,
				X:      abs.X + col*cw,
				Y:      abs.Y + row*ch,
				Width:  cw,
				Height: ch,
				Glyph:  c.Glyph,
				Fg:     c.Fg,
				Bg:     c.Bg,
				NodeID: sf.node.ID,
			})
		}
	}
}

func (s *Scene) emitEntity(e *Entity) {
	abs := e.node.AbsolutePosition()
	s.commands = append(s.commands, RenderCommand{
		Type:   CommandEntity,
		X:      abs.X,
		Y:      abs.Y,
		Width:  e.cellSize.Width,
		Height: e.cellSize.Height,
		Glyph:  e.Appearance.Glyph,
		Fg:     e.Appearance.Fg,
		Bg:     e.Appearance.Bg,
		NodeID: e.node.ID,
	})
}
