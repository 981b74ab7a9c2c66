package gridscene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, scene events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event VisibilityEvent)
}

// VisibilityEvent reports that a component changed a node's visibility
// during a frame update.
type VisibilityEvent struct {
	Type     EventType
	NodeID   uint32
	EntityID uint32
	Name     string
	Visible  bool
}

const defaultCommandCap = 1024

// Scene is the top-level object that owns the node tree, drives per-frame
// updates and holds render buffers.
type Scene struct {
	root   *Node
	store  EntityStore
	log    *zap.Logger
	logSet bool
	debug  bool

	// ClearColor fills the screen before drawing. A zero alpha skips the fill.
	ClearColor Color

	// Render state
	commands []RenderCommand
	frame    uint64
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:     NewContainer("root"),
		log:      zap.NewNop(),
		commands: make([]RenderCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update advances one frame using the current ticks-per-second as the time
// step.
func (s *Scene) Update() {
	s.UpdateDelta(1.0 / float64(ebiten.TPS()))
}

// UpdateDelta advances one frame by dt seconds. The tree is visited
// depth-first: a surface's scroll drivers run first, then the node's
// components in attach order, then its children. Each node is visited once
// per call.
func (s *Scene) UpdateDelta(dt float64) {
	var stats frameStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.frame++
	s.updateNode(s.root, dt, &stats)

	// Refresh absolute positions so Draw and hit queries read warm caches.
	updateAbsolutePosition(s.root, Point{}, false)

	if s.debug {
		stats.updateTime = time.Since(t0)
		s.debugLogFrame(stats)
	}
}

func (s *Scene) updateNode(n *Node, dt float64, stats *frameStats) {
	stats.nodes++
	if n.surface != nil {
		n.surface.update(dt)
	}
	if len(n.components) > 0 {
		wasVisible := n.Visible
		stats.components += n.updateComponents(dt)
		if n.Visible != wasVisible {
			stats.visibilityChanges++
			s.emitVisibility(n)
		}
	}
	for i := 0; i < len(n.children); i++ {
		s.updateNode(n.children[i], dt, stats)
	}
}

func (s *Scene) emitVisibility(n *Node) {
	if s.debug {
		s.log.Debug("visibility changed",
			zap.Uint32("node", n.ID),
			zap.String("name", n.Name),
			zap.Bool("visible", n.Visible))
	}
	if s.store == nil {
		return
	}
	s.store.EmitEvent(VisibilityEvent{
		Type:     EventVisibilityChanged,
		NodeID:   n.ID,
		EntityID: n.EntityID,
		Name:     n.Name,
		Visible:  n.Visible,
	})
}

// Frame returns the number of completed updates.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLogger replaces the scene logger. A nil logger disables logging.
func (s *Scene) SetLogger(log *zap.Logger) {
	s.logSet = log != nil
	if log == nil {
		log = zap.NewNop()
	}
	s.log = log
	globalLog = log
}

// Logger returns the scene logger.
func (s *Scene) Logger() *zap.Logger {
	return s.log
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are logged, and
// per-frame stats are logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last. globalLog follows the same rule.
var (
	globalDebug bool
	globalLog   = zap.NewNop()
)
