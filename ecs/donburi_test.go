package ecs

import (
	"testing"

	"github.com/phanxgames/gridscene"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []gridscene.VisibilityEvent
	VisibilityEventType.Subscribe(world, func(w donburi.World, e gridscene.VisibilityEvent) {
		received = append(received, e)
	})

	store.EmitEvent(gridscene.VisibilityEvent{
		Type:     gridscene.EventVisibilityChanged,
		NodeID:   7,
		EntityID: 42,
		Name:     "hero",
		Visible:  false,
	})
	store.EmitEvent(gridscene.VisibilityEvent{
		Type:    gridscene.EventVisibilityChanged,
		NodeID:  7,
		Visible: true,
	})

	// Events are queued; process them.
	VisibilityEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.EntityID != 42 || e.Name != "hero" || e.Visible {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.NodeID != 7 || !e.Visible {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store gridscene.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_SceneScroll(t *testing.T) {
	world := donburi.NewWorld()
	scene := gridscene.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))

	sf := gridscene.NewSurface("map", 20, 20, gridscene.Size{Width: 8, Height: 8})
	sf.SetViewSize(10, 10)
	scene.Root().AddChild(sf.Node())

	e := gridscene.NewEntity("npc", gridscene.Size{Width: 8, Height: 8}, gridscene.Cell{Glyph: 'n'})
	e.Node().EntityID = 99
	e.SetPosition(gridscene.Point{X: 2, Y: 2})
	sf.AddChild(e.Node())
	if err := e.AddComponent(gridscene.NewViewSync()); err != nil {
		t.Fatal(err)
	}

	var received []gridscene.VisibilityEvent
	VisibilityEventType.Subscribe(world, func(w donburi.World, ev gridscene.VisibilityEvent) {
		received = append(received, ev)
	})

	scene.UpdateDelta(1.0 / 60)
	sf.SetViewPosition(gridscene.Point{X: 5, Y: 5})
	scene.UpdateDelta(1.0 / 60)
	events.ProcessAllEvents(world)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if received[0].EntityID != 99 || received[0].Visible {
		t.Errorf("event: %+v", received[0])
	}
}
