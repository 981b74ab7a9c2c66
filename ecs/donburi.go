package ecs

import (
	"github.com/phanxgames/gridscene"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// VisibilityEventType is the Donburi event type for gridscene visibility events.
// Subscribe to this in your ECS systems to react to entities scrolling in and
// out of view.
var VisibilityEventType = events.NewEventType[gridscene.VisibilityEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are published to VisibilityEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) gridscene.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event gridscene.VisibilityEvent) {
	VisibilityEventType.Publish(s.world, event)
}
