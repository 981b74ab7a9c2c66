// Package ecs provides ECS adapters for gridscene's scene events.
//
// The primary adapter is [NewDonburiStore], which bridges gridscene
// visibility events (raised when a component such as ViewSync shows or hides
// a node) into a [Donburi] world as typed events. Subscribe to
// [VisibilityEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
