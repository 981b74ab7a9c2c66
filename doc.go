// Package gridscene is a retained-mode grid scene graph for [Ebitengine].
//
// Scenes are built from three kinds of [Node]: containers (positioned in
// pixels), surfaces (scrollable grids of glyph cells with their own cell size)
// and entities (movable glyphs with their own cell size, usually parented to
// a surface).
//
// # Quick start
//
//	scene := gridscene.NewScene()
//
//	world := gridscene.NewSurface("world", 200, 100, gridscene.Size{16, 16})
//	world.SetViewSize(40, 25)
//	scene.Root().AddChild(world.Node())
//
//	hero := gridscene.NewEntity("hero", gridscene.Size{8, 8},
//		gridscene.Cell{Glyph: '@', Fg: gridscene.ColorWhite})
//	world.AddChild(hero.Node())
//	_ = hero.AddComponent(gridscene.NewViewSync())
//
//	gridscene.Run(scene, gridscene.RunConfig{Title: "demo", Width: 640, Height: 400})
//
// # Viewports and ViewSync
//
// A surface only draws its viewport ([Surface.ViewRect]). Children of a
// surface are positioned relative to the surface itself, so when the
// viewport scrolls they would stay put on screen. [ViewSync] is the component
// that fixes this: every frame where the viewport or the entity's position
// changed, it sets the entity's display offset to the negated viewport origin
// (converted from the surface's cell size to the entity's) and hides the
// entity when it falls outside the surface's visible area.
//
// # Components
//
// Any node can carry [Component] values. [Scene.Update] runs them once per
// frame, depth-first, after the node's surface scroll drivers. Components are
// detached with [Node.RemoveComponent] or automatically on [Node.Dispose].
//
// # Rectangles
//
// [Rect] is half-open: a point on the right or bottom edge is outside.
//
// ECS integration (via [Donburi]) lives in the gridscene/ecs module.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package gridscene
