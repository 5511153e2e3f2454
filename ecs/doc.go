// Package ecs provides ECS adapters for willow's layout diagnostics.
//
// The primary adapter is [NewDonburiSink], which bridges layout events
// (unresolved sources, detached targets) into a [Donburi] world as typed
// events. Subscribe to [LayoutEventType] in your ECS systems to receive them.
//
// Usage:
//
//	eng := layout.New(layout.Config{Events: ecs.NewDonburiSink(world)})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
