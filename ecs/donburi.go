package ecs

import (
	"github.com/phanxgames/willowlayout/layout"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LayoutEventType is the Donburi event type for layout diagnostics.
// Subscribe to this in your ECS systems to react to skipped rules and
// detached targets.
var LayoutEventType = events.NewEventType[layout.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a layout EventSink backed by a Donburi world.
// Events are published to LayoutEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) layout.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event layout.Event) {
	LayoutEventType.Publish(s.world, event)
}
