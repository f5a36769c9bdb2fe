// Package ecs forwards sandbox motion events into a Donburi world.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/sandbox"
)

// MotionEventType is the Donburi event type for sandbox motion events.
// Subscribe to it in ECS systems to react to advances, wraps, turns and quits.
var MotionEventType = events.NewEventType[sandbox.Event]()

// Snapshot holds the most recent event. The sink keeps it on a single entity.
var Snapshot = donburi.NewComponentType[sandbox.Event]()

// DonburiSink implements sandbox.EventSink and sandbox.EventFlusher.
type DonburiSink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewDonburiSink creates a sink backed by world. Events are published to
// MotionEventType and delivered to subscribers when FlushEvents runs, which
// the App does at the end of every tick.
func NewDonburiSink(world donburi.World) *DonburiSink {
	return &DonburiSink{world: world, entity: world.Create(Snapshot)}
}

func (s *DonburiSink) EmitEvent(event sandbox.Event) {
	Snapshot.SetValue(s.world.Entry(s.entity), event)
	MotionEventType.Publish(s.world, event)
}

func (s *DonburiSink) FlushEvents() {
	MotionEventType.ProcessEvents(s.world)
}

// Last returns the most recently emitted event.
func (s *DonburiSink) Last() sandbox.Event {
	return *Snapshot.Get(s.world.Entry(s.entity))
}
