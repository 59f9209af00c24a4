package ecs

import "github.com/milk9111/adventurer/ecs/component"

// EventType identifies an event payload.
type EventType string

const (
	EventAnimationFinished EventType = "animation_finished"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// AnimationFinishedEvent is pushed when a non-looping clip completes its
// last cycle on an entity.
type AnimationFinishedEvent struct {
	Entity Entity
	Clip   component.ClipID
}

// EventQueue is a two-slot queue: events pushed during a tick become the
// read-only batch of the following tick and are dropped after it.
type EventQueue struct {
	pending []Event
	batch   []Event
}

// Push adds an event to the next batch.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.pending = append(q.pending, evt)
}

// Batch returns the events pushed during the previous tick. Callers must not
// modify the slice.
func (q *EventQueue) Batch() []Event {
	if q == nil {
		return nil
	}
	return q.batch
}

// AnimationFinished returns the animation finished payloads of the batch.
func (q *EventQueue) AnimationFinished() []AnimationFinishedEvent {
	if q == nil {
		return nil
	}
	var out []AnimationFinishedEvent
	for _, evt := range q.batch {
		if evt.Type != EventAnimationFinished {
			continue
		}
		if fin, ok := evt.Data.(AnimationFinishedEvent); ok {
			out = append(out, fin)
		}
	}
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.batch, q.pending = q.pending, q.batch[:0]
}
