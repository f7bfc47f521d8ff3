package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventRollStart    EventType = "roll_start"
	EventTick         EventType = "tick"
	EventRollComplete EventType = "roll_complete"
	EventReset        EventType = "reset"
	EventTeardown     EventType = "teardown"
)

// RollEvent describes a step of the roll lifecycle.
type RollEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`

	// TargetIndex is the category position being rolled for, -1 when not applicable.
	TargetIndex int `json:"target_index"`

	// Tick is the 1-based tick number (EventTick only).
	Tick int `json:"tick,omitempty"`

	// Face is the face shown after the event.
	Face Face `json:"face,omitempty"`

	// Category is the revealed category name (EventRollComplete only).
	Category string `json:"category,omitempty"`

	// Elapsed is the time since the roll started (EventRollComplete only).
	Elapsed time.Duration `json:"elapsed,omitempty"`

	// Interrupted is set on EventReset and EventTeardown when an animation was cancelled.
	Interrupted bool `json:"interrupted,omitempty"`
}

// LifecycleHooks defines callbacks for widget observability.
// Hooks run on the widget's event loop and must not call back into the widget.
type LifecycleHooks struct {
	OnRollStart    func(*RollEvent)
	OnTick         func(*RollEvent)
	OnRollComplete func(*RollEvent)
	OnReset        func(*RollEvent)
	OnTeardown     func(*RollEvent)
}

// Emit dispatches the event to the hook matching its type.
func (h LifecycleHooks) Emit(e *RollEvent) {
	var fn func(*RollEvent)
	switch e.Type {
	case EventRollStart:
		fn = h.OnRollStart
	case EventTick:
		fn = h.OnTick
	case EventRollComplete:
		fn = h.OnRollComplete
	case EventReset:
		fn = h.OnReset
	case EventTeardown:
		fn = h.OnTeardown
	}
	if fn != nil {
		fn(e)
	}
}

// ChainHooks combines several hook sets; each event is delivered to all of them in order.
func ChainHooks(sets ...LifecycleHooks) LifecycleHooks {
	emit := func(e *RollEvent) {
		for _, s := range sets {
			s.Emit(e)
		}
	}
	return LifecycleHooks{
		OnRollStart:    emit,
		OnTick:         emit,
		OnRollComplete: emit,
		OnReset:        emit,
		OnTeardown:     emit,
	}
}
