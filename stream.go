package pillars

import (
	"sync"

	"github.com/aretw0/pillars/pkg/domain"
)

// streamManager fans state snapshots out to subscribers.
type streamManager struct {
	mu          sync.Mutex
	subscribers map[chan domain.RollState]struct{}
}

func newStreamManager() *streamManager {
	return &streamManager{
		subscribers: make(map[chan domain.RollState]struct{}),
	}
}

// Subscribe registers a new single-slot channel.
func (sm *streamManager) Subscribe() (chan domain.RollState, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan domain.RollState, 1)
	sm.subscribers[ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if _, ok := sm.subscribers[ch]; ok {
			delete(sm.subscribers, ch)
			close(ch)
		}
	}
}

// Broadcast offers the state to every subscriber.
func (sm *streamManager) Broadcast(state domain.RollState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for ch := range sm.subscribers {
		sm.Offer(ch, state)
	}
}

// Offer replaces whatever is buffered in ch with state, never blocking.
func (sm *streamManager) Offer(ch chan domain.RollState, state domain.RollState) {
	for {
		select {
		case ch <- state.Snapshot():
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// CloseAll closes and forgets every subscriber.
func (sm *streamManager) CloseAll() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for ch := range sm.subscribers {
		delete(sm.subscribers, ch)
		close(ch)
	}
}
