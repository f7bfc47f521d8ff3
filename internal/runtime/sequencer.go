package runtime

import "github.com/aretw0/pillars/pkg/domain"

// Sequencer owns the RollState and enforces the roll progression.
// It is not safe for concurrent use; the owner serializes calls.
type Sequencer struct {
	state domain.RollState
}

// NewSequencer creates a sequencer with a fresh session.
func NewSequencer() *Sequencer {
	return &Sequencer{state: domain.NewRollState()}
}

// State returns a copy of the current state.
func (s *Sequencer) State() domain.RollState {
	return s.state.Snapshot()
}

// RequestRoll starts a roll for the next category.
// It is a no-op (ok=false) while animating or once every category is revealed.
func (s *Sequencer) RequestRoll() (target int, ok bool) {
	if !s.state.CanRoll() {
		return -1, false
	}
	s.state.IsAnimating = true
	s.state.ResultVisible = false
	return s.state.NextIndex(), true
}

// ShowFace updates the cosmetic face while a roll is animating.
// The value never reaches CurrentIndex or History.
func (s *Sequencer) ShowFace(face domain.Face) {
	if !s.state.IsAnimating {
		return
	}
	s.state.DisplayedFace = face.Clamp()
}

// CompleteRoll settles the roll for target and records it in the history.
// Calls that don't match the in-flight roll are ignored.
func (s *Sequencer) CompleteRoll(target int) bool {
	if !s.state.IsAnimating || target != s.state.NextIndex() {
		return false
	}
	category, ok := domain.CategoryAt(target)
	if !ok {
		return false
	}

	s.state.DisplayedFace = domain.FaceFor(target)
	s.state.CurrentIndex = target
	s.state.ResultVisible = true
	s.state.IsAnimating = false
	s.state.History = append(s.state.History, category.Name)
	return true
}

// Reset restores the initial session state unconditionally.
func (s *Sequencer) Reset() {
	s.state = domain.NewRollState()
}
