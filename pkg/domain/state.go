package domain

// RollState represents the current snapshot of a roll session.
type RollState struct {
	// CurrentIndex is the position of the last revealed category, -1 before the first roll.
	CurrentIndex int `json:"current_index"`

	// IsAnimating is true only while a tick sequence is in flight.
	IsAnimating bool `json:"is_animating"`

	// DisplayedFace is the face currently shown. Cosmetic while animating.
	DisplayedFace Face `json:"displayed_face"`

	// ResultVisible is true once a roll has resolved and until the next roll starts.
	ResultVisible bool `json:"result_visible"`

	// History holds the names of the revealed categories, in order.
	History []string `json:"history"`
}

// NewRollState creates a fresh session with nothing revealed.
func NewRollState() RollState {
	return RollState{
		CurrentIndex:  -1,
		DisplayedFace: MinFace,
		History:       []string{},
	}
}

// NextIndex is the position the next roll would reveal.
func (s RollState) NextIndex() int {
	return s.CurrentIndex + 1
}

// CanRoll reports whether a roll request would be accepted.
func (s RollState) CanRoll() bool {
	return !s.IsAnimating && s.NextIndex() < CategoryCount
}

// AllRevealed reports whether every category has been revealed and nothing is rolling.
func (s RollState) AllRevealed() bool {
	return s.CurrentIndex == CategoryCount-1 && !s.IsAnimating
}

// Current returns the last revealed category, if any.
func (s RollState) Current() (Category, bool) {
	return CategoryAt(s.CurrentIndex)
}

// CurrentAccent is the accent of the last revealed category, or NeutralAccent.
func (s RollState) CurrentAccent() string {
	if c, ok := s.Current(); ok {
		return c.Accent
	}
	return NeutralAccent
}

// Snapshot returns a deep copy so callers can't mutate the owner's history.
func (s RollState) Snapshot() RollState {
	out := s
	out.History = make([]string, len(s.History))
	copy(out.History, s.History)
	return out
}
