package domain

// StateDiff represents the changes between two roll snapshots.
// Nil fields did not change.
type StateDiff struct {
	CurrentIndex  *int  `json:"current_index,omitempty"`
	IsAnimating   *bool `json:"is_animating,omitempty"`
	DisplayedFace *Face `json:"displayed_face,omitempty"`
	ResultVisible *bool `json:"result_visible,omitempty"`

	// HistoryParams carries appended names, or the whole history after a reset.
	HistoryParams *HistoryDelta `json:"history,omitempty"`
}

// HistoryDelta represents changes to the history trail.
type HistoryDelta struct {
	Appended []string `json:"appended,omitempty"`
	Cleared  bool     `json:"cleared,omitempty"`
}

// Diff calculates the difference between oldState and newState.
// If oldState is nil, it returns a diff representing the entire newState.
// It returns nil when nothing changed.
func Diff(oldState, newState *RollState) *StateDiff {
	if newState == nil {
		return nil
	}

	diff := &StateDiff{}
	if oldState == nil || oldState.CurrentIndex != newState.CurrentIndex {
		diff.CurrentIndex = &newState.CurrentIndex
	}
	if oldState == nil || oldState.IsAnimating != newState.IsAnimating {
		diff.IsAnimating = &newState.IsAnimating
	}
	if oldState == nil || oldState.DisplayedFace != newState.DisplayedFace {
		diff.DisplayedFace = &newState.DisplayedFace
	}
	if oldState == nil || oldState.ResultVisible != newState.ResultVisible {
		diff.ResultVisible = &newState.ResultVisible
	}
	diff.HistoryParams = diffHistory(oldState, newState)

	if diff.CurrentIndex == nil &&
		diff.IsAnimating == nil &&
		diff.DisplayedFace == nil &&
		diff.ResultVisible == nil &&
		diff.HistoryParams == nil {
		return nil
	}
	return diff
}

// diffHistory assumes append-only history; a shorter history is a reset.
func diffHistory(old, new *RollState) *HistoryDelta {
	if old == nil {
		if len(new.History) == 0 {
			return nil
		}
		return &HistoryDelta{Appended: new.History}
	}

	oldLen, newLen := len(old.History), len(new.History)
	switch {
	case newLen > oldLen:
		return &HistoryDelta{Appended: new.History[oldLen:]}
	case newLen < oldLen:
		return &HistoryDelta{Cleared: true, Appended: new.History}
	}
	return nil
}
