package domain

// Face is the value shown on the die, from MinFace to MaxFace.
type Face int

const (
	MinFace Face = 1
	MaxFace Face = 6
)

// Pip is the center of a pip on a 100x100 face.
type Pip struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var pipLayouts = map[Face][]Pip{
	1: {{50, 50}},
	2: {{25, 25}, {75, 75}},
	3: {{25, 25}, {50, 50}, {75, 75}},
	4: {{25, 25}, {75, 25}, {25, 75}, {75, 75}},
	5: {{25, 25}, {75, 25}, {50, 50}, {25, 75}, {75, 75}},
	6: {{25, 25}, {75, 25}, {25, 50}, {75, 50}, {25, 75}, {75, 75}},
}

// Valid reports whether f is a real die value.
func (f Face) Valid() bool {
	return f >= MinFace && f <= MaxFace
}

// Clamp forces f into the 1..6 range.
func (f Face) Clamp() Face {
	switch {
	case f < MinFace:
		return MinFace
	case f > MaxFace:
		return MaxFace
	}
	return f
}

// Pips returns the pip arrangement for the face.
// Invalid values fall back to the single centered pip.
func (f Face) Pips() []Pip {
	layout, ok := pipLayouts[f]
	if !ok {
		layout = pipLayouts[MinFace]
	}
	out := make([]Pip, len(layout))
	copy(out, layout)
	return out
}

// FaceFor returns the settled face for a revealed category position.
func FaceFor(index int) Face {
	return Face(index + 1).Clamp()
}
