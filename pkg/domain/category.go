package domain

// Category is one of the fixed pillars revealed by the die.
type Category struct {
	// Name is the display name, also recorded in the history.
	Name string `json:"name"`

	// Accent is the hex color used for the result banner and history chip.
	Accent string `json:"accent"`

	// Glyph is a short symbol shown next to the name.
	Glyph string `json:"glyph"`
}

// CategoryCount is the number of pillars in a full session.
const CategoryCount = 4

// NeutralAccent is the die color used before any pillar has been revealed.
const NeutralAccent = "#64748b"

// Categories lists the pillars in reveal order. The set is fixed at build time.
var Categories = [CategoryCount]Category{
	{Name: "Government", Accent: "#ef4444", Glyph: "🏛️"},
	{Name: "Donor", Accent: "#3b82f6", Glyph: "🤝"},
	{Name: "Senior Management", Accent: "#a855f7", Glyph: "👔"},
	{Name: "Situation & Context", Accent: "#f59e0b", Glyph: "🌍"},
}

// CategoryAt returns the category at a 0-based position.
func CategoryAt(index int) (Category, bool) {
	if index < 0 || index >= CategoryCount {
		return Category{}, false
	}
	return Categories[index], true
}

// CategoryNames returns the names of all categories in reveal order.
func CategoryNames() []string {
	names := make([]string, 0, CategoryCount)
	for _, c := range Categories {
		names = append(names, c.Name)
	}
	return names
}
