// Package view derives everything a front-end draws from a RollState.
package view

import (
	"fmt"
	"strings"

	"github.com/aretw0/pillars/pkg/domain"
)

// Title is the heading of the widget.
const Title = "🎲 Strategic Pillars Dice"

// Die colors that don't belong to a category.
const (
	RollingAccent = "#475569"
	IdleAccent    = "#334155"
)

// ControlKind identifies what the primary control does.
type ControlKind int

const (
	ControlRoll ControlKind = iota
	ControlRolling
	ControlReset
)

// Control is the primary action button.
type Control struct {
	Kind    ControlKind
	Label   string
	Enabled bool
}

// Banner announces the category revealed by the last roll.
type Banner struct {
	Glyph  string
	Name   string
	Accent string
}

// TrailEntry is one completed roll in the history trail.
type TrailEntry struct {
	Roll   int
	Glyph  string
	Name   string
	Accent string
}

// Label is the text of the history chip.
func (e TrailEntry) Label() string {
	return fmt.Sprintf("Roll %d: %s", e.Roll, e.Name)
}

// Model is the rendered form of a RollState.
type Model struct {
	Title     string
	Status    string
	Face      domain.Face
	Pips      []domain.Pip
	DieAccent string
	Rolling   bool
	Done      bool
	Banner    *Banner
	Control   Control
	Trail     []TrailEntry
}

// Build renders a state. It is a total function: every state produces a model.
func Build(s domain.RollState) Model {
	m := Model{
		Title:     Title,
		Status:    Status(s),
		Face:      s.DisplayedFace,
		Pips:      s.DisplayedFace.Pips(),
		DieAccent: dieAccent(s),
		Rolling:   s.IsAnimating,
		Done:      s.AllRevealed(),
		Control:   control(s),
		Trail:     trail(s),
	}

	if s.ResultVisible {
		if c, ok := s.Current(); ok {
			m.Banner = &Banner{
				Glyph:  c.Glyph,
				Name:   strings.ToUpper(c.Name),
				Accent: c.Accent,
			}
		}
	}
	return m
}

// Status is the progress line.
func Status(s domain.RollState) string {
	if s.AllRevealed() {
		return "All pillars revealed!"
	}
	n := s.CurrentIndex + 2
	if n > domain.CategoryCount {
		n = domain.CategoryCount
	}
	return fmt.Sprintf("Roll %d of %d", n, domain.CategoryCount)
}

func dieAccent(s domain.RollState) string {
	switch {
	case s.IsAnimating:
		return RollingAccent
	case s.ResultVisible:
		return s.CurrentAccent()
	}
	return IdleAccent
}

func control(s domain.RollState) Control {
	switch {
	case s.AllRevealed():
		return Control{Kind: ControlReset, Label: "🔄  Start Over", Enabled: true}
	case s.IsAnimating:
		return Control{Kind: ControlRolling, Label: "Rolling...", Enabled: false}
	case s.CurrentIndex == -1:
		return Control{Kind: ControlRoll, Label: "🎲  Roll the Dice", Enabled: true}
	}
	return Control{Kind: ControlRoll, Label: "🎲  Roll Again", Enabled: true}
}

func trail(s domain.RollState) []TrailEntry {
	entries := make([]TrailEntry, 0, len(s.History))
	for i, name := range s.History {
		c, _ := domain.CategoryAt(i)
		entries = append(entries, TrailEntry{
			Roll:   i + 1,
			Glyph:  c.Glyph,
			Name:   name,
			Accent: c.Accent,
		})
	}
	return entries
}

// Summary is a markdown recap of the revealed pillars.
func Summary(s domain.RollState) string {
	var b strings.Builder
	b.WriteString("# Strategic Pillars\n\n")
	if len(s.History) == 0 {
		b.WriteString("_No pillar revealed yet._\n")
		return b.String()
	}
	for _, e := range trail(s) {
		fmt.Fprintf(&b, "%d. %s **%s**\n", e.Roll, e.Glyph, e.Name)
	}
	if s.AllRevealed() {
		b.WriteString("\nAll pillars revealed!\n")
	} else {
		fmt.Fprintf(&b, "\n%d of %d pillars revealed.\n", len(s.History), domain.CategoryCount)
	}
	return b.String()
}

// Grid maps a face's pips onto a 3x3 cell grid, for text front-ends.
func Grid(f domain.Face) [3][3]bool {
	var g [3][3]bool
	for _, p := range f.Pips() {
		g[cell(p.Y)][cell(p.X)] = true
	}
	return g
}

func cell(coord int) int {
	switch {
	case coord < 40:
		return 0
	case coord > 60:
		return 2
	}
	return 1
}
