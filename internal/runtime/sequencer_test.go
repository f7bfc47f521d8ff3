package runtime_test

import (
	"testing"

	"github.com/aretw0/pillars/internal/runtime"
	"github.com/aretw0/pillars/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencer_FirstRoll(t *testing.T) {
	seq := runtime.NewSequencer()

	target, ok := seq.RequestRoll()
	require.True(t, ok)
	assert.Equal(t, 0, target)

	s := seq.State()
	assert.True(t, s.IsAnimating)
	assert.False(t, s.ResultVisible)
	assert.Equal(t, -1, s.CurrentIndex)

	require.True(t, seq.CompleteRoll(target))
	s = seq.State()
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, domain.Face(1), s.DisplayedFace)
	assert.Equal(t, []string{"Government"}, s.History)
	assert.True(t, s.ResultVisible)
	assert.False(t, s.IsAnimating)
}

func TestSequencer_RequestWhileAnimatingIsNoop(t *testing.T) {
	seq := runtime.NewSequencer()
	_, ok := seq.RequestRoll()
	require.True(t, ok)
	before := seq.State()

	target, ok := seq.RequestRoll()
	assert.False(t, ok)
	assert.Equal(t, -1, target)
	assert.Equal(t, before, seq.State())
}

func TestSequencer_FullProgression(t *testing.T) {
	seq := runtime.NewSequencer()

	for i := 0; i < domain.CategoryCount; i++ {
		target, ok := seq.RequestRoll()
		require.True(t, ok)
		require.Equal(t, i, target)
		require.True(t, seq.CompleteRoll(target))

		s := seq.State()
		assert.Equal(t, i, s.CurrentIndex)
		assert.Len(t, s.History, i+1)
		assert.Equal(t, domain.Categories[i].Name, s.History[i])
		assert.Equal(t, domain.Face(i+1), s.DisplayedFace)
	}

	s := seq.State()
	assert.Equal(t, domain.CategoryNames(), s.History)
	assert.True(t, s.AllRevealed())

	// Idempotent once everything is revealed.
	_, ok := seq.RequestRoll()
	assert.False(t, ok)
	assert.Equal(t, s, seq.State())
}

func TestSequencer_CompleteRollGuards(t *testing.T) {
	seq := runtime.NewSequencer()

	assert.False(t, seq.CompleteRoll(0), "not animating")

	_, ok := seq.RequestRoll()
	require.True(t, ok)
	assert.False(t, seq.CompleteRoll(2), "skipping ahead")
	assert.False(t, seq.CompleteRoll(-1))
	assert.Equal(t, -1, seq.State().CurrentIndex)
	assert.True(t, seq.CompleteRoll(0))
}

func TestSequencer_ShowFace(t *testing.T) {
	seq := runtime.NewSequencer()

	seq.ShowFace(5)
	assert.Equal(t, domain.MinFace, seq.State().DisplayedFace, "ignored when idle")

	seq.RequestRoll()
	seq.ShowFace(5)
	assert.Equal(t, domain.Face(5), seq.State().DisplayedFace)
	seq.ShowFace(42)
	assert.Equal(t, domain.MaxFace, seq.State().DisplayedFace)

	seq.CompleteRoll(0)
	s := seq.State()
	assert.Equal(t, domain.Face(1), s.DisplayedFace, "cosmetic faces never leak into the result")
	assert.Equal(t, []string{"Government"}, s.History)
}

func TestSequencer_Reset(t *testing.T) {
	states := map[string]func(*runtime.Sequencer){
		"fresh": func(*runtime.Sequencer) {},
		"animating": func(s *runtime.Sequencer) {
			s.RequestRoll()
		},
		"midway": func(s *runtime.Sequencer) {
			for i := 0; i < 2; i++ {
				tgt, _ := s.RequestRoll()
				s.CompleteRoll(tgt)
			}
		},
		"complete": func(s *runtime.Sequencer) {
			for i := 0; i < domain.CategoryCount; i++ {
				tgt, _ := s.RequestRoll()
				s.CompleteRoll(tgt)
			}
		},
	}

	for name, setup := range states {
		t.Run(name, func(t *testing.T) {
			seq := runtime.NewSequencer()
			setup(seq)
			seq.Reset()

			s := seq.State()
			assert.Equal(t, -1, s.CurrentIndex)
			assert.Empty(t, s.History)
			assert.False(t, s.IsAnimating)
			assert.False(t, s.ResultVisible)
			assert.Equal(t, domain.MinFace, s.DisplayedFace)
		})
	}
}

func TestSequencer_StateIsCopy(t *testing.T) {
	seq := runtime.NewSequencer()
	tgt, _ := seq.RequestRoll()
	seq.CompleteRoll(tgt)

	s := seq.State()
	s.History[0] = "tampered"
	assert.Equal(t, "Government", seq.State().History[0])
}
