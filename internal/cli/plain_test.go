package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/pillars"
	"github.com/aretw0/pillars/internal/presentation/text"
	"github.com/aretw0/pillars/internal/testutils"
	"github.com/aretw0/pillars/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type plainResult struct {
	state domain.RollState
	err   error
}

type plainSession struct {
	w     *pillars.Widget
	sched *testutils.ManualScheduler
	in    *io.PipeWriter
	out   *syncBuffer
	res   chan plainResult
}

func startPlain(t *testing.T, ctx context.Context) *plainSession {
	t.Helper()
	sched := testutils.NewManualScheduler()
	w, err := pillars.New(
		pillars.WithScheduler(sched),
		pillars.WithFaceSource(testutils.FixedFaces(3, 5)),
	)
	require.NoError(t, err)

	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	s := &plainSession{w: w, sched: sched, in: pw, out: &syncBuffer{}, res: make(chan plainResult, 1)}
	r := text.NewRenderer(s.out, termenv.Ascii, 40)
	go func() {
		state, err := RunPlain(ctx, w, pr, r)
		s.res <- plainResult{state, err}
	}()
	return s
}

func (s *plainSession) send(t *testing.T, line string) {
	t.Helper()
	_, err := io.WriteString(s.in, line+"\n")
	require.NoError(t, err)
}

func (s *plainSession) roll(t *testing.T, index int) {
	t.Helper()
	s.send(t, "")
	require.Eventually(t, func() bool { return s.sched.Active() == 1 }, time.Second, time.Millisecond)
	s.sched.FireAll(100)
	require.Eventually(t, func() bool {
		st := s.w.State()
		return !st.IsAnimating && st.CurrentIndex == index
	}, time.Second, time.Millisecond)
}

func (s *plainSession) wait(t *testing.T) plainResult {
	t.Helper()
	select {
	case r := <-s.res:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("session did not end")
	}
	return plainResult{}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want command
	}{
		{"", cmdActivate},
		{"  ", cmdActivate},
		{"roll", cmdActivate},
		{"r", cmdReset},
		{"RESET", cmdReset},
		{"q", cmdQuit},
		{"exit", cmdQuit},
		{"dance", cmdUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseCommand(tt.line), "line %q", tt.line)
	}
}

func TestRunPlain_FullSession(t *testing.T) {
	s := startPlain(t, context.Background())

	for i := 0; i < domain.CategoryCount; i++ {
		s.roll(t, i)
	}
	require.Eventually(t, func() bool {
		return strings.Contains(s.out.String(), "All pillars revealed!")
	}, time.Second, time.Millisecond)

	s.send(t, "r")
	require.Eventually(t, func() bool { return s.w.State().CurrentIndex == -1 }, time.Second, time.Millisecond)

	s.send(t, "q")
	res := s.wait(t)
	require.NoError(t, res.err)
	assert.Equal(t, -1, res.state.CurrentIndex)

	out := s.out.String()
	assert.Contains(t, out, "Roll 1 of 4")
	assert.Contains(t, out, "Roll 4: Situation & Context")
	assert.Contains(t, out, "SITUATION & CONTEXT")
	assert.NotContains(t, out, "\x1b[")

	select {
	case <-s.w.Done():
	default:
		t.Fatal("widget not closed")
	}
}

func TestRunPlain_ResetIgnoredBeforeAllRevealed(t *testing.T) {
	s := startPlain(t, context.Background())
	s.roll(t, 0)

	s.send(t, "r")
	s.send(t, "q")
	res := s.wait(t)
	require.NoError(t, res.err)
	assert.Equal(t, []string{"Government"}, res.state.History)
}

func TestRunPlain_QuitWaitsForRoll(t *testing.T) {
	s := startPlain(t, context.Background())

	s.send(t, "")
	require.Eventually(t, func() bool { return s.sched.Active() == 1 }, time.Second, time.Millisecond)
	s.send(t, "q")

	select {
	case <-s.res:
		t.Fatal("session ended mid-roll")
	case <-time.After(50 * time.Millisecond):
	}

	s.sched.FireAll(100)
	res := s.wait(t)
	require.NoError(t, res.err)
	assert.False(t, res.state.IsAnimating)
	assert.Equal(t, 0, res.state.CurrentIndex)
	assert.Equal(t, 0, s.sched.Active())
}

func TestRunPlain_EOFQuits(t *testing.T) {
	w, err := pillars.New()
	require.NoError(t, err)

	var out bytes.Buffer
	state, err := RunPlain(context.Background(), w, strings.NewReader(""), text.NewRenderer(&out, termenv.Ascii, 40))
	require.NoError(t, err)
	assert.Equal(t, domain.NewRollState().CurrentIndex, state.CurrentIndex)
	assert.Empty(t, state.History)
}

func TestRunPlain_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := startPlain(t, ctx)

	s.send(t, "")
	require.Eventually(t, func() bool { return s.sched.Active() == 1 }, time.Second, time.Millisecond)
	cancel()

	res := s.wait(t)
	assert.ErrorIs(t, res.err, context.Canceled)
	assert.True(t, isInterrupted(res.err))
	// Teardown released the pending tick.
	assert.Equal(t, 0, s.sched.Active())
}
