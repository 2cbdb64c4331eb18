package engine

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/tilecut/grid"
	"github.com/lixenwraith/tilecut/input"
	"github.com/lixenwraith/tilecut/partition"
	"github.com/lixenwraith/tilecut/render"
	"github.com/lixenwraith/tilecut/vmath"
)

// MockScreen is a minimal mock for tcell.Screen used in tests
type MockScreen struct {
	tcell.Screen
	width, height int
	shown         int
}

func (m *MockScreen) Size() (int, int)                                              { return m.width, m.height }
func (m *MockScreen) Clear()                                                        {}
func (m *MockScreen) Show()                                                         { m.shown++ }
func (m *MockScreen) Sync()                                                         {}
func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {}

// recordingSound counts cues
type recordingSound struct {
	split, merge, reject int
}

func (s *recordingSound) PlaySplit()  { s.split++ }
func (s *recordingSound) PlayMerge()  { s.merge++ }
func (s *recordingSound) PlayReject() { s.reject++ }

type fixture struct {
	editor   *Editor
	space    *partition.Space
	renderer *render.TerminalRenderer
	handler  *input.Handler
	screen   *MockScreen
	sound    *recordingSound
	logs     *observer.ObservedLogs
}

// newFixture builds a 22x16 editor on a 33x24 screen: two cells per column, one per row
func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	g, err := grid.New(22, 16)
	require.NoError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	screen := &MockScreen{width: 33, height: 24}
	r := render.NewTerminalRenderer(screen, g, true)
	s := partition.New(g, partition.WithRenderer(r), partition.WithLogger(logger), partition.WithSnap(true))
	h := input.NewHandler(r.Mapper(), nil)
	sound := &recordingSound{}

	opts = append([]Option{WithSound(sound), WithLogger(logger)}, opts...)
	return &fixture{
		editor:   NewEditor(s, r, h, opts...),
		space:    s,
		renderer: r,
		handler:  h,
		screen:   screen,
		sound:    sound,
		logs:     logs,
	}
}

func rects(s *partition.Space) []vmath.Rect {
	var out []vmath.Rect
	for _, r := range s.Regions() {
		out = append(out, r.Rect())
	}
	return out
}

func act(c input.Command, x, y float64) input.Action {
	return input.Action{Command: c, Pointer: vmath.Pt(x, y)}
}

// -- Dispatch --

func TestDispatchSplitAndMerge(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.editor.Dispatch(act(input.CommandSplitVertical, 8, 11)))
	want := []vmath.Rect{vmath.R(0, 0, 8, 22), vmath.R(8, 0, 8, 22)}
	if diff := cmp.Diff(want, rects(f.space)); diff != "" {
		t.Errorf("regions after split (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, f.sound.split)
	assert.False(t, f.editor.Status().Error)
	assert.Contains(t, f.editor.Status().Message, "split")

	require.True(t, f.editor.Dispatch(act(input.CommandRemoveEdge, 8.2, 11)))
	if diff := cmp.Diff([]vmath.Rect{vmath.R(0, 0, 16, 22)}, rects(f.space)); diff != "" {
		t.Errorf("regions after merge (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, f.sound.merge)
	assert.Equal(t, 1, f.renderer.Len())
	assert.Equal(t, 2, f.screen.shown)
}

func TestDispatchRejection(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.editor.Dispatch(act(input.CommandSplitVertical, 0.3, 11)))
	assert.Equal(t, 1, f.space.Len())
	assert.Equal(t, 1, f.sound.reject)
	assert.Zero(t, f.sound.split)

	st := f.editor.Status()
	assert.True(t, st.Error)
	assert.Contains(t, st.Message, partition.ErrEdgeTooClose.Error())

	rejected := f.logs.FilterMessage("rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, zapcore.DebugLevel, rejected[0].Level)
	assert.Equal(t, "editor", rejected[0].LoggerName)

	require.True(t, f.editor.Dispatch(act(input.CommandRemoveEdge, 8, 0.2)))
	assert.Equal(t, 2, f.sound.reject, "canvas border has no neighbor")
	assert.Contains(t, f.editor.Status().Message, partition.ErrNoNeighbor.Error())
}

func TestDispatchInspect(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.editor.Dispatch(act(input.CommandSplitVertical, 8, 11)))

	require.True(t, f.editor.Dispatch(act(input.CommandInspect, 3, 3)))

	entries := f.logs.FilterMessage("inspect").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Contains(t, ctx, "region")
	assert.Len(t, ctx["right"], 1)
	assert.Empty(t, ctx["left"])

	msg := f.editor.Status().Message
	assert.Contains(t, msg, "r:1")
	assert.Contains(t, msg, "l:0")
}

func TestDispatchToggles(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.editor.Dispatch(act(input.CommandToggleSnap, 8, 11)))
	assert.False(t, f.space.Snapping())
	assert.Equal(t, "snap off", f.editor.Status().Message)

	require.True(t, f.editor.Dispatch(act(input.CommandToggleGrid, 8, 11)))
	assert.False(t, f.renderer.ShowGrid())
	assert.Equal(t, "grid off", f.editor.Status().Message)

	require.True(t, f.editor.Dispatch(act(input.CommandSplitVertical, 8.3, 11)))
	assert.Equal(t, vmath.R(0, 0, 8.3, 22), f.space.Regions()[0].Rect(), "snap off keeps the raw cut")
}

func TestDispatchResize(t *testing.T) {
	f := newFixture(t)

	f.screen.width, f.screen.height = 65, 45
	require.True(t, f.editor.Dispatch(act(input.CommandResize, 8, 11)))
	assert.Equal(t, image.Rect(0, 0, 65, 44), f.handler.Mapper().Canvas)
}

func TestDispatchQuit(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.editor.Dispatch(act(input.CommandQuit, 0, 0)))
}

func TestFocusFollowsPointer(t *testing.T) {
	f := newFixture(t)
	require.True(t, f.editor.Dispatch(act(input.CommandSplitVertical, 8, 11)))

	f.handler.SetPointer(vmath.Pt(12, 4))
	require.True(t, f.editor.Dispatch(act(input.CommandMove, 12, 4)))

	focused := f.space.FocusedRegion(vmath.Pt(12, 4))
	assert.Equal(t, focused.String(), f.editor.Status().Focused)
	for _, v := range f.renderer.Views() {
		assert.Equal(t, v.ID == focused.ID(), v.Focused)
	}
}

func TestValidationAfterMutations(t *testing.T) {
	f := newFixture(t, WithValidation(true))

	steps := []input.Action{
		act(input.CommandSplitVertical, 8, 11),
		act(input.CommandSplitHorizontal, 4, 7),
		act(input.CommandSplitHorizontal, 12, 15),
		act(input.CommandSplitVertical, 3, 3),
		act(input.CommandRemoveEdge, 8.1, 3),
		act(input.CommandRemoveEdge, 2.9, 3),
	}
	for _, a := range steps {
		require.True(t, f.editor.Dispatch(a))
	}

	assert.Zero(t, f.logs.FilterMessage("invariant violated").Len())
	assert.NoError(t, f.space.Validate())
}

// -- Run loop --

func TestRunQuitsOnCommand(t *testing.T) {
	defer goleak.VerifyNone(t)
	f := newFixture(t)

	events := make(chan tcell.Event)
	go func() {
		defer close(events)
		events <- tcell.NewEventMouse(16, 11, tcell.ButtonNone, tcell.ModNone)
		events <- tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone)
		events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	}()

	require.NoError(t, f.editor.Run(context.Background(), events))
	assert.Equal(t, 2, f.space.Len())
	assert.Equal(t, 1, f.logs.FilterMessage("quit").Len())

	// Drain so the producer can finish
	for range events {
	}
}

func TestRunStopsWhenEventsClose(t *testing.T) {
	defer goleak.VerifyNone(t)
	f := newFixture(t)

	events := make(chan tcell.Event)
	close(events)
	require.NoError(t, f.editor.Run(context.Background(), events))
	assert.Equal(t, 1, f.logs.FilterMessage("event source closed").Len())
}

func TestRunHonorsContext(t *testing.T) {
	defer goleak.VerifyNone(t)
	f := newFixture(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := f.editor.Run(ctx, make(chan tcell.Event))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
