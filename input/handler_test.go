package input

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilecut/grid"
	"github.com/lixenwraith/tilecut/vmath"
)

// testMapper puts a 22x16 grid on a 33x23 canvas: two columns and one row per unit
func testMapper(t *testing.T) Mapper {
	t.Helper()
	g, err := grid.New(22, 16)
	require.NoError(t, err)
	return Mapper{Canvas: image.Rect(0, 0, 33, 23), Grid: g}
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// -- Mapper --

func TestMapperRoundTrip(t *testing.T) {
	m := testMapper(t)

	assert.Equal(t, vmath.Pt(0, 0), m.GridPos(0, 0))
	assert.Equal(t, vmath.Pt(16, 22), m.GridPos(32, 22))
	assert.Equal(t, vmath.Pt(8, 11), m.GridPos(16, 11))
	assert.Equal(t, vmath.Pt(8.5, 11), m.GridPos(17, 11), "odd columns fall between grid lines")

	assert.Equal(t, image.Pt(16, 11), m.Cell(vmath.Pt(8, 11)))
	assert.Equal(t, image.Pt(32, 22), m.Cell(vmath.Pt(16, 22)))

	for x := 0; x < 33; x++ {
		for y := 0; y < 23; y++ {
			assert.Equal(t, image.Pt(x, y), m.Cell(m.GridPos(x, y)))
		}
	}
}

func TestMapperOffsetCanvas(t *testing.T) {
	m := testMapper(t)
	m.Canvas = image.Rect(2, 1, 35, 24)

	assert.True(t, m.Contains(2, 1))
	assert.False(t, m.Contains(1, 1))
	assert.False(t, m.Contains(35, 5))
	assert.Equal(t, vmath.Pt(0, 0), m.GridPos(2, 1))
	assert.Equal(t, image.Pt(34, 23), m.Cell(vmath.Pt(16, 22)))
}

func TestMapperDegenerateCanvas(t *testing.T) {
	m := testMapper(t)
	m.Canvas = image.Rect(0, 0, 1, 1)

	assert.Equal(t, vmath.Pt(0, 0), m.GridPos(0, 0))
	assert.Equal(t, image.Pt(0, 0), m.Cell(vmath.Pt(16, 22)))
}

// -- Keys --

func TestHandlerKeyBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Command
	}{
		{"split vertical", keyRune('1'), CommandSplitVertical},
		{"split horizontal", keyRune('2'), CommandSplitHorizontal},
		{"inspect", keyRune('3'), CommandInspect},
		{"remove edge", keyRune('x'), CommandRemoveEdge},
		{"toggle snap", keyRune('s'), CommandToggleSnap},
		{"toggle grid", keyRune('g'), CommandToggleGrid},
		{"quit", keyRune('q'), CommandQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), CommandQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), CommandQuit},
		{"unbound", keyRune('z'), CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(testMapper(t), nil)
			act := h.HandleEvent(tt.ev)
			assert.Equal(t, tt.want, act.Command)
			assert.Equal(t, vmath.Pt(8, 11), act.Pointer, "pointer starts centered and does not move")
		})
	}
}

func TestHandlerKeyMotion(t *testing.T) {
	h := NewHandler(testMapper(t), nil)

	act := h.HandleEvent(keyRune('l'))
	assert.Equal(t, CommandMove, act.Command)
	assert.Equal(t, vmath.Pt(9, 11), act.Pointer)

	h.HandleEvent(keyRune('k'))
	h.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, vmath.Pt(9, 9), h.Pointer())

	h.HandleEvent(keyRune('h'))
	h.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	assert.Equal(t, vmath.Pt(8, 10), h.Pointer())

	h.SetPointer(vmath.Pt(16, 0))
	act = h.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.Equal(t, vmath.Pt(16, 0), act.Pointer, "clamped at the canvas edge")
	act = h.HandleEvent(keyRune('k'))
	assert.Equal(t, vmath.Pt(16, 0), act.Pointer)
}

// -- Mouse --

func TestHandlerMouse(t *testing.T) {
	h := NewHandler(testMapper(t), nil)

	act := h.HandleEvent(tcell.NewEventMouse(16, 11, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, Action{Command: CommandMove, Pointer: vmath.Pt(8, 11)}, act)

	act = h.HandleEvent(tcell.NewEventMouse(18, 5, tcell.ButtonSecondary, tcell.ModNone))
	assert.Equal(t, Action{Command: CommandRemoveEdge, Pointer: vmath.Pt(9, 5)}, act)

	act = h.HandleEvent(tcell.NewEventMouse(20, 5, tcell.ButtonSecondary, tcell.ModNone))
	assert.Equal(t, CommandMove, act.Command, "held button does not repeat")
	assert.Equal(t, vmath.Pt(10, 5), act.Pointer)

	h.HandleEvent(tcell.NewEventMouse(20, 5, tcell.ButtonNone, tcell.ModNone))
	act = h.HandleEvent(tcell.NewEventMouse(20, 5, tcell.ButtonSecondary, tcell.ModNone))
	assert.Equal(t, CommandRemoveEdge, act.Command, "fires again after release")

	act = h.HandleEvent(tcell.NewEventMouse(4, 4, tcell.ButtonPrimary, tcell.ModNone))
	assert.Equal(t, CommandMove, act.Command)
	assert.Equal(t, vmath.Pt(2, 4), act.Pointer)
}

func TestHandlerMouseOutsideCanvas(t *testing.T) {
	h := NewHandler(testMapper(t), nil)
	h.HandleEvent(tcell.NewEventMouse(16, 11, tcell.ButtonNone, tcell.ModNone))

	act := h.HandleEvent(tcell.NewEventMouse(40, 30, tcell.ButtonSecondary, tcell.ModNone))
	assert.Equal(t, Action{Command: CommandNone, Pointer: vmath.Pt(8, 11)}, act)

	// The press was outside, so re-entering with the button held is not a press
	act = h.HandleEvent(tcell.NewEventMouse(16, 11, tcell.ButtonSecondary, tcell.ModNone))
	assert.Equal(t, CommandMove, act.Command)
}

func TestHandlerResize(t *testing.T) {
	h := NewHandler(testMapper(t), nil)
	act := h.HandleEvent(tcell.NewEventResize(100, 40))
	assert.Equal(t, CommandResize, act.Command)

	m := h.Mapper()
	m.Canvas = image.Rect(0, 0, 65, 45)
	h.SetMapper(m)
	act = h.HandleEvent(tcell.NewEventMouse(64, 44, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, vmath.Pt(16, 22), act.Pointer)
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "split_vertical", CommandSplitVertical.String())
	assert.Equal(t, "quit", CommandQuit.String())
	assert.Equal(t, "unknown", Command(200).String())
}
