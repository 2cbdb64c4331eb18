package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilecut/vmath"
)

// Action is the result of one input event
type Action struct {
	Command Command
	Pointer vmath.Point // Grid units, after the event was applied
}

// Handler turns tcell events into editor actions and tracks the pointer
type Handler struct {
	mapper  Mapper
	keys    *KeyTable
	pointer vmath.Point
	buttons tcell.ButtonMask
}

// NewHandler creates a handler with the pointer in the middle of the grid.
// A nil key table uses DefaultKeyTable.
func NewHandler(m Mapper, keys *KeyTable) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	b := m.Grid.Bounds()
	return &Handler{
		mapper:  m,
		keys:    keys,
		pointer: m.Grid.Snap(vmath.Pt(b.Width/2, b.Height/2)),
	}
}

// Mapper returns the current cell mapping
func (h *Handler) Mapper() Mapper { return h.mapper }

// SetMapper replaces the cell mapping after a resize
func (h *Handler) SetMapper(m Mapper) { h.mapper = m }

// Pointer returns the pointer in grid units
func (h *Handler) Pointer() vmath.Point { return h.pointer }

// SetPointer moves the pointer, clamped to the grid
func (h *Handler) SetPointer(p vmath.Point) { h.pointer = h.mapper.Grid.Clamp(p) }

// HandleEvent processes a tcell event
func (h *Handler) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		return h.handleMouseEvent(ev)
	case *tcell.EventResize:
		return h.action(CommandResize)
	}
	return h.action(CommandNone)
}

func (h *Handler) handleKeyEvent(ev *tcell.EventKey) Action {
	entry, ok := h.keys.Lookup(ev)
	if !ok {
		return h.action(CommandNone)
	}
	if entry.Motion != MotionNone {
		h.SetPointer(h.pointer.Add(entry.Motion.Delta()))
	}
	return h.action(entry.Command)
}

// handleMouseEvent moves the pointer and fires on the press edge of the
// secondary button. Events outside the canvas only track button state.
func (h *Handler) handleMouseEvent(ev *tcell.EventMouse) Action {
	buttons := ev.Buttons()
	pressed := buttons &^ h.buttons
	h.buttons = buttons

	x, y := ev.Position()
	if !h.mapper.Contains(x, y) {
		return h.action(CommandNone)
	}
	h.pointer = h.mapper.GridPos(x, y)

	if pressed&tcell.ButtonSecondary != 0 {
		return h.action(CommandRemoveEdge)
	}
	return h.action(CommandMove)
}

func (h *Handler) action(c Command) Action {
	return Action{Command: c, Pointer: h.pointer}
}
