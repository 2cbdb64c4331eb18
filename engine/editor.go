// Package engine runs the interactive editor: it feeds input actions into
// the partition, plays cues and redraws after every command.
package engine

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/tilecut/input"
	"github.com/lixenwraith/tilecut/partition"
	"github.com/lixenwraith/tilecut/render"
	"github.com/lixenwraith/tilecut/vmath"
)

// Sound plays editor cues. *audio.SoundManager implements it.
type Sound interface {
	PlaySplit()
	PlayMerge()
	PlayReject()
}

type silent struct{}

func (silent) PlaySplit()  {}
func (silent) PlayMerge()  {}
func (silent) PlayReject() {}

// Editor owns the editing session. All methods run on the caller's
// goroutine; Run is the only loop.
type Editor struct {
	space    *partition.Space
	renderer *render.TerminalRenderer
	input    *input.Handler
	sound    Sound
	logger   *zap.Logger
	validate bool

	message string
	isError bool
}

// Option configures an Editor
type Option func(*Editor)

// WithSound sets the cue player; the default is silent
func WithSound(s Sound) Option {
	return func(e *Editor) { e.sound = s }
}

// WithLogger sets the logger; the default discards
func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) { e.logger = l.Named("editor") }
}

// WithValidation re-checks the tiling invariants after every mutation
func WithValidation(on bool) Option {
	return func(e *Editor) { e.validate = on }
}

// NewEditor wires a space to its renderer and input handler
func NewEditor(space *partition.Space, renderer *render.TerminalRenderer, handler *input.Handler, opts ...Option) *Editor {
	e := &Editor{
		space:    space,
		renderer: renderer,
		input:    handler,
		sound:    silent{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run processes events until ctx is cancelled, events is closed or a quit
// command arrives. Only cancellation returns an error.
func (e *Editor) Run(ctx context.Context, events <-chan tcell.Event) error {
	e.logger.Info("editor started",
		zap.Int("rows", e.space.Grid().Rows()),
		zap.Int("cols", e.space.Grid().Cols()),
		zap.Bool("snap", e.space.Snapping()),
	)
	e.refocus()
	e.Redraw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				e.logger.Info("event source closed")
				return nil
			}
			if !e.Dispatch(e.input.HandleEvent(ev)) {
				e.logger.Info("quit", zap.Int("regions", e.space.Len()))
				return nil
			}
		}
	}
}

// Dispatch applies one action and redraws. Returns false on quit.
func (e *Editor) Dispatch(act input.Action) bool {
	p := act.Pointer

	switch act.Command {
	case input.CommandNone:
		return true

	case input.CommandQuit:
		return false

	case input.CommandMove:
		// Focus follows the pointer below

	case input.CommandSplitVertical:
		created, err := e.space.Split(p, partition.AxisVertical)
		e.mutated("split", created, err, e.sound.PlaySplit)

	case input.CommandSplitHorizontal:
		created, err := e.space.Split(p, partition.AxisHorizontal)
		e.mutated("split", created, err, e.sound.PlaySplit)

	case input.CommandRemoveEdge:
		survivor, err := e.space.RemoveEdge(p)
		e.mutated("merge", survivor, err, e.sound.PlayMerge)

	case input.CommandInspect:
		e.inspect(p)

	case input.CommandToggleSnap:
		e.space.SetSnap(!e.space.Snapping())
		e.setMessage(fmt.Sprintf("snap %s", onOff(e.space.Snapping())), false)

	case input.CommandToggleGrid:
		e.renderer.SetShowGrid(!e.renderer.ShowGrid())
		e.setMessage(fmt.Sprintf("grid %s", onOff(e.renderer.ShowGrid())), false)

	case input.CommandResize:
		e.input.SetMapper(e.renderer.Resize())
	}

	e.refocus()
	e.Redraw()
	return true
}

// mutated reports the outcome of a split or merge
func (e *Editor) mutated(op string, r *partition.Region, err error, cue func()) {
	switch {
	case err == nil:
		cue()
		e.setMessage(fmt.Sprintf("%s %v", op, r), false)
		if e.validate {
			e.checkInvariants(op)
		}
	case partition.IsRejection(err):
		e.logger.Debug("rejected", zap.String("op", op), zap.Error(err))
		e.sound.PlayReject()
		e.setMessage(err.Error(), true)
	default:
		e.logger.Error("operation failed", zap.String("op", op), zap.Error(err))
		e.sound.PlayReject()
		e.setMessage(err.Error(), true)
	}
}

func (e *Editor) checkInvariants(op string) {
	if err := e.space.Validate(); err != nil {
		e.logger.Error("invariant violated", zap.String("op", op), zap.Error(err))
		e.setMessage("invariant violated, see log", true)
	}
}

// inspect logs the focused region with its neighbors
func (e *Editor) inspect(p vmath.Point) {
	r := e.space.FocusedRegion(p)
	if r == nil {
		e.setMessage(partition.ErrNoRegion.Error(), true)
		return
	}

	fields := []zap.Field{zap.Stringer("region", r)}
	summary := r.String()
	for _, side := range partition.Sides {
		ns := e.space.Neighbors(r, side)
		names := make([]string, len(ns))
		for i, n := range ns {
			names[i] = n.String()
		}
		fields = append(fields, zap.Strings(side.String(), names))
		summary += fmt.Sprintf(" %s:%d", side.String()[:1], len(ns))
	}
	e.logger.Info("inspect", fields...)
	e.setMessage(summary, false)
}

func (e *Editor) refocus() {
	if r := e.space.FocusedRegion(e.input.Pointer()); r != nil {
		e.renderer.SetFocused(r.ID())
		return
	}
	e.renderer.SetFocused(partition.RegionID{})
}

func (e *Editor) setMessage(msg string, isError bool) {
	e.message = msg
	e.isError = isError
}

// Status returns the current status bar content
func (e *Editor) Status() render.Status {
	st := render.Status{
		Regions: e.space.Len(),
		Snap:    e.space.Snapping(),
		Message: e.message,
		Error:   e.isError,
	}
	if r := e.space.FocusedRegion(e.input.Pointer()); r != nil {
		st.Focused = r.String()
	}
	return st
}

// Redraw paints the current state
func (e *Editor) Redraw() {
	e.renderer.Draw(e.input.Pointer(), e.Status())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
