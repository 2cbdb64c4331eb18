package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilecut/vmath"
)

// MotionOp is a one-grid-unit pointer step
type MotionOp uint8

const (
	MotionNone MotionOp = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
)

// Delta returns the pointer offset in grid units
func (m MotionOp) Delta() vmath.Point {
	switch m {
	case MotionLeft:
		return vmath.Pt(-1, 0)
	case MotionRight:
		return vmath.Pt(1, 0)
	case MotionUp:
		return vmath.Pt(0, -1)
	case MotionDown:
		return vmath.Pt(0, 1)
	}
	return vmath.Point{}
}

// KeyEntry describes what a key does. The zero value is unbound.
type KeyEntry struct {
	Command Command
	Motion  MotionOp
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	Keys map[tcell.Key]KeyEntry

	// Printable keys
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {Command: CommandQuit},
			tcell.KeyEscape: {Command: CommandQuit},
			tcell.KeyLeft:   {Command: CommandMove, Motion: MotionLeft},
			tcell.KeyRight:  {Command: CommandMove, Motion: MotionRight},
			tcell.KeyUp:     {Command: CommandMove, Motion: MotionUp},
			tcell.KeyDown:   {Command: CommandMove, Motion: MotionDown},
		},
		Runes: map[rune]KeyEntry{
			'1': {Command: CommandSplitVertical},
			'2': {Command: CommandSplitHorizontal},
			'3': {Command: CommandInspect},
			'x': {Command: CommandRemoveEdge},
			's': {Command: CommandToggleSnap},
			'g': {Command: CommandToggleGrid},
			'q': {Command: CommandQuit},
			'h': {Command: CommandMove, Motion: MotionLeft},
			'l': {Command: CommandMove, Motion: MotionRight},
			'k': {Command: CommandMove, Motion: MotionUp},
			'j': {Command: CommandMove, Motion: MotionDown},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
	if c.Keys == nil {
		c.Keys = make(map[tcell.Key]KeyEntry)
	}
	if c.Runes == nil {
		c.Runes = make(map[rune]KeyEntry)
	}
	return c
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := kt.Keys[ev.Key()]
	return e, ok
}

// MergeKeyTable returns base overridden by override.
// Zero entries in override delete the key from the result.
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v == (KeyEntry{}) {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
