package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeyTableDefaults(t *testing.T) {
	kt, err := LoadKeyTable(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultKeyTable(), kt)
}

func TestLoadKeyTableOverrides(t *testing.T) {
	kt, err := LoadKeyTable(map[string][]string{
		"split_vertical": {"v", "|"},
		"inspect":        {"F1"},
		"none":           {"1", "q"},
		"quit":           {"space"},
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		ev    *tcell.EventKey
		bound bool
		want  Command
	}{
		{"added rune", keyRune('v'), true, CommandSplitVertical},
		{"second key", keyRune('|'), true, CommandSplitVertical},
		{"special key by name", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), true, CommandInspect},
		{"unbound default", keyRune('1'), false, CommandNone},
		{"unbound quit", keyRune('q'), false, CommandNone},
		{"alias", keyRune(' '), true, CommandQuit},
		{"untouched default", keyRune('2'), true, CommandSplitHorizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := kt.Lookup(tt.ev)
			assert.Equal(t, tt.bound, ok)
			assert.Equal(t, tt.want, e.Command)
		})
	}

	_, ok := DefaultKeyTable().Lookup(keyRune('v'))
	assert.False(t, ok, "defaults are not mutated")
}

func TestParseBindingsErrors(t *testing.T) {
	_, err := ParseBindings(map[string][]string{"explode": {"e"}})
	assert.ErrorContains(t, err, `unknown action: "explode"`)

	_, err = ParseBindings(map[string][]string{"quit": {"hyperkey"}})
	assert.ErrorContains(t, err, `unknown key name: "hyperkey"`)
}

func TestMotionDelta(t *testing.T) {
	assert.Equal(t, -1.0, MotionLeft.Delta().X)
	assert.Equal(t, 1.0, MotionDown.Delta().Y)
	assert.Zero(t, MotionNone.Delta())
}
