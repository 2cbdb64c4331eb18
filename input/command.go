package input

// Command discriminates editor actions
type Command uint8

const (
	CommandNone Command = iota

	// Pointer
	CommandMove // Mouse motion, h/j/k/l, arrows

	// Partition
	CommandSplitVertical   // 1
	CommandSplitHorizontal // 2
	CommandRemoveEdge      // Right mouse button, x
	CommandInspect         // 3

	// View
	CommandToggleSnap // s
	CommandToggleGrid // g

	// System
	CommandResize // Terminal resize event
	CommandQuit   // q, Esc, Ctrl+C
)

var commandNames = [...]string{
	CommandNone:            "none",
	CommandMove:            "move",
	CommandSplitVertical:   "split_vertical",
	CommandSplitHorizontal: "split_horizontal",
	CommandRemoveEdge:      "remove_edge",
	CommandInspect:         "inspect",
	CommandToggleSnap:      "toggle_snap",
	CommandToggleGrid:      "toggle_grid",
	CommandResize:          "resize",
	CommandQuit:            "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// actionRegistry maps bindable action names to key entries.
// "none" unbinds; resize is not bindable.
var actionRegistry = map[string]KeyEntry{
	"none": {},

	"move_left":  {Command: CommandMove, Motion: MotionLeft},
	"move_right": {Command: CommandMove, Motion: MotionRight},
	"move_up":    {Command: CommandMove, Motion: MotionUp},
	"move_down":  {Command: CommandMove, Motion: MotionDown},

	"split_vertical":   {Command: CommandSplitVertical},
	"split_horizontal": {Command: CommandSplitHorizontal},
	"remove_edge":      {Command: CommandRemoveEdge},
	"inspect":          {Command: CommandInspect},

	"toggle_snap": {Command: CommandToggleSnap},
	"toggle_grid": {Command: CommandToggleGrid},

	"quit": {Command: CommandQuit},
}

// ActionEntry resolves a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
