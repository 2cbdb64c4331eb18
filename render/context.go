package render

import (
	"github.com/lixenwraith/tilecut/input"
	"github.com/lixenwraith/tilecut/partition"
	"github.com/lixenwraith/tilecut/vmath"
)

// RegionView is the renderer's copy of one region
type RegionView struct {
	ID      partition.RegionID
	Rect    vmath.Rect // Grid units
	Fill    RGB
	Focused bool
}

// Status is the content of the status bar
type Status struct {
	Regions int
	Snap    bool
	Focused string
	Message string
	Error   bool // Message is a rejection
}

// RenderContext provides frame state for layers, passed by value
type RenderContext struct {
	Mapper  input.Mapper
	Cursor  vmath.Point // Grid units
	Regions []RegionView
	Status  Status

	ScreenWidth  int
	ScreenHeight int
}
