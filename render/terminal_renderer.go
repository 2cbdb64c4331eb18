package render

import (
	"image"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilecut/grid"
	"github.com/lixenwraith/tilecut/input"
	"github.com/lixenwraith/tilecut/partition"
	"github.com/lixenwraith/tilecut/vmath"
)

// regionEntry is the stored state of one region. Rects are kept as
// percentages of the canvas so they survive terminal resizes unchanged.
type regionEntry struct {
	pct  vmath.Rect
	fill RGB
	seq  int
}

// TerminalRenderer mirrors the partition onto a tcell screen. The bottom
// row is the status bar; everything above it is canvas.
type TerminalRenderer struct {
	screen   tcell.Screen
	grid     *grid.Grid
	orch     *RenderOrchestrator
	mapper   input.Mapper
	regions  map[partition.RegionID]*regionEntry
	seq      int
	showGrid bool
	focused  partition.RegionID
}

var _ partition.Renderer = (*TerminalRenderer)(nil)

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, g *grid.Grid, showGrid bool) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:   screen,
		grid:     g,
		orch:     NewRenderOrchestrator(screen),
		regions:  make(map[partition.RegionID]*regionEntry),
		showGrid: showGrid,
	}

	r.orch.Register(regionLayer{}, PriorityRegions)
	r.orch.Register(gridLayer{visible: &r.showGrid}, PriorityGrid)
	r.orch.Register(borderLayer{}, PriorityBorders)
	r.orch.Register(cursorLayer{}, PriorityCursor)
	r.orch.Register(statusLayer{}, PriorityUI)

	r.Resize()
	return r
}

// Resize re-reads the screen size and returns the new cell mapping
func (r *TerminalRenderer) Resize() input.Mapper {
	w, h := r.screen.Size()
	r.orch.Resize(w, h)
	r.mapper = input.Mapper{
		Canvas: image.Rect(0, 0, max(w, 0), max(h-1, 0)),
		Grid:   r.grid,
	}
	return r.mapper
}

// Mapper returns the current cell mapping
func (r *TerminalRenderer) Mapper() input.Mapper { return r.mapper }

// ShowGrid reports whether grid dots are drawn
func (r *TerminalRenderer) ShowGrid() bool { return r.showGrid }

// SetShowGrid toggles the grid overlay
func (r *TerminalRenderer) SetShowGrid(show bool) { r.showGrid = show }

// SetFocused highlights the region under the cursor; the zero ID clears it
func (r *TerminalRenderer) SetFocused(id partition.RegionID) { r.focused = id }

// --- partition.Renderer ---

// Render starts tracking a new region
func (r *TerminalRenderer) Render(reg *partition.Region) {
	r.regions[reg.ID()] = &regionEntry{
		pct:  r.grid.ToPercentage(reg.Rect()),
		fill: RegionPalette[r.seq%len(RegionPalette)],
		seq:  r.seq,
	}
	r.seq++
}

// Update stores the region's new rect
func (r *TerminalRenderer) Update(reg *partition.Region, rect vmath.Rect) {
	e, ok := r.regions[reg.ID()]
	if !ok {
		r.Render(reg)
		return
	}
	e.pct = r.grid.ToPercentage(rect)
}

// Destroy stops tracking a region
func (r *TerminalRenderer) Destroy(reg *partition.Region) {
	delete(r.regions, reg.ID())
	if r.focused == reg.ID() {
		r.focused = partition.RegionID{}
	}
}

// --- Queries ---

// Len returns the number of tracked regions
func (r *TerminalRenderer) Len() int { return len(r.regions) }

// RegionRect returns the tracked rect in grid units
func (r *TerminalRenderer) RegionRect(id partition.RegionID) (vmath.Rect, bool) {
	e, ok := r.regions[id]
	if !ok {
		return vmath.Rect{}, false
	}
	return r.grid.FromPercentage(e.pct).Round(), true
}

// Views returns the tracked regions in creation order
func (r *TerminalRenderer) Views() []RegionView {
	ids := make([]partition.RegionID, 0, len(r.regions))
	for id := range r.regions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return r.regions[ids[i]].seq < r.regions[ids[j]].seq
	})

	views := make([]RegionView, len(ids))
	for i, id := range ids {
		e := r.regions[id]
		views[i] = RegionView{
			ID:      id,
			Rect:    r.grid.FromPercentage(e.pct).Round(),
			Fill:    e.fill,
			Focused: id == r.focused,
		}
	}
	return views
}

// Buffer exposes the last composited frame
func (r *TerminalRenderer) Buffer() *RenderBuffer { return r.orch.Buffer() }

// Draw composites and shows a frame
func (r *TerminalRenderer) Draw(cursor vmath.Point, status Status) {
	w, h := r.orch.Buffer().Bounds()
	r.orch.RenderFrame(RenderContext{
		Mapper:       r.mapper,
		Cursor:       cursor,
		Regions:      r.Views(),
		Status:       status,
		ScreenWidth:  w,
		ScreenHeight: h,
	})
}
