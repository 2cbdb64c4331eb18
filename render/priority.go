package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityRegions RenderPriority = iota
	PriorityGrid
	PriorityBorders
	PriorityCursor
	PriorityUI
)
