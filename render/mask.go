package render

// Render masks categorize buffer cells so later layers can tell what they draw over
const (
	MaskNone   uint8 = 0
	MaskRegion uint8 = 1 << 0 // Region interior fill
	MaskBorder uint8 = 1 << 1 // Box-drawing region outlines
	MaskGrid   uint8 = 1 << 2 // Grid intersection dots
	MaskUI     uint8 = 1 << 3 // Cursor, status bar
	MaskAll    uint8 = 0xFF
)
