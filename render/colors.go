package render

// Tokyo Night derived colors
var (
	RgbBackground = RGB{26, 27, 38}
	RgbBorder     = RGB{169, 177, 214}
	RgbGridDot    = RGB{86, 95, 137}
	RgbCursor     = RGB{255, 165, 0}

	RgbStatusBar   = RGB{255, 255, 255}
	RgbStatusText  = RGB{0, 0, 0}
	RgbStatusError = RGB{247, 118, 142}
	RgbModeBg      = RGB{135, 206, 250}
	RgbSnapOnBg    = RGB{144, 238, 144}
	RgbSnapOffBg   = RGB{200, 50, 50}
)

// RegionPalette holds the fill colors handed out to regions in creation order
var RegionPalette = []RGB{
	{36, 40, 59},
	{41, 46, 66},
	{52, 59, 88},
	{40, 52, 62},
	{55, 45, 70},
	{45, 55, 50},
	{60, 50, 45},
	{47, 53, 73},
}

// focusBlend is how far a focused region's fill moves toward the border color
const focusBlend = 0.2
