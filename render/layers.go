package render

import "fmt"

// Border connectivity bits
const (
	linkUp uint8 = 1 << iota
	linkDown
	linkLeft
	linkRight
)

var boxRunes = [16]rune{
	0:                                        ' ',
	linkUp:                                   '│',
	linkDown:                                 '│',
	linkUp | linkDown:                        '│',
	linkLeft:                                 '─',
	linkRight:                                '─',
	linkLeft | linkRight:                     '─',
	linkDown | linkRight:                     '┌',
	linkDown | linkLeft:                      '┐',
	linkUp | linkRight:                       '└',
	linkUp | linkLeft:                        '┘',
	linkUp | linkDown | linkRight:            '├',
	linkUp | linkDown | linkLeft:             '┤',
	linkLeft | linkRight | linkDown:          '┬',
	linkLeft | linkRight | linkUp:            '┴',
	linkUp | linkDown | linkLeft | linkRight: '┼',
}

// cellBox is a region's outline in cells, inclusive on all sides
type cellBox struct {
	x0, y0, x1, y1 int
}

func boxOf(ctx RenderContext, v RegionView) cellBox {
	m := ctx.Mapper
	return cellBox{
		x0: m.CellX(v.Rect.Left),
		y0: m.CellY(v.Rect.Top),
		x1: m.CellX(v.Rect.Right()),
		y1: m.CellY(v.Rect.Bottom()),
	}
}

// --- Regions ---

type regionLayer struct{}

func (regionLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, v := range ctx.Regions {
		fill := v.Fill
		if v.Focused {
			fill = Blend(fill, RgbBorder, focusBlend)
		}
		b := boxOf(ctx, v)
		for y := b.y0 + 1; y < b.y1; y++ {
			for x := b.x0 + 1; x < b.x1; x++ {
				buf.SetBgOnly(x, y, fill, MaskRegion)
			}
		}
	}
}

// --- Grid ---

// gridLayer marks grid intersections with dots
type gridLayer struct {
	visible *bool
}

func (l gridLayer) IsVisible() bool { return *l.visible }

func (gridLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	m := ctx.Mapper
	for gy := 0; gy <= m.Grid.Rows(); gy++ {
		y := m.CellY(float64(gy))
		for gx := 0; gx <= m.Grid.Cols(); gx++ {
			buf.SetFgOnly(m.CellX(float64(gx)), y, '·', RgbGridDot, MaskGrid)
		}
	}
}

// --- Borders ---

// borderLayer draws region outlines. Adjacent regions share the border cell,
// so links from every region are merged before picking the box rune.
type borderLayer struct{}

func (borderLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	canvas := ctx.Mapper.Canvas
	w, h := canvas.Dx(), canvas.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	links := make([]uint8, w*h)
	set := func(x, y int, bits uint8) {
		x -= canvas.Min.X
		y -= canvas.Min.Y
		if x >= 0 && x < w && y >= 0 && y < h {
			links[y*w+x] |= bits
		}
	}

	for _, v := range ctx.Regions {
		b := boxOf(ctx, v)
		for x := b.x0; x <= b.x1; x++ {
			var bits uint8
			if x > b.x0 {
				bits |= linkLeft
			}
			if x < b.x1 {
				bits |= linkRight
			}
			set(x, b.y0, bits)
			set(x, b.y1, bits)
		}
		for y := b.y0; y <= b.y1; y++ {
			var bits uint8
			if y > b.y0 {
				bits |= linkUp
			}
			if y < b.y1 {
				bits |= linkDown
			}
			set(b.x0, y, bits)
			set(b.x1, y, bits)
		}
	}

	for i, bits := range links {
		if bits == 0 {
			continue
		}
		x, y := canvas.Min.X+i%w, canvas.Min.Y+i/w
		buf.SetWithBg(x, y, boxRunes[bits], RgbBorder, RgbBackground, MaskBorder)
	}
}

// --- Cursor ---

type cursorLayer struct{}

func (cursorLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	p := ctx.Mapper.Cell(ctx.Cursor)
	c := buf.Get(p.X, p.Y)
	r := c.Rune
	if r == ' ' || r == 0 {
		r = '+'
	}
	buf.SetWithBg(p.X, p.Y, r, RgbStatusText, RgbCursor, c.Mask|MaskUI)
}

// --- Status bar ---

type statusLayer struct{}

func (statusLayer) Render(ctx RenderContext, buf *RenderBuffer) {
	y := ctx.ScreenHeight - 1
	if y < 0 {
		return
	}
	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.SetWithBg(x, y, ' ', RgbStatusBar, RgbBackground, MaskUI)
	}

	st := ctx.Status
	x := buf.SetString(0, y, " TILECUT ", RgbStatusText, RgbModeBg, MaskUI)
	if st.Snap {
		x = buf.SetString(x, y, " SNAP ", RgbStatusText, RgbSnapOnBg, MaskUI)
	} else {
		x = buf.SetString(x, y, " FREE ", RgbStatusText, RgbSnapOffBg, MaskUI)
	}

	info := fmt.Sprintf(" %d regions  %g,%g", st.Regions, ctx.Cursor.X, ctx.Cursor.Y)
	if st.Focused != "" {
		info += "  " + st.Focused
	}
	x = buf.SetString(x, y, info, RgbStatusBar, RgbBackground, MaskUI)

	if st.Message != "" {
		fg := RgbStatusBar
		if st.Error {
			fg = RgbStatusError
		}
		buf.SetString(x+2, y, st.Message, fg, RgbBackground, MaskUI)
	}
}
