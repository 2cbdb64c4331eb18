package partition

import "github.com/lixenwraith/tilecut/vmath"

// Renderer mirrors region lifecycle onto a visual surface. Space calls it
// once per created, resized or removed region. Implementations must not
// mutate the region.
type Renderer interface {
	Render(r *Region)
	Update(r *Region, rect vmath.Rect)
	Destroy(r *Region)
}

// NopRenderer discards all notifications
type NopRenderer struct{}

func (NopRenderer) Render(*Region)             {}
func (NopRenderer) Update(*Region, vmath.Rect) {}
func (NopRenderer) Destroy(*Region)            {}
