package partition

// Side names one of the four cardinal edges of a region
type Side uint8

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
)

// Sides lists every side in declaration order
var Sides = [...]Side{SideLeft, SideTop, SideRight, SideBottom}

// Opposite returns the facing side: left <-> right, top <-> bottom
func (s Side) Opposite() Side {
	return (s + 2) % 4
}

// Axis returns the orientation of the edge on this side
func (s Side) Axis() Axis {
	if s == SideLeft || s == SideRight {
		return AxisVertical
	}
	return AxisHorizontal
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Axis is the orientation of a cut line
type Axis uint8

const (
	// AxisVertical cuts along x = const, producing left and right halves
	AxisVertical Axis = iota
	// AxisHorizontal cuts along y = const, producing top and bottom halves
	AxisHorizontal
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}
