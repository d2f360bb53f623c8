package render

// Surface identifies which kind of output is being rendered.
type Surface int

const (
	SurfacePrimary Surface = iota
	SurfaceSecondary
)

func (s Surface) String() string {
	switch s {
	case SurfaceSecondary:
		return "secondary"
	default:
		return "primary"
	}
}
