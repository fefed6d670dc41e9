package windowing

// Window is the common interface implemented by all window functions
type Window interface {
	Apply(signal []float64) []float64
	ApplyInPlace(signal []float64) error
	GetCoefficients() []float64
	GetSize() int
	GetType() string
}

// Type identifies a window function
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
)

func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeHamming:
		return "hamming"
	default:
		return "unknown"
	}
}

// New creates a window of the given type and size. Periodic (non-symmetric)
// windows are generated, which is the right choice for spectral analysis.
// Unknown types fall back to rectangular.
func New(t Type, size int) Window {
	switch t {
	case TypeHann:
		return NewHann(size, false)
	case TypeHamming:
		return NewHamming(size, false)
	default:
		return NewRectangular(size)
	}
}
