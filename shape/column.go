package shape

// Kind tells how a column stores its observations.
type Kind uint8

const (
	// KindNone marks an absent column.
	KindNone Kind = iota
	// KindScalar stores one number per DMU.
	KindScalar
	// KindVector stores one vector per DMU.
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	default:
		return "none"
	}
}

// Column is one data column (x, y or b) as supplied by the caller.
// The zero value is an absent column.
type Column struct {
	kind    Kind
	scalars []float64
	vectors [][]float64
}

// Scalars wraps one number per DMU.
func Scalars(v []float64) Column { return Column{kind: KindScalar, scalars: v} }

// Vectors wraps one vector per DMU.
func Vectors(v [][]float64) Column { return Column{kind: KindVector, vectors: v} }

// None is the absent column.
func None() Column { return Column{} }

// Kind reports the storage kind.
func (c Column) Kind() Kind { return c.kind }

// Len is the number of observations.
func (c Column) Len() int {
	switch c.kind {
	case KindScalar:
		return len(c.scalars)
	case KindVector:
		return len(c.vectors)
	default:
		return 0
	}
}
