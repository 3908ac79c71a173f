package model

import (
	"fmt"
	"math"
	"strconv"
)

// VarID is the dense column index of a decision variable inside a Model.
type VarID int

// Bounds is a closed interval [Lower, Upper]; infinities mean unbounded.
type Bounds struct {
	Lower, Upper float64
}

var (
	// Free is (-∞, +∞).
	Free = Bounds{Lower: math.Inf(-1), Upper: math.Inf(1)}
	// NonNegative is [0, +∞).
	NonNegative = Bounds{Lower: 0, Upper: math.Inf(1)}
)

// Violation returns how far v lies outside b (0 when inside).
func (b Bounds) Violation(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return math.Inf(1)
	case v < b.Lower:
		return b.Lower - v
	case v > b.Upper:
		return v - b.Upper
	default:
		return 0
	}
}

func (b Bounds) String() string {
	return "[" + formatBound(b.Lower) + ", " + formatBound(b.Upper) + "]"
}

func formatBound(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "+inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// Block is a named rows×cols collection of variables sharing one bound.
// Ids are contiguous: (i, j) maps to Offset() + i*Cols() + j.
type Block struct {
	name   string
	doc    string
	rows   int
	cols   int
	offset VarID
	bounds Bounds
}

// Name returns the block name, e.g. "beta".
func (b *Block) Name() string { return b.name }

// Doc returns the one-line description given at declaration.
func (b *Block) Doc() string { return b.doc }

// Rows returns the first (DMU) dimension.
func (b *Block) Rows() int { return b.rows }

// Cols returns the second (input/output) dimension.
func (b *Block) Cols() int { return b.cols }

// Len returns Rows()·Cols().
func (b *Block) Len() int { return b.rows * b.cols }

// Offset returns the VarID of element (0, 0).
func (b *Block) Offset() VarID { return b.offset }

// Bounds returns the bounds shared by every element.
func (b *Block) Bounds() Bounds { return b.bounds }

// Indexed reports whether the block carries a second (dimension) index.
// Single-column blocks are flat per-DMU scalars.
func (b *Block) Indexed() bool { return b.cols > 1 }

// At returns the id of element (i, j).
func (b *Block) At(i, j int) (VarID, error) {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return 0, fmt.Errorf("model: %s[%d,%d]: %w", b.name, i, j, ErrOutOfRange)
	}

	return b.offset + VarID(i*b.cols+j), nil
}

// ID is At for indices already validated by the caller; it panics when out of range.
func (b *Block) ID(i, j int) VarID {
	id, err := b.At(i, j)
	if err != nil {
		panic(err)
	}

	return id
}

// Contains reports whether id belongs to the block.
func (b *Block) Contains(id VarID) bool {
	return id >= b.offset && id < b.offset+VarID(b.Len())
}

// Label renders id as "name[i]" for flat blocks or "name[i,j]" for indexed ones.
func (b *Block) Label(id VarID) string {
	k := int(id - b.offset)
	if b.Indexed() {
		return b.name + "[" + strconv.Itoa(k/b.cols) + "," + strconv.Itoa(k%b.cols) + "]"
	}

	return b.name + "[" + strconv.Itoa(k) + "]"
}

// Variables is the ordered set of blocks declared for one model.
// It is frozen once handed to New.
type Variables struct {
	blocks []*Block
	byName map[string]*Block
	n      int
	frozen bool
}

// NewVariables returns an empty, unfrozen variable set.
func NewVariables() *Variables {
	return &Variables{byName: make(map[string]*Block)}
}

// Declare appends a rows×cols block with bounds b.
func (v *Variables) Declare(name, doc string, rows, cols int, b Bounds) (*Block, error) {
	if v.frozen {
		return nil, fmt.Errorf("model: declare %q: %w", name, ErrFrozen)
	}
	if name == "" || rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("model: declare %q (%d×%d): %w", name, rows, cols, ErrBadShape)
	}
	if math.IsNaN(b.Lower) || math.IsNaN(b.Upper) || b.Lower > b.Upper {
		return nil, fmt.Errorf("model: declare %q %s: %w", name, b, ErrBadBounds)
	}
	if _, dup := v.byName[name]; dup {
		return nil, fmt.Errorf("model: declare %q: %w", name, ErrDuplicateBlock)
	}

	blk := &Block{name: name, doc: doc, rows: rows, cols: cols, offset: VarID(v.n), bounds: b}
	v.blocks = append(v.blocks, blk)
	v.byName[name] = blk
	v.n += blk.Len()

	return blk, nil
}

// Block looks a block up by name.
func (v *Variables) Block(name string) (*Block, bool) {
	b, ok := v.byName[name]
	return b, ok
}

// Blocks returns the blocks in declaration order.
func (v *Variables) Blocks() []*Block {
	out := make([]*Block, len(v.blocks))
	copy(out, v.blocks)

	return out
}

// Len is the total number of scalar variables.
func (v *Variables) Len() int { return v.n }

// Owner returns the block that declared id.
func (v *Variables) Owner(id VarID) (*Block, bool) {
	for _, b := range v.blocks {
		if b.Contains(id) {
			return b, true
		}
	}

	return nil, false
}

// Name renders id with its block label, or "x<id>" when unknown.
func (v *Variables) Name(id VarID) string {
	if b, ok := v.Owner(id); ok {
		return b.Label(id)
	}

	return "x" + strconv.Itoa(int(id))
}

// Bounds returns the bounds of id; unknown ids are Free.
func (v *Variables) Bounds(id VarID) Bounds {
	if b, ok := v.Owner(id); ok {
		return b.bounds
	}

	return Free
}

func (v *Variables) valid(id VarID) bool { return id >= 0 && int(id) < v.n }
