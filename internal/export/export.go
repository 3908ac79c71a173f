// Package export writes an assembled model as JSON lines, one record per
// line: a header, the variable blocks, the objective, then every
// constraint row in model order. Paths ending in ".zst" are written and
// read through zstd.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/stoned/model"
)

// Record kinds, in the order they appear in a dump.
const (
	KindHeader     = "model"
	KindBlock      = "block"
	KindObjective  = "objective"
	KindConstraint = "constraint"
)

// Header is the first record of a dump.
type Header struct {
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Fingerprint string   `json:"fingerprint"`
	Variables   int      `json:"variables"`
	Constraints int      `json:"constraints"`
	Families    []string `json:"families"`
}

// Block describes one variable block. Infinite bounds are omitted.
type Block struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Offset int      `json:"offset"`
	Lower  *float64 `json:"lower,omitempty"`
	Upper  *float64 `json:"upper,omitempty"`
}

// Term is one linear coefficient.
type Term struct {
	Var  int     `json:"var"`
	Coef float64 `json:"coef"`
}

// Quad is one quadratic coefficient.
type Quad struct {
	I    int     `json:"i"`
	J    int     `json:"j"`
	Coef float64 `json:"coef"`
}

// Log is Coef·log(Σ Terms + Const).
type Log struct {
	Coef  float64 `json:"coef"`
	Terms []Term  `json:"terms"`
	Const float64 `json:"const,omitempty"`
}

// Objective is the objective record.
type Objective struct {
	Kind      string  `json:"kind"`
	Sense     string  `json:"sense"`
	Linear    []Term  `json:"linear,omitempty"`
	Const     float64 `json:"const,omitempty"`
	Quadratic []Quad  `json:"quadratic,omitempty"`
}

// Constraint is one row: Σ Linear + Const + Σ Logs  Sense  RHS.
type Constraint struct {
	Kind   string  `json:"kind"`
	Name   string  `json:"name"`
	Family string  `json:"family"`
	Linear []Term  `json:"linear"`
	Const  float64 `json:"const,omitempty"`
	Logs   []Log   `json:"logs,omitempty"`
	Sense  string  `json:"sense"`
	RHS    float64 `json:"rhs"`
}

// Write streams m to w as JSON lines.
func Write(w io.Writer, m *model.Model) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	h := Header{
		Kind:        KindHeader,
		Name:        m.Name(),
		Fingerprint: strconv.FormatUint(m.Fingerprint(), 16),
		Variables:   m.NumVariables(),
		Constraints: m.NumConstraints(),
	}
	for _, f := range m.Families() {
		h.Families = append(h.Families, f.Name())
	}
	if err := enc.Encode(h); err != nil {
		return fmt.Errorf("export: header: %w", err)
	}

	for _, b := range m.Variables().Blocks() {
		rec := Block{Kind: KindBlock, Name: b.Name(), Rows: b.Rows(), Cols: b.Cols(), Offset: int(b.Offset())}
		rec.Lower = finite(b.Bounds().Lower)
		rec.Upper = finite(b.Bounds().Upper)
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("export: block %s: %w", b.Name(), err)
		}
	}

	obj := m.Objective()
	o := Objective{Kind: KindObjective, Sense: obj.Sense.String(), Linear: terms(obj.Linear), Const: obj.Linear.Const}
	for _, q := range obj.Quadratic {
		o.Quadratic = append(o.Quadratic, Quad{I: int(q.I), J: int(q.J), Coef: q.Coef})
	}
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("export: objective: %w", err)
	}

	for c := range m.Constraints() {
		rec := Constraint{
			Kind:   KindConstraint,
			Name:   c.Name(),
			Family: c.Family,
			Linear: terms(c.Body.Linear),
			Const:  c.Body.Linear.Const,
			Sense:  c.Sense.String(),
			RHS:    c.RHS,
		}
		for _, l := range c.Body.Logs {
			rec.Logs = append(rec.Logs, Log{Coef: l.Coef, Terms: terms(l.Arg), Const: l.Arg.Const})
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("export: %s: %w", rec.Name, err)
		}
	}

	return bw.Flush()
}

// WriteFile writes m to path, zstd-compressed when path ends in ".zst".
func WriteFile(path string, m *model.Model) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()

	if !compressed(path) {
		return Write(f, m)
	}

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("export: zstd: %w", err)
	}
	if err = Write(zw, m); err != nil {
		zw.Close() //nolint:errcheck
		return err
	}

	return zw.Close()
}

// Open returns a reader over the JSON lines at path, decompressing ".zst"
// files.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if !compressed(path) {
		return f, nil
	}

	zr, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
	if err != nil {
		f.Close() //nolint:errcheck
		return nil, fmt.Errorf("export: zstd: %w", err)
	}

	return &zstdFile{Decoder: zr, f: f}, nil
}

type zstdFile struct {
	*zstd.Decoder
	f *os.File
}

func (z *zstdFile) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

func compressed(path string) bool { return strings.HasSuffix(path, ".zst") }

func terms(e model.LinearExpr) []Term {
	out := make([]Term, len(e.Terms))
	for k, t := range e.Terms {
		out[k] = Term{Var: int(t.Var), Coef: t.Coef}
	}

	return out
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) {
		return nil
	}

	return &v
}
