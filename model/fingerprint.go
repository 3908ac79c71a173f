package model

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a 64-bit structural digest of the model: blocks,
// bounds, objective and every constraint row in order. The model name is
// excluded, so two assemblies of the same problem hash equal.
func (m *Model) Fingerprint() uint64 {
	h := fingerprinter{d: xxhash.New()}

	for _, b := range m.vars.blocks {
		h.str(b.name)
		h.i64(b.rows)
		h.i64(b.cols)
		h.f64(b.bounds.Lower)
		h.f64(b.bounds.Upper)
	}

	h.i64(int(m.obj.Sense))
	h.linear(m.obj.Linear)
	h.i64(len(m.obj.Quadratic))
	for _, q := range m.obj.Quadratic {
		h.i64(int(q.I))
		h.i64(int(q.J))
		h.f64(q.Coef)
	}

	for _, f := range m.families {
		h.str(f.Name())
		h.i64(f.Len())
		for c := range f.All() {
			h.i64(c.Row)
			h.i64(c.Col)
			h.i64(int(c.Sense))
			h.f64(c.RHS)
			h.linear(c.Body.Linear)
			h.i64(len(c.Body.Logs))
			for _, l := range c.Body.Logs {
				h.f64(l.Coef)
				h.linear(l.Arg)
			}
		}
	}

	return h.d.Sum64()
}

type fingerprinter struct {
	d   *xxhash.Digest
	buf [8]byte
}

func (h *fingerprinter) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *fingerprinter) i64(v int)     { h.u64(uint64(int64(v))) }
func (h *fingerprinter) f64(v float64) { h.u64(math.Float64bits(v)) }

func (h *fingerprinter) str(s string) {
	h.i64(len(s))
	_, _ = h.d.WriteString(s)
}

func (h *fingerprinter) linear(e LinearExpr) {
	h.i64(len(e.Terms))
	for _, t := range e.Terms {
		h.i64(int(t.Var))
		h.f64(t.Coef)
	}
	h.f64(e.Const)
}
