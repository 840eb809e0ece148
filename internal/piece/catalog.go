package piece

import (
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tetris-bane/internal/core"
)

// Descriptor is the data record for one label: its color, its orientation
// layouts and the rotation steps derived from them.
type Descriptor struct {
	Label        Label
	Color        core.Color
	Orientations [][]core.Position

	// steps[k][i] moves cell i from orientation k to orientation k+1
	// (wrapping). Nil for labels with a single orientation.
	steps [][]core.Position
}

// Cycle returns the number of distinct orientations: 4 for most labels,
// 2 for line and S/Z-like labels, 1 for square-like labels.
func (d *Descriptor) Cycle() int {
	return len(d.Orientations)
}

// Size returns the number of cells in the piece.
func (d *Descriptor) Size() int {
	return len(d.Orientations[0])
}

// Symmetric reports whether rotation is a no-op for this label.
func (d *Descriptor) Symmetric() bool {
	return d.Cycle() <= 1
}

// Step returns a copy of the per-cell deltas for orientation step k
// (taken modulo the cycle length). Symmetric labels return all-zero deltas.
func (d *Descriptor) Step(k int) []core.Position {
	out := make([]core.Position, d.Size())
	if d.Symmetric() {
		return out
	}
	copy(out, d.steps[core.Wrap(k, d.Cycle())])
	return out
}

// deriveSteps computes the rotation steps from consecutive orientations.
// Summing all steps of a cycle yields zero for every cell, so a full
// cycle always returns a piece to its starting cells.
func (d *Descriptor) deriveSteps() error {
	if len(d.Orientations) == 0 {
		return fmt.Errorf("piece: %s has no orientations", d.Label)
	}
	size := len(d.Orientations[0])
	for k, o := range d.Orientations {
		if len(o) != size {
			return fmt.Errorf("piece: %s orientation %d has %d cells, want %d", d.Label, k, len(o), size)
		}
	}
	if len(d.Orientations) == 1 {
		d.steps = nil
		return nil
	}

	n := len(d.Orientations)
	d.steps = make([][]core.Position, n)
	for k := range n {
		from, to := d.Orientations[k], d.Orientations[(k+1)%n]
		step := make([]core.Position, size)
		for i := range size {
			step[i] = to[i].Sub(from[i])
		}
		d.steps[k] = step
	}
	return nil
}

// Catalog maps labels to their descriptors.
type Catalog struct {
	descriptors *intmap.Map[Label, *Descriptor]
	labels      []Label
}

// NewCatalog builds a catalog from descriptor records. Duplicate labels
// and ragged orientation tables are rejected.
func NewCatalog(records []Descriptor) (*Catalog, error) {
	c := &Catalog{
		descriptors: intmap.New[Label, *Descriptor](len(records)),
		labels:      make([]Label, 0, len(records)),
	}
	for _, rec := range records {
		d := rec
		if err := d.deriveSteps(); err != nil {
			return nil, err
		}
		if _, dup := c.descriptors.Get(d.Label); dup {
			return nil, fmt.Errorf("piece: duplicate descriptor for %s", d.Label)
		}
		c.descriptors.Put(d.Label, &d)
		c.labels = append(c.labels, d.Label)
	}
	return c, nil
}

var defaultCatalog = mustCatalog(shapes)

func mustCatalog(records []Descriptor) *Catalog {
	c, err := NewCatalog(records)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog returns the built-in catalog of classic and Bane shapes.
// The returned catalog is shared and must be treated as read-only.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Labels returns all labels in the catalog in declaration order.
func (c *Catalog) Labels() []Label {
	out := make([]Label, len(c.labels))
	copy(out, c.labels)
	return out
}

// Describe returns the descriptor for a label.
func (c *Catalog) Describe(l Label) (*Descriptor, bool) {
	return c.descriptors.Get(l)
}

// Has reports whether the catalog knows the label.
func (c *Catalog) Has(l Label) bool {
	_, ok := c.descriptors.Get(l)
	return ok
}

// mustDescribe panics for labels outside the catalog. Labels reaching the
// catalog have been validated when the mode was built.
func (c *Catalog) mustDescribe(l Label) *Descriptor {
	d, ok := c.descriptors.Get(l)
	if !ok {
		panic(fmt.Sprintf("piece: %s not in catalog", l))
	}
	return d
}
