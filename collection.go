package figure

import (
	"strconv"
	"strings"

	"github.com/soypat/figure/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Collection is an ordered list of figures of mixed kinds. A collection
// owns its figures: Add stores copies, so later edits to the added
// figures do not reach the collection.
type Collection struct {
	figs []Figure
}

// Add appends copies of figs to the collection. Nil figures are ignored.
func (c *Collection) Add(figs ...Figure) {
	for _, f := range figs {
		if payloadOf(f) == nil {
			continue
		}
		c.figs = append(c.figs, f.Clone())
	}
}

// Len returns the number of figures in the collection.
func (c *Collection) Len() int { return len(c.figs) }

// At returns the i'th figure.
func (c *Collection) At(i int) Figure { return c.figs[i] }

// Each calls fn for every figure in order and stops at the first error.
func (c *Collection) Each(fn func(i int, f Figure) error) error {
	for i, f := range c.figs {
		if err := fn(i, f); err != nil {
			return err
		}
	}
	return nil
}

// TotalArea returns the sum of the area of every figure.
func (c *Collection) TotalArea() float64 {
	var total float64
	for _, f := range c.figs {
		total += f.Value()
	}
	return total
}

// Bounds returns the box enclosing every figure. It is the zero box for an
// empty collection.
func (c *Collection) Bounds() r2.Box {
	if len(c.figs) == 0 {
		return r2.Box{}
	}
	bb := d2.Box(c.figs[0].Bounds())
	for _, f := range c.figs[1:] {
		bb = bb.Extend(d2.Box(f.Bounds()))
	}
	return r2.Box(bb)
}

// Containing returns the indices of the figures that contain p.
func (c *Collection) Containing(p r2.Vec) []int {
	var idx []int
	for i, f := range c.figs {
		if f.Contains(p) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Clone returns a deep copy of the collection.
func (c *Collection) Clone() *Collection {
	cp := &Collection{figs: make([]Figure, len(c.figs))}
	for i, f := range c.figs {
		cp.figs[i] = f.Clone()
	}
	return cp
}

// String prints one figure per line, prefixed by its 1 based index.
func (c *Collection) String() string {
	var sb strings.Builder
	for i, f := range c.figs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(": ")
		sb.WriteString(f.String())
	}
	return sb.String()
}
