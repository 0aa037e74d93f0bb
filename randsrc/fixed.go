// SPDX-License-Identifier: MIT

package randsrc

// Fixed is a degenerate Source that always draws the same value.
// Float64 returns V; Intn returns floor(V*n) clamped into [0,n).
//
// It exists for deterministic fixtures such as "randomness always returns 0".
type Fixed struct {
	V float64
}

// Float64 returns the fixed value.
func (f Fixed) Float64() float64 { return f.V }

// Intn maps the fixed value onto [0,n).
func (f Fixed) Intn(n int) int {
	if n <= 0 {
		panic("randsrc: Fixed.Intn with n <= 0")
	}
	i := int(f.V * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Counting wraps a Source and records how many draws of each kind it served.
// Useful to assert consumption order and volume.
type Counting struct {
	Src      Source
	Floats   int
	Ints     int
	Sequence []byte // 'f' for Float64, 'i' for Intn, in draw order
}

// Float64 forwards to the wrapped source and counts the draw.
func (c *Counting) Float64() float64 {
	c.Floats++
	c.Sequence = append(c.Sequence, 'f')
	return c.Src.Float64()
}

// Intn forwards to the wrapped source and counts the draw.
func (c *Counting) Intn(n int) int {
	c.Ints++
	c.Sequence = append(c.Sequence, 'i')
	return c.Src.Intn(n)
}
