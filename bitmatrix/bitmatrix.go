package bitmatrix

import (
	"fmt"
	"math/bits"

	"github.com/tickgraph/tickgraph/arena"
)

const wordBits = 64

// BitMatrix is a fixed-capacity rows×cols bit array. The backing words
// slice is a plain Go slice sized once at construction and accounted
// against an Arena (see the Arena doc comment for why bit-matrix
// storage is Reserve-accounted rather than literally arena-resident).
type BitMatrix struct {
	rows, cols int
	stride     int // words per row
	words      []uint64
}

// New constructs a rows×cols BitMatrix, all bits clear, charging its
// storage against ar.
//
// Complexity: O(rows*cols) time and memory, once, at construction —
// never on the ask-side hot path.
func New(rows, cols int, ar *arena.Arena) (*BitMatrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	stride := (cols + wordBits - 1) / wordBits
	total := rows * stride
	if err := ar.Reserve(uint64(total) * 8); err != nil {
		return nil, fmt.Errorf("bitmatrix: allocate %dx%d: %w", rows, cols, err)
	}
	return &BitMatrix{
		rows:   rows,
		cols:   cols,
		stride: stride,
		words:  make([]uint64, total),
	}, nil
}

// Rows returns the number of rows.
func (m *BitMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *BitMatrix) Cols() int { return m.cols }

func (m *BitMatrix) bounds(i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("bitmatrix: (%d,%d) outside %dx%d: %w", i, j, m.rows, m.cols, ErrIndexOutOfBounds)
	}
	return nil
}

// Set marks cell (i,j).
//
// Complexity: O(1).
func (m *BitMatrix) Set(i, j int) error {
	if err := m.bounds(i, j); err != nil {
		return err
	}
	word, bit := j/wordBits, uint(j%wordBits)
	m.words[i*m.stride+word] |= 1 << bit
	return nil
}

// Clear unmarks cell (i,j).
//
// Complexity: O(1).
func (m *BitMatrix) Clear(i, j int) error {
	if err := m.bounds(i, j); err != nil {
		return err
	}
	word, bit := j/wordBits, uint(j%wordBits)
	m.words[i*m.stride+word] &^= 1 << bit
	return nil
}

// Test reads cell (i,j).
//
// Complexity: O(1).
func (m *BitMatrix) Test(i, j int) (bool, error) {
	if err := m.bounds(i, j); err != nil {
		return false, err
	}
	word, bit := j/wordBits, uint(j%wordBits)
	return m.words[i*m.stride+word]&(1<<bit) != 0, nil
}

// ClearAll zeroes every bit in the matrix, in place.
//
// Complexity: O(rows*stride).
func (m *BitMatrix) ClearAll() {
	for w := range m.words {
		m.words[w] = 0
	}
}

// UnionRowInto performs row[i] |= row[j], word-parallel across the
// entire row. This is the primitive the OWL engine's row-union
// Floyd–Warshall materialization is built on.
//
// Returns the number of bits newly set in row i, so callers can
// accumulate an inference count without a second pass.
//
// Complexity: O(stride) = O(cols/64).
func (m *BitMatrix) UnionRowInto(i, j int) (newlySet int, err error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.rows {
		return 0, fmt.Errorf("bitmatrix: row (%d,%d) outside %d rows: %w", i, j, m.rows, ErrIndexOutOfBounds)
	}
	base := i * m.stride
	src := j * m.stride
	for w := 0; w < m.stride; w++ {
		before := m.words[base+w]
		after := before | m.words[src+w]
		newlySet += bits.OnesCount64(after &^ before)
		m.words[base+w] = after
	}
	return newlySet, nil
}

// PopcountRow returns the number of set bits in row i. Used only for
// statistics.
//
// Complexity: O(stride).
func (m *BitMatrix) PopcountRow(i int) (int, error) {
	if i < 0 || i >= m.rows {
		return 0, fmt.Errorf("bitmatrix: row %d outside %d rows: %w", i, m.rows, ErrIndexOutOfBounds)
	}
	count := 0
	base := i * m.stride
	for w := 0; w < m.stride; w++ {
		count += bits.OnesCount64(m.words[base+w])
	}
	return count, nil
}
