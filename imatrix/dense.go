// Package imatrix provides a dense, column-oriented int64 matrix, the
// constraint-system backing store for package polyhedron (spec.md §4.B
// "Integer matrix operations"). Column orientation is deliberate:
// Fourier-Motzkin elimination produces many new columns and erases old
// ones, so the natural unit of mutation is a column, not a row.
package imatrix

// Dense is a column-major int64 matrix. rows*cols == len(data); element
// (r, c) lives at data[c*rows+r].
type Dense struct {
	rows, cols int
	data       []int64
}

// New creates a rows×cols Dense matrix initialized to zero.
// Stage 1 (Validate): rows >= 0 && cols >= 0.
// Stage 2 (Prepare): allocate flat column-major storage.
// Stage 3 (Finalize): return the zero-initialized matrix.
func New(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{rows: rows, cols: cols, data: make([]int64, rows*cols)}, nil
}

// NumRow returns the number of rows.
func (m *Dense) NumRow() int { return m.rows }

// NumCol returns the number of columns.
func (m *Dense) NumCol() int { return m.cols }

// offset computes the flat index for (row, col), or reports ErrOutOfRange.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}
	return col*m.rows + row, nil
}

// At returns the element at (row, col).
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[off], nil
}

// Set assigns v at (row, col).
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return err
	}
	m.data[off] = v
	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)
	return &Dense{rows: m.rows, cols: m.cols, data: cp}
}

// GetCol returns a live view of column c: mutating the returned slice
// mutates m directly, matching the original's getCol returning a
// PtrVector window rather than a copy (spec.md §4.B).
func (m *Dense) GetCol(c int) []int64 {
	return m.data[c*m.rows : (c+1)*m.rows]
}

// Reserve grows the backing storage's capacity to hold at least
// newCols columns without reallocating on every subsequent append,
// without changing NumCol(). It is a no-op if capacity already suffices.
func (m *Dense) Reserve(newCols int) {
	need := newCols * m.rows
	if cap(m.data) >= need {
		return
	}
	grown := make([]int64, len(m.data), need)
	copy(grown, m.data)
	m.data = grown
}

// ResizeForOverwrite changes m's shape to rows×cols, without preserving
// or zeroing existing contents — callers must overwrite every element
// before reading it back. This mirrors the original's
// resizeForOverwrite, used when a caller is about to recompute every
// column of a result matrix from scratch (spec.md §4.B).
func (m *Dense) ResizeForOverwrite(rows, cols int) {
	need := rows * cols
	if cap(m.data) < need {
		m.data = make([]int64, need)
	} else {
		m.data = m.data[:need]
	}
	m.rows, m.cols = rows, cols
}

// AppendCol appends a new column (zero-initialized) and returns its index.
func (m *Dense) AppendCol() int {
	m.Reserve(m.cols + 1)
	m.data = m.data[:len(m.data)+m.rows]
	m.cols++
	return m.cols - 1
}

// EraseCol removes column c, shifting every later column one position
// to the left, and shrinks NumCol() by one (spec.md §4.B "eraseCol(c):
// shift-left").
func (m *Dense) EraseCol(c int) {
	if c < 0 || c >= m.cols {
		return
	}
	for j := c + 1; j < m.cols; j++ {
		copy(m.data[(j-1)*m.rows:j*m.rows], m.data[j*m.rows:(j+1)*m.rows])
	}
	m.cols--
	m.data = m.data[:m.cols*m.rows]
}

// PivotCols finds a nonzero entry in row rowPivot among columns
// [colTarget, colSearchEnd), swaps that column into position colTarget,
// and reports whether the whole search range was zero in that row
// (spec.md §4.B). colTarget itself is included in the search.
func (m *Dense) PivotCols(rowPivot, colSearchEnd, colTarget int) (allZero bool) {
	for c := colTarget; c < colSearchEnd; c++ {
		v, err := m.At(rowPivot, c)
		if err != nil {
			continue
		}
		if v != 0 {
			if c != colTarget {
				m.SwapCols(c, colTarget)
			}
			return false
		}
	}
	return true
}

// SwapCols exchanges columns a and b in place.
func (m *Dense) SwapCols(a, b int) {
	if a == b {
		return
	}
	ca := m.GetCol(a)
	cb := m.GetCol(b)
	for i := range ca {
		ca[i], cb[i] = cb[i], ca[i]
	}
}
