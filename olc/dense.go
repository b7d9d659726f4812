package olc

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is returned by Matrix accessors when a row or column
// index is outside the valid range.
var ErrIndexOutOfBounds = errors.New("olc: matrix index out of bounds")

// ErrInvalidDimensions is returned when requested matrix dimensions are
// non-positive.
var ErrInvalidDimensions = errors.New("olc: matrix dimensions must be > 0")

// Matrix is a square, read-after-build numeric matrix. distMatrix (the
// packed forward-triangular distance matrix, distmatrix.go) and Dense
// (below) both satisfy it, so code that compares or prints a matrix
// need not care which storage layout produced it.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At retrieves the element at (row, col), bounds-checked.
	At(row, col int) (float64, error)
}

// Dense is a row-major square matrix of float64 values, a small,
// general-purpose implementation for an arbitrary (not necessarily
// forward-triangular) matrix. Neither Optimize nor the package's tests
// use it.
type Dense struct {
	n    int
	data []float64
}

// NewDense allocates an n×n Dense matrix initialized to zero.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// Rows returns n.
func (d *Dense) Rows() int { return d.n }

// Cols returns n.
func (d *Dense) Cols() int { return d.n }

func (d *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.n || col < 0 || col >= d.n {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return row*d.n + col, nil
}

// At retrieves the element at (row, col).
func (d *Dense) At(row, col int) (float64, error) {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set assigns value v at (row, col).
func (d *Dense) Set(row, col int, v float64) error {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}
