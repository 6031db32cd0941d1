package datasets

import "errors"
import "fmt"

// ErrRagged is returned when rows of a table differ in length.
var ErrRagged = errors.New("rows differ in length")

// Table is a read only rectangular boolean feature table.
type Table interface {

	// Rows gets the number of samples
	Rows() int

	// Cols gets the number of features of each sample
	Cols() int

	// At gets feature col of sample row
	At(row, col int) bool

	// Row gets all features of sample row. Callers must not modify it.
	Row(row int) []bool
}

// Labels are the expected outputs, one per table row.
type Labels []bool

// Matrix is a row-major Table.
type Matrix struct {
	rows, cols int
	data       []bool
}

// NewMatrix wraps row-major data of rows*cols values.
func NewMatrix(rows, cols int, data []bool) (*Matrix, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("matrix %dx%d needs %d values, got %d", rows, cols, rows*cols, len(data))
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// FromRows copies rows into a new Matrix. All rows must have the same length.
func FromRows(rows [][]bool) (*Matrix, error) {
	var m = &Matrix{rows: len(rows)}
	if len(rows) > 0 {
		m.cols = len(rows[0])
	}
	m.data = make([]bool, 0, m.rows*m.cols)
	for i, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("row %d has %d values, row 0 has %d: %w", i, len(row), m.cols, ErrRagged)
		}
		m.data = append(m.data, row...)
	}
	return m, nil
}

// MustFromRows is like FromRows but panics on error
func MustFromRows(rows [][]bool) *Matrix {
	m, err := FromRows(rows)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// Rows gets the number of samples
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols gets the number of features
func (m *Matrix) Cols() int {
	return m.cols
}

// At gets feature col of sample row
func (m *Matrix) At(row, col int) bool {
	return m.data[row*m.cols+col]
}

// Row gets the features of sample row, sharing the matrix storage
func (m *Matrix) Row(row int) []bool {
	return m.data[row*m.cols : (row+1)*m.cols : (row+1)*m.cols]
}
