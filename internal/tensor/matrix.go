package tensor

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// Matrix selects the trailing 2D matrix addressed by a leading-index prefix.
// For a tensor of rank n, pos must have length n-2; the result has the shape
// of the last two dimensions.
func (t *Tensor) Matrix(pos ...int) (*Tensor, error) {
	ndim := len(t.shape)
	if ndim-len(pos) != 2 {
		return nil, fmt.Errorf("tensor: Matrix needs %d leading indices for shape %v, got %d",
			ndim-2, t.shape, len(pos))
	}
	strides := t.shape.ComputeStrides()
	offset := 0
	for i, p := range pos {
		if p < 0 || p >= t.shape[i] {
			return nil, fmt.Errorf("tensor: Matrix index %d out of range for dimension %d (size %d)",
				p, i, t.shape[i])
		}
		offset += p * strides[i]
	}

	rows, cols := t.shape[ndim-2], t.shape[ndim-1]
	return FromData(t.data[offset:offset+rows*cols], Shape{rows, cols})
}

// MatrixRow returns row i of a 2D tensor as a [1, cols] tensor.
func (t *Tensor) MatrixRow(row int) (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("tensor: MatrixRow requires a 2D tensor, got shape %v", t.shape)
	}
	if row < 0 || row >= t.shape[0] {
		return nil, fmt.Errorf("tensor: row %d out of range (rows: %d)", row, t.shape[0])
	}
	cols := t.shape[1]
	return FromData(t.data[row*cols:(row+1)*cols], Shape{1, cols})
}

// MatrixCol returns column j of a 2D tensor as a [rows, 1] tensor.
func (t *Tensor) MatrixCol(col int) (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("tensor: MatrixCol requires a 2D tensor, got shape %v", t.shape)
	}
	if col < 0 || col >= t.shape[1] {
		return nil, fmt.Errorf("tensor: column %d out of range (columns: %d)", col, t.shape[1])
	}
	rows, cols := t.shape[0], t.shape[1]
	out := make([]float32, 0, rows)
	for i := col; i < len(t.data); i += cols {
		out = append(out, t.data[i])
	}
	return FromData(out, Shape{rows, 1})
}

// MatrixTranspose transposes a [rows, cols] tensor to [cols, rows].
func (t *Tensor) MatrixTranspose() (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("tensor: MatrixTranspose requires a 2D tensor, got shape %v", t.shape)
	}
	rows, cols := t.shape[0], t.shape[1]
	out := Zeros(Shape{cols, rows})
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out.data[c*rows+r] = t.data[r*cols+c]
		}
	}
	return out, nil
}

// MatrixMul performs matrix multiplication: [m, k] @ [k, n] -> [m, n].
// Backed by gonum's float32 BLAS implementation.
func (t *Tensor) MatrixMul(other *Tensor) (*Tensor, error) {
	if len(t.shape) != 2 || len(other.shape) != 2 {
		return nil, fmt.Errorf("tensor: MatrixMul requires 2D tensors, got %v and %v", t.shape, other.shape)
	}
	if t.shape[1] != other.shape[0] {
		return nil, fmt.Errorf("tensor: MatrixMul shape mismatch: [%d,%d] @ [%d,%d]",
			t.shape[0], t.shape[1], other.shape[0], other.shape[1])
	}

	m, k, n := t.shape[0], t.shape[1], other.shape[1]
	out := Zeros(Shape{m, n})

	a := blas32.General{Rows: m, Cols: k, Stride: k, Data: t.data}
	b := blas32.General{Rows: k, Cols: n, Stride: n, Data: other.data}
	c := blas32.General{Rows: m, Cols: n, Stride: n, Data: out.data}
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, a, b, 0, c)

	return out, nil
}

// MatrixColSum sums each row's columns into one, returning a [rows, 1] tensor.
func (t *Tensor) MatrixColSum() (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("tensor: MatrixColSum requires a 2D tensor, got shape %v", t.shape)
	}
	rows, cols := t.shape[0], t.shape[1]
	out := Zeros(Shape{rows, 1})
	for r := 0; r < rows; r++ {
		var sum float32
		for c := 0; c < cols; c++ {
			sum += t.data[r*cols+c]
		}
		out.data[r] = sum
	}
	return out, nil
}

// MatrixRowSum sums each column's rows into one, returning a [1, cols] tensor.
func (t *Tensor) MatrixRowSum() (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("tensor: MatrixRowSum requires a 2D tensor, got shape %v", t.shape)
	}
	rows, cols := t.shape[0], t.shape[1]
	out := Zeros(Shape{1, cols})
	for c := 0; c < cols; c++ {
		var sum float32
		for r := 0; r < rows; r++ {
			sum += t.data[r*cols+c]
		}
		out.data[c] = sum
	}
	return out, nil
}

// MatrixColProd multiplies each row's columns into one, returning a [rows, 1] tensor.
func (t *Tensor) MatrixColProd() (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("tensor: MatrixColProd requires a 2D tensor, got shape %v", t.shape)
	}
	rows, cols := t.shape[0], t.shape[1]
	out := Zeros(Shape{rows, 1})
	for r := 0; r < rows; r++ {
		prod := t.data[r*cols]
		for c := 1; c < cols; c++ {
			prod *= t.data[r*cols+c]
		}
		out.data[r] = prod
	}
	return out, nil
}

// MatrixRowProd multiplies each column's rows into one, returning a [1, cols] tensor.
func (t *Tensor) MatrixRowProd() (*Tensor, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("tensor: MatrixRowProd requires a 2D tensor, got shape %v", t.shape)
	}
	rows, cols := t.shape[0], t.shape[1]
	out := Zeros(Shape{1, cols})
	for c := 0; c < cols; c++ {
		prod := t.data[c]
		for r := 1; r < rows; r++ {
			prod *= t.data[r*cols+c]
		}
		out.data[c] = prod
	}
	return out, nil
}

// MatrixString renders a 2D tensor as pipe-delimited rows, e.g. "|1, 2|\n|3, 4|".
func (t *Tensor) MatrixString() (string, error) {
	if len(t.shape) != 2 {
		return "", fmt.Errorf("tensor: MatrixString requires a 2D tensor, got shape %v", t.shape)
	}
	rows, cols := t.shape[0], t.shape[1]
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		sb.WriteString("|")
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&sb, "%g", t.data[r*cols+c])
			if c != cols-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("|")
		if r != rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}
