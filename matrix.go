package sgl

// Matrix is a row-major 4x4 matrix. The zero value is not meaningful;
// use NewMatrix for an identity matrix.
type Matrix struct {
	data [16]float32
}

// NewMatrix returns the identity matrix.
func NewMatrix() Matrix {
	var m Matrix
	m.data[0], m.data[5], m.data[10], m.data[15] = 1, 1, 1, 1
	return m
}

// NewMatrixFromColumnMajor builds a Matrix from a flat 16-float array
// supplied in column-major order (OpenGL-style callers), transposing it
// into this type's row-major storage on ingest.
func NewMatrixFromColumnMajor(flat [16]float32) Matrix {
	var m Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.data[i*4+j] = flat[j*4+i]
		}
	}
	return m
}

// Data returns the 16 row-major elements.
func (m Matrix) Data() [16]float32 { return m.data }

// At returns element (row, col), 0-indexed.
func (m Matrix) At(row, col int) float32 { return m.data[row*4+col] }

// Mul returns m * other.
func (m Matrix) Mul(other Matrix) Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.data[i*4+k] * other.data[k*4+j]
			}
			r.data[i*4+j] = sum
		}
	}
	return r
}

// MulVertex returns m * v.
func (m Matrix) MulVertex(v Vertex) Vertex {
	return Vertex{
		X: m.data[0]*v.X + m.data[1]*v.Y + m.data[2]*v.Z + m.data[3]*v.W,
		Y: m.data[4]*v.X + m.data[5]*v.Y + m.data[6]*v.Z + m.data[7]*v.W,
		Z: m.data[8]*v.X + m.data[9]*v.Y + m.data[10]*v.Z + m.data[11]*v.W,
		W: m.data[12]*v.X + m.data[13]*v.Y + m.data[14]*v.Z + m.data[15]*v.W,
	}
}

// DivScalar divides every element by s in place.
func (m *Matrix) DivScalar(s float32) {
	for i := range m.data {
		m.data[i] /= s
	}
}

// convert2DTo1D addresses the matrix with the original column-major-
// style internal indexing that the Gauss-Jordan routine below uses
// while walking rows/columns of the augmented system.
func convert2DTo1D(col, row int) int { return col + row*4 }

// Invert inverts m in place via Gauss-Jordan elimination with partial
// pivoting (Numerical-Recipes style). It returns 0 on success and 1 if
// m is singular, leaving m in an indeterminate state in that case.
func (m *Matrix) Invert() int {
	var indxc, indxr, ipiv [4]int

	for i := 0; i < 4; i++ {
		big := float32(0)
		irow, icol := 0, 0
		for j := 0; j < 4; j++ {
			if ipiv[j] == 1 {
				continue
			}
			for k := 0; k < 4; k++ {
				if ipiv[k] == 0 {
					v := m.data[convert2DTo1D(k, j)]
					if v < 0 {
						v = -v
					}
					if v >= big {
						big = v
						irow, icol = j, k
					}
				} else if ipiv[k] > 1 {
					return 1
				}
			}
		}
		ipiv[icol]++

		if irow != icol {
			for k := 0; k < 4; k++ {
				a := convert2DTo1D(k, irow)
				b := convert2DTo1D(k, icol)
				m.data[a], m.data[b] = m.data[b], m.data[a]
			}
		}
		indxr[i] = irow
		indxc[i] = icol

		pivot := m.data[convert2DTo1D(icol, icol)]
		if pivot == 0 {
			return 1
		}
		pivInv := 1 / pivot
		m.data[convert2DTo1D(icol, icol)] = 1
		for k := 0; k < 4; k++ {
			idx := convert2DTo1D(k, icol)
			m.data[idx] *= pivInv
		}

		for row := 0; row < 4; row++ {
			if row == icol {
				continue
			}
			factor := m.data[convert2DTo1D(icol, row)]
			if factor == 0 {
				continue
			}
			m.data[convert2DTo1D(icol, row)] = 0
			for k := 0; k < 4; k++ {
				a := convert2DTo1D(k, row)
				b := convert2DTo1D(k, icol)
				m.data[a] -= m.data[b] * factor
			}
		}
	}

	for k := 3; k >= 0; k-- {
		if indxr[k] == indxc[k] {
			continue
		}
		for row := 0; row < 4; row++ {
			a := convert2DTo1D(indxr[k], row)
			b := convert2DTo1D(indxc[k], row)
			m.data[a], m.data[b] = m.data[b], m.data[a]
		}
	}
	return 0
}
