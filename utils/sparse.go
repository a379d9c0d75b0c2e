package utils

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

/*
Incidence is a 0/1 sparse matrix relating entities (rows) to the vertices they use (columns).
Setting the same entry twice leaves it at 1, so repeated vertices count once.
*/
type Incidence struct {
	M *sparse.DOK
}

func NewIncidence(nr, nc int) (R Incidence) {
	R = Incidence{
		M: sparse.NewDOK(nr, nc),
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Incidence) Dims() (r, c int)    { return m.M.Dims() }
func (m Incidence) At(i, j int) float64 { return m.M.At(i, j) }
func (m Incidence) T() mat.Matrix       { return m.M.T() }

func (m Incidence) Set(row, col int) {
	m.M.Set(row, col, 1)
}

// Gram returns M * Transpose(M), entry (i,j) counts the columns rows i and j share
func (m Incidence) Gram() (G *sparse.CSR) {
	var (
		nr, _ = m.Dims()
	)
	Sp := m.M.ToCSR()
	G = sparse.NewCSR(nr, nr, nil, nil, nil)
	G.Mul(Sp, Sp.T())
	return
}

// DoShared calls fn once for each pair of rows i < j sharing at least one column
func (m Incidence) DoShared(fn func(i, j, shared int)) {
	G := m.Gram()
	G.DoNonZero(func(i, j int, v float64) {
		if i < j {
			fn(i, j, int(v))
		}
	})
}
