package gp

import (
	"fmt"

	"github.com/lucasmaystre/gogp/gperr"
	"github.com/lucasmaystre/gogp/utils"
	"gonum.org/v1/gonum/mat"
)

// Normal is a multivariate Gaussian over an ordered set of query points.
type Normal struct {
	Mean *mat.VecDense
	Cov  *mat.SymDense
}

// NewNormal checks that mean and cov agree in size and are finite.
func NewNormal(mean *mat.VecDense, cov *mat.SymDense) (*Normal, error) {
	if mean == nil || cov == nil {
		return nil, fmt.Errorf("%w: nil mean or covariance", gperr.ErrShape)
	}
	if n := cov.SymmetricDim(); mean.Len() != n {
		return nil, fmt.Errorf("%w: mean of length %d with %d×%d covariance",
			gperr.ErrShape, mean.Len(), n, n)
	}
	if !utils.IsFinite(mean) || !utils.IsFinite(cov) {
		return nil, fmt.Errorf("%w: non-finite mean or covariance", gperr.ErrNumericalInstability)
	}
	return &Normal{Mean: mean, Cov: cov}, nil
}

// Number of query points.
func (n *Normal) Dim() int {
	return n.Mean.Len()
}

// Marginal variances, the diagonal of the covariance.
func (n *Normal) Variance() *mat.VecDense {
	d := n.Dim()
	out := mat.NewVecDense(d, nil)
	for i := 0; i < d; i++ {
		out.SetVec(i, n.Cov.At(i, i))
	}
	return out
}
