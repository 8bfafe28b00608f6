// Package chol factorizes covariance matrices with diagonal jitter and
// solves the resulting triangular systems.
package chol

import (
	"fmt"
	"math"

	"github.com/lucasmaystre/gogp/gperr"
	"github.com/lucasmaystre/gogp/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// Factorize returns the lower Cholesky factor L of m + eps*I, where eps is
// the relative jitter times the mean magnitude of the diagonal of m. If
// that fails, one more attempt is made with eps scaled by the retry factor.
// m is not modified.
func Factorize(m mat.Symmetric, opts ...Option) (*mat.TriDense, error) {
	o := Gather(opts...)
	n := m.SymmetricDim()
	if n == 0 {
		return nil, fmt.Errorf("%w: empty matrix", gperr.ErrShape)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite entry at (%d, %d)",
					gperr.ErrNumericalInstability, i, j)
			}
		}
	}

	eps := o.jitter * diagScale(m)
	if l, ok := potrf(m, n, eps); ok {
		return l, nil
	}
	if o.retryFactor == 0 {
		return nil, fmt.Errorf("%w: not positive definite with jitter %g",
			gperr.ErrNumericalInstability, eps)
	}
	o.logger.Debug("cholesky failed, retrying with larger jitter",
		zap.Int("n", n),
		zap.Float64("jitter", eps),
		zap.Float64("retry_jitter", eps*o.retryFactor),
	)
	eps *= o.retryFactor
	if l, ok := potrf(m, n, eps); ok {
		return l, nil
	}
	return nil, fmt.Errorf("%w: not positive definite with jitter %g",
		gperr.ErrNumericalInstability, eps)
}

// FactorizeMatrix factorizes a square matrix that is symmetric up to
// rounding. The symmetric part (m + m^T) / 2 is factorized.
func FactorizeMatrix(m mat.Matrix, opts ...Option) (*mat.TriDense, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: cannot factorize %d×%d matrix", gperr.ErrShape, r, c)
	}
	if s, ok := m.(mat.Symmetric); ok {
		return Factorize(s, opts...)
	}
	return Factorize(utils.Symmetrize(m), opts...)
}

// Mean absolute diagonal, or 1 if the diagonal is zero.
func diagScale(m mat.Symmetric) float64 {
	if s := utils.MeanDiag(m); s > 0 {
		return s
	}
	return 1.0
}

// potrf copies the lower triangle of m + eps*I and factorizes it in place.
func potrf(m mat.Symmetric, n int, eps float64) (*mat.TriDense, bool) {
	a := blas64.Symmetric{
		N:      n,
		Stride: n,
		Data:   make([]float64, n*n),
		Uplo:   blas.Lower,
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			a.Data[i*n+j] = m.At(i, j)
		}
		a.Data[i*n+i] += eps
	}
	t, ok := lapack64.Potrf(a)
	if !ok {
		return nil, false
	}
	return mat.NewTriDense(n, mat.Lower, t.Data), true
}

// SolveLower returns X such that L X = B, by forward substitution.
func SolveLower(l *mat.TriDense, b mat.Matrix) (*mat.Dense, error) {
	n, kind := l.Triangle()
	if kind != mat.Lower {
		return nil, fmt.Errorf("%w: factor must be lower triangular", gperr.ErrInvalidArgument)
	}
	if r, _ := b.Dims(); r != n {
		return nil, fmt.Errorf("%w: solve with %d×%d factor and %d rows",
			gperr.ErrShape, n, n, r)
	}
	x := mat.DenseCopyOf(b)
	if ok := lapack64.Trtrs(blas.NoTrans, l.RawTriangular(), x.RawMatrix()); !ok {
		return nil, fmt.Errorf("%w: singular factor", gperr.ErrNumericalInstability)
	}
	return x, nil
}

// SolveLowerVec returns x such that L x = b.
func SolveLowerVec(l *mat.TriDense, b mat.Vector) (*mat.VecDense, error) {
	n, kind := l.Triangle()
	if kind != mat.Lower {
		return nil, fmt.Errorf("%w: factor must be lower triangular", gperr.ErrInvalidArgument)
	}
	if b.Len() != n {
		return nil, fmt.Errorf("%w: solve with %d×%d factor and vector of length %d",
			gperr.ErrShape, n, n, b.Len())
	}
	x := mat.VecDenseCopyOf(b)
	g := blas64.General{
		Rows:   n,
		Cols:   1,
		Stride: 1,
		Data:   x.RawVector().Data,
	}
	if ok := lapack64.Trtrs(blas.NoTrans, l.RawTriangular(), g); !ok {
		return nil, fmt.Errorf("%w: singular factor", gperr.ErrNumericalInstability)
	}
	return x, nil
}
