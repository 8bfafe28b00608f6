// Package sampling draws seeded, reproducible samples from GP random
// variables.
//
// Every draw takes an explicit seed: there is no package-level random
// source, and the same (seed, distribution, count) always produces the same
// bits.
package sampling

import (
	"fmt"

	"github.com/lucasmaystre/gogp/chol"
	"github.com/lucasmaystre/gogp/gp"
	"github.com/lucasmaystre/gogp/gperr"
	"github.com/lucasmaystre/gogp/params"
	"github.com/lucasmaystre/gogp/utils"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sample draws nSamples independent samples from rv. Row i of the result is
// the i-th draw, mean + L z_i with L the stabilized Cholesky factor of the
// covariance and z_i standard normal.
func Sample(seed uint64, rv *gp.Normal, nSamples int, opts ...chol.Option) (*mat.Dense, error) {
	if nSamples < 1 {
		return nil, fmt.Errorf("%w: number of samples must be positive, got %d",
			gperr.ErrInvalidArgument, nSamples)
	}
	if rv == nil || rv.Mean == nil || rv.Cov == nil {
		return nil, fmt.Errorf("%w: nil random variable", gperr.ErrShape)
	}
	n := rv.Dim()
	if rv.Cov.SymmetricDim() != n {
		return nil, fmt.Errorf("%w: mean of length %d with %d×%d covariance",
			gperr.ErrShape, n, rv.Cov.SymmetricDim(), rv.Cov.SymmetricDim())
	}
	if !utils.IsFinite(rv.Mean) {
		return nil, fmt.Errorf("%w: non-finite mean", gperr.ErrNumericalInstability)
	}
	l, err := chol.Factorize(rv.Cov, opts...)
	if err != nil {
		return nil, err
	}
	chol.Gather(opts...).Logger().Debug("sampling",
		zap.Uint64("seed", seed),
		zap.Int("samples", nSamples),
		zap.Int("dim", n),
	)

	// samples = Z L^T, then shift every row by the mean.
	z := noise(seed, nSamples, n)
	blas64.Trmm(blas.Right, blas.Trans, 1.0, l.RawTriangular(), z.RawMatrix())
	mu := mat.Col(nil, 0, rv.Mean)
	for i := 0; i < nSamples; i++ {
		floats.Add(z.RawRowView(i), mu)
	}
	return z, nil
}

// SampleModel builds the random variable of m at xq, conditioned on the
// training data if given, and samples from it.
func SampleModel(seed uint64, m gp.Model, p params.Set, xq, trainX mat.Matrix, trainY mat.Vector,
	nSamples int, opts ...chol.Option) (*mat.Dense, error) {
	rv, err := gp.RandomVariable(m, p, xq, trainX, trainY, opts...)
	if err != nil {
		return nil, err
	}
	return Sample(seed, rv, nSamples, opts...)
}

// noise returns a (rows, cols) matrix of standard normal draws, filled row
// by row from a source seeded with seed.
func noise(seed uint64, rows, cols int) *mat.Dense {
	r := rand.New(rand.NewSource(seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = r.NormFloat64()
	}
	return mat.NewDense(rows, cols, data)
}

// Moments returns the empirical mean and (unbiased) covariance of a sample
// batch with one draw per row. At least two draws are needed.
func Moments(samples mat.Matrix) (*mat.VecDense, *mat.SymDense, error) {
	r, c := samples.Dims()
	if r < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 samples, got %d",
			gperr.ErrInvalidArgument, r)
	}
	mean := mat.NewVecDense(c, nil)
	for j := 0; j < c; j++ {
		mean.SetVec(j, stat.Mean(mat.Col(nil, j, samples), nil))
	}
	cov := mat.NewSymDense(c, nil)
	stat.CovarianceMatrix(cov, samples, nil)
	return mean, cov, nil
}
