package gp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/lucasmaystre/gogp/gp"
	"github.com/lucasmaystre/gogp/gperr"
	"github.com/lucasmaystre/gogp/kern"
	"github.com/lucasmaystre/gogp/lik"
	"github.com/lucasmaystre/gogp/params"
	"github.com/lucasmaystre/gogp/utils"
)

// RandomVariableSuite exercises prior and posterior construction on the
// sin(x) regression problem over [-1, 1].
type RandomVariableSuite struct {
	suite.Suite
	prior     *gp.Prior
	posterior *gp.Posterior
	params    params.Set
	trainX    *mat.Dense
	trainY    *mat.VecDense
}

func (s *RandomVariableSuite) SetupTest() {
	s.prior = gp.NewPrior(kern.NewRBF())
	s.posterior = s.prior.Mul(lik.NewGaussian())
	s.params = params.Initialise(s.posterior.Params()...)
	xs := utils.Linspace(-1, 1, 10)
	s.trainX = utils.Column(xs)
	s.trainY = mat.NewVecDense(len(xs), nil)
	for i, x := range xs {
		s.trainY.SetVec(i, math.Sin(x))
	}
}

func (s *RandomVariableSuite) requirePSD(cov *mat.SymDense) {
	var es mat.EigenSym
	require.True(s.T(), es.Factorize(cov, false))
	for _, v := range es.Values(nil) {
		require.GreaterOrEqual(s.T(), v, -1e-8, "covariance must be positive semi-definite")
	}
}

func (s *RandomVariableSuite) TestPrior() {
	for _, n := range []int{1, 10} {
		xq := utils.Column(utils.Linspace(-1, 1, n))
		rv, err := gp.RandomVariable(s.prior, s.params, xq, nil, nil)
		require.NoError(s.T(), err)
		require.Equal(s.T(), n, rv.Dim())
		require.Equal(s.T(), n, rv.Cov.SymmetricDim())
		require.True(s.T(), mat.Equal(rv.Mean, mat.NewVecDense(n, nil)), "prior mean is zero")
		for i := 0; i < n; i++ {
			require.InDelta(s.T(), 1.0, rv.Cov.At(i, i), 1e-12)
		}
		s.requirePSD(rv.Cov)
	}
}

func (s *RandomVariableSuite) TestPosterior() {
	for _, n := range []int{1, 10} {
		xq := utils.Column(utils.Linspace(-1, 1, n))
		rv, err := gp.RandomVariable(s.posterior, s.params, xq, s.trainX, s.trainY)
		require.NoError(s.T(), err)
		require.Equal(s.T(), n, rv.Mean.Len())
		require.Equal(s.T(), n, rv.Cov.SymmetricDim())
		for i := 0; i < n; i++ {
			require.GreaterOrEqual(s.T(), rv.Cov.At(i, i), 0.0)
		}
		s.requirePSD(rv.Cov)
	}
}

func (s *RandomVariableSuite) TestPosteriorSinglePoint() {
	// K = 1 + 1 (unit variance, unit noise), so mean = y/2 and var = 1/2.
	x := mat.NewDense(1, 1, []float64{0})
	y := mat.NewVecDense(1, []float64{0.8})
	rv, err := gp.RandomVariable(s.posterior, s.params, x, x, y)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.4, rv.Mean.AtVec(0), 1e-5)
	require.InDelta(s.T(), 0.5, rv.Cov.At(0, 0), 1e-5)
}

func (s *RandomVariableSuite) TestConditioningReducesVariance() {
	p := s.params.With("obs_noise", 0)
	xq := mat.NewDense(1, 1, []float64{s.trainX.At(3, 0)})

	prior, err := gp.RandomVariable(s.prior, p, xq, nil, nil)
	require.NoError(s.T(), err)
	post, err := gp.RandomVariable(s.posterior, p, xq, s.trainX, s.trainY)
	require.NoError(s.T(), err)

	require.LessOrEqual(s.T(), post.Cov.At(0, 0), prior.Cov.At(0, 0))
	require.Less(s.T(), post.Cov.At(0, 0), 1e-3)
	require.InDelta(s.T(), s.trainY.AtVec(3), post.Mean.AtVec(0), 1e-3,
		"noiseless posterior interpolates the data")
}

func (s *RandomVariableSuite) TestPosteriorWithoutData() {
	xq := utils.Column(utils.Linspace(-1, 1, 5))
	got, err := gp.RandomVariable(s.posterior, s.params, xq, nil, nil)
	require.NoError(s.T(), err)
	want, err := gp.RandomVariable(s.prior, s.params, xq, nil, nil)
	require.NoError(s.T(), err)
	require.True(s.T(), mat.Equal(got.Cov, want.Cov))
}

func (s *RandomVariableSuite) TestPosteriorWithoutDataIgnoresNoise() {
	xq := utils.Column(utils.Linspace(-1, 1, 4))
	kernelOnly := params.Initialise("lengthscale", "variance")
	got, err := gp.RandomVariable(s.posterior, kernelOnly, xq, nil, nil)
	require.NoError(s.T(), err)
	want, err := gp.RandomVariable(s.prior, kernelOnly, xq, nil, nil)
	require.NoError(s.T(), err)
	require.True(s.T(), mat.Equal(got.Cov, want.Cov))

	_, err = gp.RandomVariable(s.posterior, params.Initialise("variance"), xq, nil, nil)
	require.ErrorIs(s.T(), err, gperr.ErrMissingParameter)
}

func (s *RandomVariableSuite) TestErrors() {
	xq := utils.Column(utils.Linspace(-1, 1, 3))

	_, err := gp.RandomVariable(s.posterior, s.params, xq, s.trainX, nil)
	require.ErrorIs(s.T(), err, gperr.ErrMissingArgument)
	var noY *mat.VecDense
	_, err = gp.RandomVariable(s.posterior, s.params, xq, nil, s.trainY)
	require.ErrorIs(s.T(), err, gperr.ErrMissingArgument)
	_, err = gp.RandomVariable(s.posterior, s.params, xq, s.trainX, noY)
	require.ErrorIs(s.T(), err, gperr.ErrMissingArgument)

	_, err = gp.RandomVariable(s.posterior, s.params, mat.NewDense(3, 2, nil), s.trainX, s.trainY)
	require.ErrorIs(s.T(), err, gperr.ErrShape)
	_, err = gp.RandomVariable(s.posterior, s.params, xq, s.trainX, mat.NewVecDense(4, nil))
	require.ErrorIs(s.T(), err, gperr.ErrShape)

	_, err = gp.RandomVariable(s.posterior, params.Initialise("lengthscale", "variance"), xq, s.trainX, s.trainY)
	require.ErrorIs(s.T(), err, gperr.ErrMissingParameter)

	_, err = gp.RandomVariable(s.prior, s.params, xq, s.trainX, s.trainY)
	require.ErrorIs(s.T(), err, gperr.ErrNoLikelihood)

	_, err = gp.RandomVariable(s.posterior, s.params.With("obs_noise", -1), xq, s.trainX, s.trainY)
	require.ErrorIs(s.T(), err, gperr.ErrInvalidArgument)
}

func TestRandomVariableSuite(t *testing.T) {
	suite.Run(t, new(RandomVariableSuite))
}

func TestMulDoesNotShareState(t *testing.T) {
	prior := gp.NewPrior(kern.NewMatern32())
	post := prior.Mul(lik.NewGaussian())
	require.NotSame(t, prior, post.Prior())
	require.Equal(t, []string{"lengthscale", "variance"}, prior.Params())
	require.Equal(t, []string{"lengthscale", "obs_noise", "variance"}, post.Params())
}

func TestNewNormal(t *testing.T) {
	_, err := gp.NewNormal(mat.NewVecDense(2, nil), mat.NewSymDense(3, nil))
	require.ErrorIs(t, err, gperr.ErrShape)

	_, err = gp.NewNormal(mat.NewVecDense(1, []float64{math.Inf(1)}), mat.NewSymDense(1, nil))
	require.ErrorIs(t, err, gperr.ErrNumericalInstability)

	rv, err := gp.NewNormal(mat.NewVecDense(2, nil), mat.NewSymDense(2, []float64{2, 0, 0, 3}))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 3}, rv.Variance().RawVector().Data)
}
