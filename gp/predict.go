package gp

import (
	"fmt"
	"reflect"

	"github.com/lucasmaystre/gogp/chol"
	"github.com/lucasmaystre/gogp/gperr"
	"github.com/lucasmaystre/gogp/kern"
	"github.com/lucasmaystre/gogp/params"
	"github.com/lucasmaystre/gogp/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// RandomVariable returns the distribution of the model's latent function at
// the rows of xq.
//
// trainX and trainY are either both nil or both set. Without training data
// the result is the zero-mean prior. With training data, the model must be a
// *Posterior and the result is the posterior predictive
//
//	mean = K*^T (K + s2 I)^-1 y
//	cov  = K** - K*^T (K + s2 I)^-1 K*
//
// computed from the Cholesky factor of K + s2 I with triangular solves.
func RandomVariable(m Model, p params.Set, xq mat.Matrix, trainX mat.Matrix, trainY mat.Vector,
	opts ...chol.Option) (*Normal, error) {
	hasX, hasY := !absent(trainX), !absent(trainY)
	if hasX != hasY {
		return nil, fmt.Errorf("%w: training inputs and targets must be given together",
			gperr.ErrMissingArgument)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", gperr.ErrInvalidArgument)
	}
	// Without data only the kernel is read.
	required := m.Params()
	if !hasX {
		required = m.Kernel().Params()
	}
	if err := p.Require(required...); err != nil {
		return nil, err
	}

	switch m := m.(type) {
	case *Prior:
		if hasX {
			return nil, gperr.ErrNoLikelihood
		}
		return prior(m.kernel, p, xq)
	case *Posterior:
		if !hasX {
			return prior(m.Kernel(), p, xq)
		}
		noise, err := m.likelihood.NoiseVariance(p)
		if err != nil {
			return nil, err
		}
		return posterior(m.Kernel(), noise, p, xq, trainX, trainY, opts)
	default:
		return nil, fmt.Errorf("%w: unsupported model %T", gperr.ErrInvalidArgument, m)
	}
}

func prior(k kern.Kernel, p params.Set, xq mat.Matrix) (*Normal, error) {
	cov, err := kern.SymGram(k, p, xq)
	if err != nil {
		return nil, err
	}
	return NewNormal(mat.NewVecDense(cov.SymmetricDim(), nil), cov)
}

func posterior(k kern.Kernel, noise float64, p params.Set, xq, trainX mat.Matrix,
	trainY mat.Vector, opts []chol.Option) (*Normal, error) {
	nTrain, dTrain := trainX.Dims()
	nQuery, dQuery := xq.Dims()
	if dTrain != dQuery {
		return nil, fmt.Errorf("%w: training points have dimension %d, query points %d",
			gperr.ErrShape, dTrain, dQuery)
	}
	if trainY.Len() != nTrain {
		return nil, fmt.Errorf("%w: %d training inputs but %d targets",
			gperr.ErrShape, nTrain, trainY.Len())
	}
	chol.Gather(opts...).Logger().Debug("conditioning on training data",
		zap.Int("train", nTrain),
		zap.Int("query", nQuery),
		zap.Float64("obs_noise", noise),
	)

	kxx, err := kern.SymGram(k, p, trainX)
	if err != nil {
		return nil, err
	}
	var noiseI mat.SymDense
	noiseI.ScaleSym(noise, utils.Eye(nTrain))
	kxx.AddSym(kxx, &noiseI)
	kxq, err := kern.Gram(k, p, trainX, xq)
	if err != nil {
		return nil, err
	}
	kqq, err := kern.SymGram(k, p, xq)
	if err != nil {
		return nil, err
	}

	l, err := chol.Factorize(kxx, opts...)
	if err != nil {
		return nil, err
	}
	// v = L \ K*, a = L \ y, so that v^T a = K*^T K^-1 y.
	v, err := chol.SolveLower(l, kxq)
	if err != nil {
		return nil, err
	}
	a, err := chol.SolveLowerVec(l, trainY)
	if err != nil {
		return nil, err
	}

	mean := mat.NewVecDense(nQuery, nil)
	mean.MulVec(v.T(), a)
	// cov = K** - v^T v. The rank-k update (Syrk) writes one triangle, so
	// the result is exactly symmetric.
	var vtv mat.SymDense
	vtv.SymOuterK(-1, v.T())
	cov := mat.NewSymDense(nQuery, nil)
	cov.AddSym(kqq, &vtv)
	return NewNormal(mean, cov)
}

// absent reports whether an optional matrix or vector argument was left
// out, including typed nil pointers.
func absent(a interface{}) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
