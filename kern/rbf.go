package kern

import (
	"math"

	"github.com/lucasmaystre/gogp/params"
	"gonum.org/v1/gonum/floats"
)

var (
	rbf *RBF
	_   Kernel = rbf
)

// RBF is the squared-exponential kernel,
// variance * exp(-|x - y|^2 / (2 * lengthscale^2)).
type RBF struct{}

func NewRBF() *RBF {
	return &RBF{}
}

func (k *RBF) Params() []string {
	return []string{"lengthscale", "variance"}
}

func (k *RBF) Bind(p params.Set) (Func, error) {
	variance, lscale, err := stationary(p)
	if err != nil {
		return nil, err
	}
	scale := -0.5 / (lscale * lscale)
	return func(x, y []float64) float64 {
		r := floats.Distance(x, y, 2)
		return variance * math.Exp(scale*r*r)
	}, nil
}
