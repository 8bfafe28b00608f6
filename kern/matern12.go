package kern

import (
	"math"

	"github.com/lucasmaystre/gogp/params"
	"gonum.org/v1/gonum/floats"
)

var (
	matern12 *Matern12
	_        Kernel = matern12 // Check that Matern12 respects the Kernel interface.
)

// Matern12 is the exponential kernel, variance * exp(-r / lengthscale).
type Matern12 struct{}

func NewMatern12() *Matern12 {
	return &Matern12{}
}

func (k *Matern12) Params() []string {
	return []string{"lengthscale", "variance"}
}

func (k *Matern12) Bind(p params.Set) (Func, error) {
	variance, lscale, err := stationary(p)
	if err != nil {
		return nil, err
	}
	return func(x, y []float64) float64 {
		r := floats.Distance(x, y, 2)
		return variance * math.Exp(-r/lscale)
	}, nil
}
