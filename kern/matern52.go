package kern

import (
	"math"

	"github.com/lucasmaystre/gogp/params"
	"gonum.org/v1/gonum/floats"
)

var (
	matern52 *Matern52
	_        Kernel = matern52 // Check that Matern52 respects the Kernel interface.
)

type Matern52 struct{}

func NewMatern52() *Matern52 {
	return &Matern52{}
}

func (k *Matern52) Params() []string {
	return []string{"lengthscale", "variance"}
}

func (k *Matern52) Bind(p params.Set) (Func, error) {
	variance, lscale, err := stationary(p)
	if err != nil {
		return nil, err
	}
	lambda := math.Sqrt(5) / lscale
	return func(x, y []float64) float64 {
		d := lambda * floats.Distance(x, y, 2)
		return variance * (1 + d + d*d/3) * math.Exp(-d)
	}, nil
}
