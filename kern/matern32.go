package kern

import (
	"math"

	"github.com/lucasmaystre/gogp/params"
	"gonum.org/v1/gonum/floats"
)

var (
	matern32 *Matern32
	_        Kernel = matern32 // Check that Matern32 respects the Kernel interface.
)

type Matern32 struct{}

func NewMatern32() *Matern32 {
	return &Matern32{}
}

func (k *Matern32) Params() []string {
	return []string{"lengthscale", "variance"}
}

func (k *Matern32) Bind(p params.Set) (Func, error) {
	variance, lscale, err := stationary(p)
	if err != nil {
		return nil, err
	}
	lambda := math.Sqrt(3) / lscale
	return func(x, y []float64) float64 {
		d := lambda * floats.Distance(x, y, 2)
		return variance * (1 + d) * math.Exp(-d)
	}, nil
}
