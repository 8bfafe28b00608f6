package kern

import (
	"github.com/lucasmaystre/gogp/params"
	"gonum.org/v1/gonum/floats"
)

var (
	linear *Linear
	_      Kernel = linear
)

// Linear covariance k(x, y) = variance * <x, y>.
type Linear struct{}

func NewLinear() *Linear {
	return &Linear{}
}

func (k *Linear) Params() []string {
	return []string{"variance"}
}

func (k *Linear) Bind(p params.Set) (Func, error) {
	variance, err := positive(p, "variance", true)
	if err != nil {
		return nil, err
	}
	return func(x, y []float64) float64 {
		return variance * floats.Dot(x, y)
	}, nil
}
