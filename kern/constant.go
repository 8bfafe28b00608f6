package kern

import (
	"github.com/lucasmaystre/gogp/params"
)

var (
	constant *Constant
	_        Kernel = constant // Check that Constant respects the Kernel interface.
)

// Constant covariance k(x, y) = variance.
type Constant struct{}

func NewConstant() *Constant {
	return &Constant{}
}

func (k *Constant) Params() []string {
	return []string{"variance"}
}

func (k *Constant) Bind(p params.Set) (Func, error) {
	variance, err := positive(p, "variance", true)
	if err != nil {
		return nil, err
	}
	return func(x, y []float64) float64 {
		return variance
	}, nil
}
