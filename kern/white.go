package kern

import (
	"github.com/lucasmaystre/gogp/params"
	"gonum.org/v1/gonum/floats"
)

var (
	white *White
	_     Kernel = white
)

// White noise: variance when x and y are the same point, zero otherwise.
type White struct{}

func NewWhite() *White {
	return &White{}
}

func (k *White) Params() []string {
	return []string{"variance"}
}

func (k *White) Bind(p params.Set) (Func, error) {
	variance, err := positive(p, "variance", true)
	if err != nil {
		return nil, err
	}
	return func(x, y []float64) float64 {
		if floats.Equal(x, y) {
			return variance
		}
		return 0
	}, nil
}
