package kern

import (
	"math"

	"github.com/lucasmaystre/gogp/params"
	"gonum.org/v1/gonum/floats"
)

var (
	periodic *Periodic
	_        Kernel = periodic
)

// Periodic covariance
// variance * exp(-2 sin^2(pi * r / period) / lengthscale^2).
type Periodic struct{}

func NewPeriodic() *Periodic {
	return &Periodic{}
}

func (k *Periodic) Params() []string {
	return []string{"lengthscale", "period", "variance"}
}

func (k *Periodic) Bind(p params.Set) (Func, error) {
	variance, lscale, err := stationary(p)
	if err != nil {
		return nil, err
	}
	period, err := positive(p, "period", false)
	if err != nil {
		return nil, err
	}
	return func(x, y []float64) float64 {
		s := math.Sin(math.Pi * floats.Distance(x, y, 2) / period)
		return variance * math.Exp(-2*s*s/(lscale*lscale))
	}, nil
}
