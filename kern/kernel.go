package kern

import (
	"fmt"
	"math"

	"github.com/lucasmaystre/gogp/gperr"
	"github.com/lucasmaystre/gogp/params"
)

// Func is a covariance function with its parameters already resolved.
type Func func(x, y []float64) float64

type Kernel interface {
	// Names of the parameters the kernel reads.
	Params() []string

	// Covariance function for the values held in p. Fails if a parameter
	// is missing or out of its domain.
	Bind(p params.Set) (Func, error)
}

// Eval evaluates k at a single pair of inputs.
func Eval(k Kernel, x, y []float64, p params.Set) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: inputs of dimension %d and %d", gperr.ErrShape, len(x), len(y))
	}
	f, err := k.Bind(p)
	if err != nil {
		return 0, err
	}
	return f(x, y), nil
}

// Stationary kernels read a signal variance and a lengthscale.
func stationary(p params.Set) (variance, lscale float64, err error) {
	if variance, err = positive(p, "variance", true); err != nil {
		return
	}
	lscale, err = positive(p, "lengthscale", false)
	return
}

// positive looks up name and checks that it is > 0, or >= 0 when zero is
// allowed.
func positive(p params.Set, name string, zeroOK bool) (float64, error) {
	v, err := p.Get(name)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || v < 0 || (v == 0 && !zeroOK) {
		return 0, fmt.Errorf("%w: %s = %v", gperr.ErrInvalidArgument, name, v)
	}
	return v, nil
}
