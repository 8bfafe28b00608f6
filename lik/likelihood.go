// Package lik defines observation models for GP regression.
package lik

import (
	"fmt"
	"math"

	"github.com/lucasmaystre/gogp/gperr"
	"github.com/lucasmaystre/gogp/params"
)

type Likelihood interface {
	// Names of the parameters the likelihood reads.
	Params() []string

	// Variance of the observation noise added to the latent function.
	NoiseVariance(p params.Set) (float64, error)
}

var (
	gaussian *Gaussian
	_        Likelihood = gaussian // Check that Gaussian respects the Likelihood interface.
)

// Gaussian observation noise y = f(x) + e, e ~ N(0, obs_noise).
type Gaussian struct{}

func NewGaussian() *Gaussian {
	return &Gaussian{}
}

func (l *Gaussian) Params() []string {
	return []string{"obs_noise"}
}

func (l *Gaussian) NoiseVariance(p params.Set) (float64, error) {
	v, err := p.Get("obs_noise")
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || v < 0 {
		return 0, fmt.Errorf("%w: obs_noise = %v", gperr.ErrInvalidArgument, v)
	}
	return v, nil
}
