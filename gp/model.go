// Package gp builds the Gaussian random variable of a GP model over a set of
// query points: the prior, or the posterior predictive given training data.
package gp

import (
	"sort"

	"github.com/lucasmaystre/gogp/kern"
	"github.com/lucasmaystre/gogp/lik"
)

// Model is either a *Prior or a *Posterior.
type Model interface {
	Kernel() kern.Kernel

	// Names of every parameter the model reads.
	Params() []string

	isModel()
}

var (
	_ Model = (*Prior)(nil)
	_ Model = (*Posterior)(nil)
)

// Prior is a zero-mean GP with the given covariance function.
type Prior struct {
	kernel kern.Kernel
}

func NewPrior(kernel kern.Kernel) *Prior {
	return &Prior{kernel: kernel}
}

func (p *Prior) Kernel() kern.Kernel {
	return p.kernel
}

func (p *Prior) Params() []string {
	return sorted(p.kernel.Params())
}

// Mul combines the prior with an observation model. Neither operand is
// modified.
func (p *Prior) Mul(l lik.Likelihood) *Posterior {
	return &Posterior{
		prior:      &Prior{kernel: p.kernel},
		likelihood: l,
	}
}

func (p *Prior) isModel() {}

// Posterior is a prior paired with a likelihood. Training data is supplied
// per call.
type Posterior struct {
	prior      *Prior
	likelihood lik.Likelihood
}

func (p *Posterior) Prior() *Prior {
	return p.prior
}

func (p *Posterior) Kernel() kern.Kernel {
	return p.prior.kernel
}

func (p *Posterior) Likelihood() lik.Likelihood {
	return p.likelihood
}

func (p *Posterior) Params() []string {
	return sorted(append(p.prior.kernel.Params(), p.likelihood.Params()...))
}

func (p *Posterior) isModel() {}

func sorted(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
