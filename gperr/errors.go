// Package gperr holds the sentinel errors shared by the gogp packages.
//
// Errors are detected next to the violated precondition and returned
// unmodified, optionally wrapped with fmt.Errorf("...: %w", ErrX) to add
// context. Callers match them with errors.Is.
package gperr

import "errors"

var (
	// ErrShape signals an input dimensionality mismatch: point sets with
	// different column counts, or training inputs and targets with different
	// row counts.
	ErrShape = errors.New("gp: shape mismatch")

	// ErrMissingArgument signals that only one of the training inputs and
	// targets was supplied.
	ErrMissingArgument = errors.New("gp: missing argument")

	// ErrMissingParameter signals that a parameter required by a kernel or
	// likelihood is absent from the parameter set.
	ErrMissingParameter = errors.New("gp: missing parameter")

	// ErrNumericalInstability signals that a covariance could not be
	// factorized even after the jitter retry, or that a computation produced
	// NaN or Inf.
	ErrNumericalInstability = errors.New("gp: numerical instability")

	// ErrNoLikelihood signals that training data was given to a prior, which
	// has no observation model to condition with.
	ErrNoLikelihood = errors.New("gp: model has no likelihood")

	// ErrInvalidArgument signals an out-of-domain value, e.g. a negative
	// lengthscale or a non-positive sample count.
	ErrInvalidArgument = errors.New("gp: invalid argument")
)
