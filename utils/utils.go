package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Identity matrix.
func Eye(n int) *mat.DiagDense {
	data := make([]float64, n)
	for i := range data {
		data[i] = 1
	}
	return mat.NewDiagDense(n, data)
}

// Mean absolute value of the diagonal of a square matrix.
func MeanDiag(a mat.Matrix) float64 {
	n, _ := a.Dims()
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += math.Abs(a.At(i, i))
	}
	return sum / float64(n)
}

// Evenly spaced points over [lo, hi], both ends included.
func Linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[0] = lo
		return out
	}
	return floats.Span(out, lo, hi)
}

// Column vector of shape (len(xs), 1), i.e. a set of 1-D points.
func Column(xs []float64) *mat.Dense {
	return mat.NewDense(len(xs), 1, append([]float64(nil), xs...))
}

// Symmetric part (a + a^T) / 2 of a square matrix.
func Symmetrize(a mat.Matrix) *mat.SymDense {
	n, _ := a.Dims()
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.SetSym(i, j, 0.5*(a.At(i, j)+a.At(j, i)))
		}
	}
	return out
}

// Whether every entry of a is finite.
func IsFinite(a mat.Matrix) bool {
	r, c := a.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
