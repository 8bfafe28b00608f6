package kern

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/lucasmaystre/gogp/gperr"
	"github.com/lucasmaystre/gogp/params"
	"gonum.org/v1/gonum/mat"
)

// Blocks with at least this many entries are filled by a pool of workers,
// one row at a time.
const parallelThreshold = 1 << 12

// Gram returns the (m, n) matrix of k evaluated between every row of a and
// every row of b.
func Gram(k Kernel, p params.Set, a, b mat.Matrix) (*mat.Dense, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != cb {
		return nil, fmt.Errorf("%w: gram between %d-dimensional and %d-dimensional points",
			gperr.ErrShape, ca, cb)
	}
	if ra == 0 || rb == 0 || ca == 0 {
		return nil, fmt.Errorf("%w: empty point set", gperr.ErrShape)
	}
	f, err := bind(k, p)
	if err != nil {
		return nil, err
	}
	xs, ys := rows(a), rows(b)
	out := mat.NewDense(ra, rb, nil)
	eachRow(ra, ra*rb, func(i int) {
		row := out.RawRowView(i)
		for j, y := range ys {
			row[j] = f(xs[i], y)
		}
	})
	return out, nil
}

// SymGram returns the Gram matrix of k over the rows of a. Only the upper
// triangle is evaluated, so the result is exactly symmetric.
func SymGram(k Kernel, p params.Set, a mat.Matrix) (*mat.SymDense, error) {
	n, c := a.Dims()
	if n == 0 || c == 0 {
		return nil, fmt.Errorf("%w: empty point set", gperr.ErrShape)
	}
	f, err := bind(k, p)
	if err != nil {
		return nil, err
	}
	xs := rows(a)
	out := mat.NewSymDense(n, nil)
	raw := out.RawSymmetric()
	eachRow(n, n*(n+1)/2, func(i int) {
		row := raw.Data[i*raw.Stride : i*raw.Stride+n]
		for j := i; j < n; j++ {
			row[j] = f(xs[i], xs[j])
		}
	})
	return out, nil
}

func bind(k Kernel, p params.Set) (Func, error) {
	if err := p.Require(k.Params()...); err != nil {
		return nil, err
	}
	return k.Bind(p)
}

func rows(a mat.Matrix) [][]float64 {
	r, _ := a.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, a)
	}
	return out
}

// eachRow calls fn for every row index in [0, n). Rows are independent, so
// large blocks are spread over GOMAXPROCS workers.
func eachRow(n, size int, fn func(i int)) {
	nWorkers := runtime.GOMAXPROCS(0)
	if size < parallelThreshold || nWorkers < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	rowChan := make(chan int, n)
	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rowChan {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		rowChan <- i
	}
	close(rowChan)
	wg.Wait()
}
