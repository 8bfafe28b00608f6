package kern

import (
	"sort"

	"github.com/lucasmaystre/gogp/params"
)

var (
	add     *Add
	_       Kernel = add
	product *Product
	_       Kernel = product
)

// Add is the sum of its parts. Parts read from the same parameter set; wrap
// them with Scope to give each its own hyperparameters.
type Add struct {
	parts []Kernel
}

func NewAdd(first, second Kernel, rest ...Kernel) *Add {
	parts := make([]Kernel, 0, 2+len(rest))
	for _, k := range append([]Kernel{first, second}, rest...) {
		switch k := k.(type) {
		case *Add:
			parts = append(parts, k.parts...)
		default:
			parts = append(parts, k)
		}
	}
	return &Add{parts: parts}
}

func (k *Add) Params() []string {
	return union(k.parts)
}

func (k *Add) Bind(p params.Set) (Func, error) {
	fs, err := bindAll(k.parts, p)
	if err != nil {
		return nil, err
	}
	return func(x, y []float64) float64 {
		val := 0.0
		for _, f := range fs {
			val += f(x, y)
		}
		return val
	}, nil
}

// Product is the elementwise product of its parts.
type Product struct {
	parts []Kernel
}

func NewProduct(first, second Kernel, rest ...Kernel) *Product {
	parts := make([]Kernel, 0, 2+len(rest))
	for _, k := range append([]Kernel{first, second}, rest...) {
		switch k := k.(type) {
		case *Product:
			parts = append(parts, k.parts...)
		default:
			parts = append(parts, k)
		}
	}
	return &Product{parts: parts}
}

func (k *Product) Params() []string {
	return union(k.parts)
}

func (k *Product) Bind(p params.Set) (Func, error) {
	fs, err := bindAll(k.parts, p)
	if err != nil {
		return nil, err
	}
	return func(x, y []float64) float64 {
		val := 1.0
		for _, f := range fs {
			val *= f(x, y)
		}
		return val
	}, nil
}

func bindAll(parts []Kernel, p params.Set) ([]Func, error) {
	fs := make([]Func, len(parts))
	for i, part := range parts {
		f, err := part.Bind(p)
		if err != nil {
			return nil, err
		}
		fs[i] = f
	}
	return fs, nil
}

// Sorted union of the parameter names of parts.
func union(parts []Kernel) []string {
	seen := make(map[string]bool)
	var names []string
	for _, part := range parts {
		for _, name := range part.Params() {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
