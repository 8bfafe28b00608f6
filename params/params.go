// Package params implements immutable parameter sets.
//
// A Set maps parameter names to values. It is never modified after
// construction: With, Merge and Sub all return new sets.
package params

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasmaystre/gogp/gperr"
)

// Defaults used by Initialise for well-known names.
var Defaults = map[string]float64{
	"lengthscale": 1.0,
	"variance":    1.0,
	"period":      1.0,
	"obs_noise":   1.0,
}

type Set struct {
	values map[string]float64
}

// New returns a set holding a copy of values.
func New(values map[string]float64) Set {
	cp := make(map[string]float64, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return Set{values: cp}
}

// Initialise returns a set with a default value for each name. Scoped
// names ("rbf.lengthscale") fall back to the default of their last segment;
// unknown names start at 1.
func Initialise(names ...string) Set {
	values := make(map[string]float64, len(names))
	for _, name := range names {
		base := name
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			base = name[i+1:]
		}
		if v, ok := Defaults[base]; ok {
			values[name] = v
		} else {
			values[name] = 1.0
		}
	}
	return Set{values: values}
}

func (s Set) Len() int {
	return len(s.values)
}

// Get returns the value of name, or an error wrapping
// gperr.ErrMissingParameter.
func (s Set) Get(name string) (float64, error) {
	v, ok := s.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", gperr.ErrMissingParameter, name)
	}
	return v, nil
}

// Require checks that every name is present. The error lists all the
// missing names at once.
func (s Set) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := s.values[name]; !ok {
			missing = append(missing, fmt.Sprintf("%q", name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", gperr.ErrMissingParameter, strings.Join(missing, ", "))
	}
	return nil
}

// With returns a copy of s where name is set to v.
func (s Set) With(name string, v float64) Set {
	out := New(s.values)
	out.values[name] = v
	return out
}

// Merge returns a copy of s overlaid with the values of o.
func (s Set) Merge(o Set) Set {
	out := New(s.values)
	for k, v := range o.values {
		out.values[k] = v
	}
	return out
}

// Sub returns the parameters under prefix, with "prefix." stripped.
func (s Set) Sub(prefix string) Set {
	p := prefix + "."
	out := Set{values: make(map[string]float64)}
	for k, v := range s.values {
		if strings.HasPrefix(k, p) {
			out.values[strings.TrimPrefix(k, p)] = v
		}
	}
	return out
}

// Names returns the parameter names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.values))
	for k := range s.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
