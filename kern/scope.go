package kern

import (
	"github.com/lucasmaystre/gogp/params"
)

var (
	scoped *Scoped
	_      Kernel = scoped
)

// Scoped reads the parameters of the wrapped kernel under a name prefix, so
// that "variance" becomes "prefix.variance".
type Scoped struct {
	prefix string
	kernel Kernel
}

func Scope(prefix string, k Kernel) *Scoped {
	return &Scoped{prefix: prefix, kernel: k}
}

func (k *Scoped) Params() []string {
	inner := k.kernel.Params()
	names := make([]string, len(inner))
	for i, name := range inner {
		names[i] = k.prefix + "." + name
	}
	return names
}

func (k *Scoped) Bind(p params.Set) (Func, error) {
	if err := p.Require(k.Params()...); err != nil {
		return nil, err
	}
	return k.kernel.Bind(p.Sub(k.prefix))
}
