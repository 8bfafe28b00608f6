package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmaystre/gogp/chol"
	"github.com/lucasmaystre/gogp/config"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	require.NotNil(t, c.Chol.Jitter)
	assert.Equal(t, chol.DefaultJitter, *c.Chol.Jitter)
	require.NotNil(t, c.Demo.Variance)
	assert.Equal(t, 1.0, *c.Demo.Variance)
	assert.Equal(t, chol.DefaultRetryFactor, c.Chol.RetryFactor)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, uint64(123), c.Demo.Seed)
	require.NotNil(t, c.Demo.Noise)
	assert.Equal(t, 1.0, *c.Demo.Noise)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gogp.yaml")
	data := []byte(`
chol:
  jitter: 1.0e-8
  retry_factor: 100
log:
  level: debug
demo:
  seed: 7
  samples: 3
  train: 5
  obs_noise: 0
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1e-8, *c.Chol.Jitter)
	assert.Equal(t, 100.0, c.Chol.RetryFactor)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, uint64(7), c.Demo.Seed)
	assert.Equal(t, 3, c.Demo.Samples)
	assert.Equal(t, 5, c.Demo.Train)
	assert.Equal(t, 10, c.Demo.Query, "unset fields take defaults")
	assert.Equal(t, 0.0, *c.Demo.Noise, "explicit zero noise is kept")

	o := chol.Gather(c.CholOptions()...)
	assert.Equal(t, 1e-8, o.Jitter())
	assert.Equal(t, 100.0, o.RetryFactor())
}

func TestNoRetry(t *testing.T) {
	c, err := config.Parse([]byte("chol:\n  no_retry: true\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, chol.Gather(c.CholOptions()...).RetryFactor())
}

func TestInvalid(t *testing.T) {
	tests := map[string]string{
		"level":        "log:\n  level: loud\n",
		"jitter":       "chol:\n  jitter: -1\n",
		"retry":        "chol:\n  retry_factor: 0.5\n",
		"samples":      "demo:\n  samples: -2\n",
		"lengthscale":  "demo:\n  lengthscale: -1\n",
		"noise":        "demo:\n  obs_noise: -0.1\n",
		"syntax error": "chol: [",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(data))
			require.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestExplicitZeros(t *testing.T) {
	c, err := config.Parse([]byte("chol:\n  jitter: 0\ndemo:\n  variance: 0\n  obs_noise: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, *c.Chol.Jitter, "explicit zero jitter is kept")
	assert.Equal(t, 0.0, *c.Demo.Variance, "explicit zero variance is kept")
	assert.Equal(t, 0.0, *c.Demo.Noise)
	assert.Equal(t, 0.0, chol.Gather(c.CholOptions()...).Jitter())
}
