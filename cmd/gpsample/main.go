// Command gpsample draws samples from an RBF Gaussian process, optionally
// conditioned on noisy observations of sin(x) over [-1, 1], and writes them
// as CSV with one draw per row.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/lucasmaystre/gogp/chol"
	"github.com/lucasmaystre/gogp/config"
	"github.com/lucasmaystre/gogp/gp"
	"github.com/lucasmaystre/gogp/kern"
	"github.com/lucasmaystre/gogp/lik"
	"github.com/lucasmaystre/gogp/params"
	"github.com/lucasmaystre/gogp/sampling"
	"github.com/lucasmaystre/gogp/utils"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/mat"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults when empty)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error("sampling failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger, w io.Writer) error {
	d := cfg.Demo
	prior := gp.NewPrior(kern.NewRBF())
	var model gp.Model = prior
	p := params.New(map[string]float64{
		"lengthscale": d.Lengthscale,
		"variance":    *d.Variance,
	})
	xq := utils.Column(utils.Linspace(-1, 1, d.Query))

	var trainX *mat.Dense
	var trainY *mat.VecDense
	if d.Train > 0 {
		model = prior.Mul(lik.NewGaussian())
		p = p.With("obs_noise", *d.Noise)
		xs := utils.Linspace(-1, 1, d.Train)
		trainX = utils.Column(xs)
		trainY = mat.NewVecDense(d.Train, nil)
		for i, x := range xs {
			trainY.SetVec(i, math.Sin(x))
		}
	}

	opts := append(cfg.CholOptions(), chol.WithLogger(logger))
	samples, err := sampling.SampleModel(d.Seed, model, p, xq, trainX, trainY, d.Samples, opts...)
	if err != nil {
		return err
	}
	logger.Info("drew samples",
		zap.Int("samples", d.Samples),
		zap.Int("query", d.Query),
		zap.Int("train", d.Train),
		zap.Uint64("seed", d.Seed),
	)
	return writeCSV(w, samples)
}

func writeCSV(w io.Writer, samples *mat.Dense) error {
	cw := csv.NewWriter(w)
	r, c := samples.Dims()
	record := make([]string, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			record[j] = strconv.FormatFloat(samples.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
