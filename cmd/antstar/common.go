package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gonuts/flag"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/antstar/config"
	"github.com/katalvlaran/antstar/metrics"
	"github.com/katalvlaran/antstar/tsp"
	"github.com/katalvlaran/antstar/tsplib"
)

var errNoInput = errors.New("exactly one of -in or -random is required")

// commonFlags are registered on every subcommand.
type commonFlags struct {
	configPath  string
	input       string
	random      int
	randomSeed  int64
	mode        string
	timeLimit   time.Duration
	seed        int64
	polish      bool
	progress    bool
	logLevel    string
	metricsAddr string
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&f.input, "in", "", "TSPLIB instance (NODE_COORD_SECTION, EUC_2D)")
	fs.IntVar(&f.random, "random", 0, "generate this many random cities in [0,1000)² instead of -in")
	fs.Int64Var(&f.randomSeed, "random-seed", 1, "seed for -random")
	fs.StringVar(&f.mode, "mode", "mst", "heuristic: mst, aco or hybrid")
	fs.DurationVar(&f.timeLimit, "time", tsp.DefaultTimeLimit, "search budget")
	fs.Int64Var(&f.seed, "seed", 0, "colony seed; 0 uses the default stream")
	fs.BoolVar(&f.polish, "polish", false, "run 2-opt on the returned tour")
	fs.BoolVar(&f.progress, "progress", false, "log a progress line every second")
	fs.StringVar(&f.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on host:port while running")
}

// load merges defaults, -config, the environment and explicitly set flags.
func (f *commonFlags) load(fs *flag.FlagSet) (*config.Config, error) {
	var (
		cfg = config.Default()
		err error
	)
	if f.configPath != "" {
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	} else if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "mode":
			cfg.Mode = f.mode
		case "time":
			cfg.Search.TimeLimit = f.timeLimit
		case "seed":
			cfg.Search.Seed = f.seed
		case "polish":
			cfg.Search.Polish = f.polish
		case "log-level":
			cfg.Log.Level = f.logLevel
		case "metrics-addr":
			cfg.Metrics.Addr = f.metricsAddr
		}
	})
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// cities returns the instance named by -in or generated by -random.
func (f *commonFlags) cities() (string, []tsp.City, error) {
	switch {
	case (f.input == "") == (f.random <= 0):
		return "", nil, errNoInput
	case f.input != "":
		inst, err := tsplib.ReadFile(f.input)
		if err != nil {
			return "", nil, err
		}
		name := inst.Name
		if name == "" {
			name = f.input
		}

		return name, inst.Cities, nil
	default:
		return fmt.Sprintf("random-%d", f.random), randomCities(f.random, f.randomSeed), nil
	}
}

func randomCities(n int, seed int64) []tsp.City {
	r := rand.New(rand.NewSource(seed))
	out := make([]tsp.City, n)
	for i := range out {
		out[i] = tsp.City{X: r.Float64() * 1000, Y: r.Float64() * 1000}
	}

	return out
}

// newLogger builds the process logger. Logs go to stderr so stdout carries
// only results.
func newLogger(c config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = c.Format
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if c.Format == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	return zc.Build()
}

// setup returns the logger and solver options for one command run. stop
// flushes the logger and shuts the metrics endpoint down.
func (f *commonFlags) setup(fs *flag.FlagSet) (cfg *config.Config, opts tsp.Options, log *zap.Logger, stop func(), err error) {
	if cfg, err = f.load(fs); err != nil {
		return nil, tsp.Options{}, nil, nil, err
	}
	if log, err = newLogger(cfg.Log); err != nil {
		return nil, tsp.Options{}, nil, nil, err
	}
	if opts, err = cfg.Options(); err != nil {
		return nil, tsp.Options{}, nil, nil, err
	}
	opts.Logger = log
	if f.progress {
		opts.Progress = func(p tsp.Progress) {
			log.Info("progress",
				zap.Stringer("mode", p.Mode),
				zap.Int("nodes_explored", p.NodesExplored),
				zap.Float64("best_cost", p.BestCost),
				zap.Int("open_set", p.OpenSet),
				zap.Bool("final", p.Final))
		}
	}

	stopMetrics := func() {}
	if cfg.Metrics.Addr != "" {
		var c *metrics.Collector
		if c, stopMetrics, err = serveMetrics(cfg.Metrics.Addr, log); err != nil {
			return nil, tsp.Options{}, nil, nil, err
		}
		opts.Observer = c
	}

	stop = func() {
		stopMetrics()
		_ = log.Sync()
	}

	return cfg, opts, log, stop, nil
}

// serveMetrics exposes a fresh registry on addr until the returned stop runs.
func serveMetrics(addr string, log *zap.Logger) (*metrics.Collector, func(), error) {
	reg := prometheus.NewRegistry()
	c, err := metrics.NewCollector(reg)
	if err != nil {
		return nil, nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server failed", zap.Error(err))
		}
	}()
	log.Info("serving metrics", zap.String("addr", addr))

	return c, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
