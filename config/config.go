package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antstar/aco"
	"github.com/katalvlaran/antstar/tsp"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full run configuration.
type Config struct {
	Mode    string  `yaml:"mode" validate:"oneof=mst aco hybrid"`
	Search  Search  `yaml:"search"`
	Colony  *Colony `yaml:"colony"`
	Hybrid  Hybrid  `yaml:"hybrid"`
	Cache   Cache   `yaml:"cache"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Search holds the A* knobs shared by every mode.
type Search struct {
	TimeLimit        time.Duration `yaml:"time_limit" validate:"gte=0"`
	Unlimited        bool          `yaml:"unlimited"`
	Slack            float64       `yaml:"slack" validate:"omitempty,gte=1"`
	Eps              float64       `yaml:"eps" validate:"gte=0"`
	Seed             int64         `yaml:"seed"`
	Polish           bool          `yaml:"polish"`
	TwoOptMaxIters   int           `yaml:"two_opt_max_iters" validate:"gte=0"`
	MSTMethod        string        `yaml:"mst_method" validate:"omitempty,oneof=kruskal prim"`
	ProgressInterval time.Duration `yaml:"progress_interval" validate:"gte=0"`
}

// Colony overrides the ant colony tuning of the ACO and hybrid modes.
type Colony struct {
	Ants        int     `yaml:"ants" validate:"min=1"`
	Evaporation float64 `yaml:"evaporation" validate:"min=0,max=1"`
	Alpha       float64 `yaml:"alpha" validate:"min=0"`
	Beta        float64 `yaml:"beta" validate:"min=0"`
	Deposit     float64 `yaml:"deposit" validate:"omitempty,gt=0"`
}

// Hybrid overrides the weight adaptation of the hybrid mode.
type Hybrid struct {
	WeightMST  float64 `yaml:"weight_mst" validate:"omitempty,gt=0,lt=1"`
	AdaptEvery int     `yaml:"adapt_every" validate:"gte=0"`
	AdaptStep  float64 `yaml:"adapt_step" validate:"omitempty,gt=0,lt=1"`
	WeightMin  float64 `yaml:"weight_min" validate:"omitempty,gt=0,lt=1"`
	WeightMax  float64 `yaml:"weight_max" validate:"omitempty,gt=0,lt=1"`
}

// Cache overrides the heuristic cache policy. nil keeps the mode default.
type Cache struct {
	ClearEvery *int `yaml:"clear_every" validate:"omitempty,gte=0"`
	MaxEntries *int `yaml:"max_entries" validate:"omitempty,gte=0"`
}

// Log configures the CLI logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Metrics configures the Prometheus endpoint. An empty Addr disables it.
type Metrics struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Mode: tsp.ModeMST.String(),
		Search: Search{
			TimeLimit:        tsp.DefaultTimeLimit,
			Eps:              tsp.DefaultEps,
			ProgressInterval: tsp.DefaultProgressInterval,
		},
		Log: Log{Level: "info", Format: "console"},
	}
}

// Load reads path over Default, applies the environment and validates.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = cfg.decode(raw); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decode(raw []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// ApplyEnv overlays ANTSTAR_MODE, ANTSTAR_TIME_LIMIT, ANTSTAR_SEED,
// ANTSTAR_POLISH, ANTSTAR_LOG_LEVEL and ANTSTAR_METRICS_ADDR. lookup is
// usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("ANTSTAR_MODE"); ok && v != "" {
		c.Mode = strings.ToLower(v)
	}
	if v, ok := lookup("ANTSTAR_TIME_LIMIT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: ANTSTAR_TIME_LIMIT: %v", ErrInvalid, err)
		}
		c.Search.TimeLimit = d
	}
	if v, ok := lookup("ANTSTAR_SEED"); ok && v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: ANTSTAR_SEED: %v", ErrInvalid, err)
		}
		c.Search.Seed = s
	}
	if v, ok := lookup("ANTSTAR_POLISH"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: ANTSTAR_POLISH: %v", ErrInvalid, err)
		}
		c.Search.Polish = b
	}
	if v, ok := lookup("ANTSTAR_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup("ANTSTAR_METRICS_ADDR"); ok {
		c.Metrics.Addr = v
	}

	return nil
}

// Validate checks the struct tags and the cross-field weight bounds.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, formatValidationError(err))
	}
	h := c.Hybrid
	if h.WeightMin != 0 && h.WeightMax != 0 && h.WeightMin > h.WeightMax {
		return fmt.Errorf("%w: hybrid.weight_min must not exceed hybrid.weight_max", ErrInvalid)
	}

	return nil
}

// Options converts c into solver options for its mode.
func (c *Config) Options() (tsp.Options, error) {
	mode, err := tsp.ParseMode(c.Mode)
	if err != nil {
		return tsp.Options{}, err
	}
	o := tsp.DefaultOptions(mode)

	s := c.Search
	o.TimeLimit = s.TimeLimit
	if s.Unlimited {
		o.TimeLimit = tsp.NoTimeLimit
	}
	if s.Slack != 0 {
		o.Slack = s.Slack
	}
	o.Eps = s.Eps
	o.Seed = s.Seed
	o.Polish = s.Polish
	o.TwoOptMaxIters = s.TwoOptMaxIters
	if s.MSTMethod != "" {
		o.MSTMethod = s.MSTMethod
	}
	if s.ProgressInterval != 0 {
		o.ProgressInterval = s.ProgressInterval
	}

	if c.Colony != nil {
		o.Colony = c.Colony.config()
	}

	h := c.Hybrid
	if h.WeightMST != 0 {
		o.WeightMST = h.WeightMST
	}
	if h.AdaptEvery != 0 {
		o.AdaptEvery = h.AdaptEvery
	}
	if h.AdaptStep != 0 {
		o.AdaptStep = h.AdaptStep
	}
	if h.WeightMin != 0 {
		o.WeightMin = h.WeightMin
	}
	if h.WeightMax != 0 {
		o.WeightMax = h.WeightMax
	}

	if c.Cache.ClearEvery != nil {
		o.CacheClearEvery = *c.Cache.ClearEvery
	}
	if c.Cache.MaxEntries != nil {
		o.CacheMaxEntries = *c.Cache.MaxEntries
	}

	return o, nil
}

func (c *Colony) config() aco.Config {
	cfg := aco.Config{
		Ants:        c.Ants,
		Evaporation: c.Evaporation,
		Alpha:       c.Alpha,
		Beta:        c.Beta,
		Deposit:     c.Deposit,
	}
	if cfg.Deposit == 0 {
		cfg.Deposit = 1
	}

	return cfg
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Namespace())
		switch e.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		case "min", "gte", "gt", "max", "lte", "lt":
			msgs = append(msgs, fmt.Sprintf("%s must be %s %s", field, e.Tag(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}

	return strings.Join(msgs, "; ")
}
