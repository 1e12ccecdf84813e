package aco

import (
	"errors"
	"math"
)

var (
	// ErrInvalidConfig indicates a Config field outside its domain.
	ErrInvalidConfig = errors.New("aco: invalid config")

	// ErrNilMatrix indicates that New got no distance matrix.
	ErrNilMatrix = errors.New("aco: nil distance matrix")

	// ErrStartOutOfRange indicates a start city outside [0, n).
	ErrStartOutOfRange = errors.New("aco: start city out of range")

	// ErrInvalidIterations indicates Optimize was asked for fewer than one iteration.
	ErrInvalidIterations = errors.New("aco: iterations must be >= 1")
)

// Config holds the colony parameters.
//
//	Ants        number of ants per iteration (>= 1).
//	Evaporation ρ in [0, 1]; fraction of pheromone removed per iteration.
//	Alpha       pheromone exponent (>= 0).
//	Beta        desirability exponent (>= 0).
//	Deposit     Q > 0; an ant with path length L deposits Q/L per edge.
type Config struct {
	Ants        int     `yaml:"ants" validate:"min=1"`
	Evaporation float64 `yaml:"evaporation" validate:"min=0,max=1"`
	Alpha       float64 `yaml:"alpha" validate:"min=0"`
	Beta        float64 `yaml:"beta" validate:"min=0"`
	Deposit     float64 `yaml:"deposit" validate:"gt=0"`
}

// DefaultConfig is the estimator tuning used by the ACO search mode:
// 100 ants, ρ=0.2, α=1, β=3, Q=1.
func DefaultConfig() Config {
	return Config{Ants: 100, Evaporation: 0.2, Alpha: 1, Beta: 3, Deposit: 1}
}

// HybridConfig is the lighter estimator used when ACO is blended with MST:
// 10 ants, ρ=0.1, α=1, β=2, Q=1.
func HybridConfig() Config {
	return Config{Ants: 10, Evaporation: 0.1, Alpha: 1, Beta: 2, Deposit: 1}
}

// BaselineConfig is the tuning of the standalone optimizer:
// 10 ants, ρ=0.5, α=1, β=2, Q=1.
func BaselineConfig() Config {
	return Config{Ants: 10, Evaporation: 0.5, Alpha: 1, Beta: 2, Deposit: 1}
}

// Validate reports ErrInvalidConfig when any field is out of domain or not finite.
func (c Config) Validate() error {
	if c.Ants < 1 {
		return ErrInvalidConfig
	}
	if !finite(c.Evaporation) || c.Evaporation < 0 || c.Evaporation > 1 {
		return ErrInvalidConfig
	}
	if !finite(c.Alpha) || c.Alpha < 0 || !finite(c.Beta) || c.Beta < 0 {
		return ErrInvalidConfig
	}
	if !finite(c.Deposit) || c.Deposit <= 0 {
		return ErrInvalidConfig
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
