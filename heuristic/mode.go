package heuristic

import (
	"errors"
	"strings"
)

// ErrUnknownMode indicates a mode name or value outside MST/ACO/Hybrid.
var ErrUnknownMode = errors.New("heuristic: unknown mode")

// Mode selects the heuristic strategy.
type Mode uint8

const (
	// ModeMST uses the spanning-tree lower bound.
	ModeMST Mode = iota
	// ModeACO uses the ant-colony completion estimate.
	ModeACO
	// ModeHybrid blends both with adaptive weights.
	ModeHybrid
)

// Modes lists every supported mode in declaration order.
var Modes = []Mode{ModeMST, ModeACO, ModeHybrid}

// String returns "mst", "aco", "hybrid" or "unknown".
func (m Mode) String() string {
	switch m {
	case ModeMST:
		return "mst"
	case ModeACO:
		return "aco"
	case ModeHybrid:
		return "hybrid"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool { return m <= ModeHybrid }

// UsesColony reports whether the mode needs an aco.Colony.
func (m Mode) UsesColony() bool { return m == ModeACO || m == ModeHybrid }

// ParseMode maps a case-insensitive name ("mst", "aco", "hybrid") to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mst":
		return ModeMST, nil
	case "aco":
		return ModeACO, nil
	case "hybrid", "aco+mst", "mst+aco":
		return ModeHybrid, nil
	default:
		return 0, ErrUnknownMode
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, ErrUnknownMode
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}
