// Package config loads antstar run configuration.
//
// Sources, lowest priority first:
//
//  1. Default(): MST mode, 99s budget, info-level console logging.
//  2. A YAML file (Load). Unknown keys are rejected.
//  3. ANTSTAR_* environment variables (ApplyEnv).
//
// The merged Config is validated with go-playground/validator struct tags and
// converted to tsp.Options by Config.Options. Tuning fields left at their zero
// value (or nil for pointers) fall back to tsp.DefaultOptions for the chosen
// mode, so a file may set only what it changes.
package config
