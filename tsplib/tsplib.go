// Package tsplib reads symmetric Euclidean TSP instances in the TSPLIB format.
//
// Supported subset:
//
//	NAME : berlin52
//	COMMENT : 52 locations in Berlin
//	TYPE : TSP
//	DIMENSION : 52
//	EDGE_WEIGHT_TYPE : EUC_2D
//	NODE_COORD_SECTION
//	1 565.0 575.0
//	...
//	EOF
//
// Header keys may use "KEY: value" or "KEY : value". Unknown header keys are
// ignored. Cities keep the order of the coordinate section, so the first
// listed node becomes city 0 (the tour start).
package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/antstar/tsp"
)

// Sentinel errors.
var (
	ErrNoCoordSection    = errors.New("tsplib: missing NODE_COORD_SECTION")
	ErrMalformedLine     = errors.New("tsplib: malformed line")
	ErrUnsupported       = errors.New("tsplib: unsupported instance type")
	ErrDimensionMismatch = errors.New("tsplib: DIMENSION does not match node count")
	ErrDuplicateNode     = errors.New("tsplib: duplicate node id")
)

// Instance is a parsed problem.
type Instance struct {
	Name      string
	Comment   string
	Dimension int // declared DIMENSION, or the node count when absent
	Cities    []tsp.City
}

// ReadFile opens path and parses it.
func ReadFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return inst, nil
}

// Parse reads one instance from r.
func Parse(r io.Reader) (*Instance, error) {
	var (
		inst     Instance
		declared = -1
		inCoords bool
		seen     = make(map[int]struct{})
		sc       = bufio.NewScanner(r)
		lineNo   int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		if inCoords {
			id, c, err := parseNode(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if _, dup := seen[id]; dup {
				return nil, fmt.Errorf("line %d: %w: %d", lineNo, ErrDuplicateNode, id)
			}
			seen[id] = struct{}{}
			inst.Cities = append(inst.Cities, c)
			continue
		}

		if strings.HasPrefix(line, "NODE_COORD_SECTION") {
			inCoords = true
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("line %d: %w: %q", lineNo, ErrMalformedLine, line)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch strings.ToUpper(key) {
		case "NAME":
			inst.Name = value
		case "COMMENT":
			if inst.Comment != "" {
				inst.Comment += "\n"
			}
			inst.Comment += value
		case "TYPE":
			if t := strings.ToUpper(value); t != "TSP" {
				return nil, fmt.Errorf("%w: TYPE %s", ErrUnsupported, value)
			}
		case "EDGE_WEIGHT_TYPE":
			if t := strings.ToUpper(value); t != "EUC_2D" {
				return nil, fmt.Errorf("%w: EDGE_WEIGHT_TYPE %s", ErrUnsupported, value)
			}
		case "DIMENSION":
			d, err := strconv.Atoi(value)
			if err != nil || d <= 0 {
				return nil, fmt.Errorf("line %d: %w: DIMENSION %q", lineNo, ErrMalformedLine, value)
			}
			declared = d
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read: %w", err)
	}

	if !inCoords {
		return nil, ErrNoCoordSection
	}
	if declared >= 0 && declared != len(inst.Cities) {
		return nil, fmt.Errorf("%w: declared %d, found %d", ErrDimensionMismatch, declared, len(inst.Cities))
	}
	inst.Dimension = len(inst.Cities)

	return &inst, nil
}

// parseNode reads "id x y".
func parseNode(line string) (int, tsp.City, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return 0, tsp.City{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, tsp.City{}, fmt.Errorf("%w: node id %q", ErrMalformedLine, fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, tsp.City{}, fmt.Errorf("%w: x %q", ErrMalformedLine, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, tsp.City{}, fmt.Errorf("%w: y %q", ErrMalformedLine, fields[2])
	}

	return id, tsp.City{X: x, Y: y}, nil
}
