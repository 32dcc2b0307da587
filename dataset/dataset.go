// Package dataset turns text into point sets.
//
// The format is one point per line, three comma-separated numbers:
//
//	162,817,812
//	57,618,57
//
// Blank lines are ignored and whitespace around fields is trimmed. The
// package embeds the 20-point reference sample, which pairs with
// SampleLimit; full datasets loaded from files pair with FileLimit.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/circuitry/core"
)

// Default bounded-phase limits for the two data sources.
const (
	SampleLimit = 10
	FileLimit   = 1000
)

// ErrMalformedLine indicates a line that is not three numeric fields.
var ErrMalformedLine = errors.New("dataset: malformed line")

//go:embed sample.txt
var sample []byte

// Sample returns a fresh copy of the embedded reference points.
func Sample() []core.Point {
	points, err := Parse(bytes.NewReader(sample))
	if err != nil {
		panic("dataset: embedded sample is invalid: " + err.Error())
	}

	return points
}

// Parse reads points from r. The result is ordered as the input.
func Parse(r io.Reader) ([]core.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var points []core.Point
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, perr.Line, perr.Err)
			}
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		var xyz [3]float64
		for i, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: field %d: %q", ErrMalformedLine, line, i+1, field)
			}
			xyz[i] = v
		}
		points = append(points, core.Point{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}
	if err := core.ValidatePoints(points); err != nil {
		return nil, err
	}

	return points, nil
}

// Load parses the file at path.
func Load(path string) ([]core.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	points, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return points, nil
}
