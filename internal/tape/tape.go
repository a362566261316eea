// Package tape loads scripted keypad sessions and replays them against a
// calculator Machine.
//
// A tape is a YAML (or JSON) document:
//
//	name: addition
//	steps:
//	  - keys: [7, "+", 3, "="]
//	    expect: "10"
package tape

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/keypad"
)

// ErrMismatch is returned when a step's display differs from its expectation.
var ErrMismatch = errors.New("display mismatch")

// Tape is a named sequence of steps.
type Tape struct {
	Name  string `yaml:"name" json:"name"`
	Steps []Step `yaml:"steps" json:"steps"`
}

// Step presses Keys in order, then optionally checks the display.
// Expect is skipped when nil.
type Step struct {
	Keys   []string `yaml:"keys" json:"keys"`
	Expect *string  `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Result is the outcome of one replayed step.
type Result struct {
	Index   int
	Keys    []string
	Display string
	Expect  *string
}

// OK reports whether the step matched (or had no expectation).
func (r Result) OK() bool {
	return r.Expect == nil || *r.Expect == r.Display
}

// Load reads and parses a tape file.
func Load(path string) (*Tape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a tape. JSON input is accepted since it is valid YAML.
func Parse(data []byte) (*Tape, error) {
	var t Tape
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(t.Steps) == 0 {
		return nil, errors.New("tape has no steps")
	}
	return &t, nil
}

// Run replays t against m and returns the results of the steps it ran.
// It stops at the first unknown key or failed expectation.
func Run(ctx context.Context, m *calcx.Machine, t *Tape) ([]Result, error) {
	results := make([]Result, 0, len(t.Steps))
	for i, step := range t.Steps {
		s, err := keypad.Press(ctx, m, step.Keys...)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i, err)
		}
		r := Result{Index: i, Keys: step.Keys, Display: s.DisplayText, Expect: step.Expect}
		results = append(results, r)
		if !r.OK() {
			return results, fmt.Errorf("step %d: got %q, want %q: %w", i, r.Display, *r.Expect, ErrMismatch)
		}
	}
	return results, nil
}
