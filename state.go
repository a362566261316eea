// Package calcx implements a four-function keypad calculator as a pure
// reducer over a small state record, plus a Machine that owns one state
// and applies keypad actions to it.
package calcx

import "math"

// State is the calculator's display state.
//
// PendingOperand and PendingOperator are nil until the first Operate.
// DisplayText always holds what the display shows.
type State struct {
	PendingOperand     *float64  `json:"pendingOperand" yaml:"pendingOperand"`
	DisplayText        string    `json:"displayText" yaml:"displayText"`
	PendingOperator    *Operator `json:"pendingOperator" yaml:"pendingOperator"`
	AwaitingNewOperand bool      `json:"awaitingNewOperand" yaml:"awaitingNewOperand"`
}

// InitialState returns {nil, "0", nil, false}.
func InitialState() State {
	return State{DisplayText: "0"}
}

// Value returns the numeric value of the display.
func (s State) Value() float64 {
	return ParseNumber(s.DisplayText)
}

// Equal compares two states by value, treating NaN operands as equal.
func (s State) Equal(o State) bool {
	if s.DisplayText != o.DisplayText || s.AwaitingNewOperand != o.AwaitingNewOperand {
		return false
	}
	if (s.PendingOperator == nil) != (o.PendingOperator == nil) {
		return false
	}
	if s.PendingOperator != nil && *s.PendingOperator != *o.PendingOperator {
		return false
	}
	if (s.PendingOperand == nil) != (o.PendingOperand == nil) {
		return false
	}
	if s.PendingOperand == nil {
		return true
	}
	a, b := *s.PendingOperand, *o.PendingOperand
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// clone copies s so the pointers are not shared with the result.
func (s State) clone() State {
	if s.PendingOperand != nil {
		v := *s.PendingOperand
		s.PendingOperand = &v
	}
	if s.PendingOperator != nil {
		op := *s.PendingOperator
		s.PendingOperator = &op
	}
	return s
}
