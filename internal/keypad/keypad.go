// Package keypad maps on-screen button labels to calculator actions.
package keypad

import (
	"errors"
	"fmt"
	"strings"

	"github.com/comalice/calcx"
)

// ErrUnknownKey is returned for labels that are not on the keypad.
var ErrUnknownKey = errors.New("unknown key")

// Clear key labels. The key shows "C" while the display is non-zero.
const (
	LabelClearAll     = "AC"
	LabelClearDisplay = "C"
)

// Key is one button of the grid.
type Key struct {
	Label string
	Span  int // columns occupied
}

// Layout returns the 4-column button grid for state s, top row first.
func Layout(s calcx.State) [][]Key {
	return [][]Key{
		{{Label: ClearLabel(s), Span: 1}, {Label: "±", Span: 1}, {Label: "%", Span: 1}, {Label: "÷", Span: 1}},
		{{Label: "7", Span: 1}, {Label: "8", Span: 1}, {Label: "9", Span: 1}, {Label: "×", Span: 1}},
		{{Label: "4", Span: 1}, {Label: "5", Span: 1}, {Label: "6", Span: 1}, {Label: "−", Span: 1}},
		{{Label: "1", Span: 1}, {Label: "2", Span: 1}, {Label: "3", Span: 1}, {Label: "+", Span: 1}},
		{{Label: "0", Span: 2}, {Label: ".", Span: 1}, {Label: "=", Span: 1}},
	}
}

// ClearLabel returns the label of the clear key for s.
func ClearLabel(s calcx.State) string {
	if s.DisplayText != "0" {
		return LabelClearDisplay
	}
	return LabelClearAll
}

// Lookup returns the action a press of label produces in state s.
// The clear key resolves against s: "C" clears the display while it is
// non-zero, otherwise the press clears everything.
func Lookup(label string, s calcx.State) (calcx.Action, error) {
	l := strings.TrimSpace(label)
	if len(l) == 1 && l[0] >= '0' && l[0] <= '9' {
		return calcx.Digit(l[0] - '0'), nil
	}

	switch strings.ToUpper(l) {
	case ".", ",", "●":
		return calcx.Dot{}, nil
	case "±", "+/-", "NEG":
		return calcx.ToggleSign{}, nil
	case "%":
		return calcx.Percent{}, nil
	case LabelClearAll, LabelClearDisplay, "CLEAR":
		if ClearLabel(s) == LabelClearDisplay {
			return calcx.ClearDisplay{}, nil
		}
		return calcx.ClearAll{}, nil
	case "CE":
		return calcx.ClearDisplay{}, nil
	case "⌫", "BACK", "BS":
		return calcx.ClearLastChar{}, nil
	}

	if op, err := calcx.ParseOperator(l); err == nil {
		return calcx.Operate{Op: op}, nil
	}
	return nil, fmt.Errorf("key %q: %w", label, ErrUnknownKey)
}

// Fields splits a whitespace separated key sequence into labels.
func Fields(keys string) []string {
	return strings.Fields(keys)
}
