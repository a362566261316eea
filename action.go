package calcx

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidAction is returned for actions the keypad cannot produce.
var ErrInvalidAction = errors.New("invalid action")

// Action is a keypad input. The set of variants is closed: Digit, Dot,
// ToggleSign, Percent, Operate, ClearAll, ClearDisplay and ClearLastChar.
type Action interface {
	fmt.Stringer
	isAction()
}

// Digit appends (or starts) a number with a single decimal digit.
type Digit uint8

// Dot inserts the decimal point.
type Dot struct{}

// ToggleSign negates the displayed value.
type ToggleSign struct{}

// Percent divides the displayed value by 100.
type Percent struct{}

// Operate folds the displayed value into the pending operation and stores Op.
type Operate struct {
	Op Operator
}

// ClearAll resets the calculator.
type ClearAll struct{}

// ClearDisplay resets only the display.
type ClearDisplay struct{}

// ClearLastChar drops the last displayed character.
type ClearLastChar struct{}

func (Digit) isAction() {}
func (Dot) isAction() {}
func (ToggleSign) isAction() {}
func (Percent) isAction() {}
func (Operate) isAction() {}
func (ClearAll) isAction() {}
func (ClearDisplay) isAction() {}
func (ClearLastChar) isAction() {}

func (d Digit) String() string { return "digit(" + strconv.Itoa(int(d)) + ")" }
func (Dot) String() string { return "dot" }
func (ToggleSign) String() string { return "toggle-sign" }
func (Percent) String() string { return "percent" }
func (o Operate) String() string { return "operate(" + o.Op.String() + ")" }
func (ClearAll) String() string { return "clear-all" }
func (ClearDisplay) String() string { return "clear-display" }
func (ClearLastChar) String() string { return "clear-last-char" }

// ValidateAction rejects nil actions, digits above 9 and unknown operators.
func ValidateAction(a Action) error {
	switch a := a.(type) {
	case nil:
		return fmt.Errorf("nil action: %w", ErrInvalidAction)
	case Digit:
		if a > 9 {
			return fmt.Errorf("digit %d: %w", uint8(a), ErrInvalidAction)
		}
	case Operate:
		if !a.Op.Valid() {
			return fmt.Errorf("operator %d: %w", int(a.Op), ErrInvalidAction)
		}
	}
	return nil
}
