package calcx

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// fixedPrefix is the sign, integer part and decimal point stripped before
// counting fractional characters for Percent.
var fixedPrefix = regexp.MustCompile(`^-?\d*\.?`)

// Reduce returns the state that follows s after applying a. It never fails:
// division by zero yields an infinity and unparsable displays yield NaN.
// Actions that ValidateAction rejects leave s unchanged.
func Reduce(s State, a Action) State {
	if ValidateAction(a) != nil {
		return s
	}
	next := s.clone()

	switch a := a.(type) {
	case Digit:
		d := strconv.Itoa(int(a))
		switch {
		case next.AwaitingNewOperand:
			next.DisplayText = d
			next.AwaitingNewOperand = false
		case next.DisplayText == "0":
			next.DisplayText = d
		default:
			next.DisplayText += d
		}

	case Dot:
		if !strings.Contains(next.DisplayText, ".") {
			next.DisplayText += "."
			next.AwaitingNewOperand = false
		}

	case ToggleSign:
		next.DisplayText = FormatNumber(-ParseNumber(next.DisplayText))

	case Percent:
		v := ParseNumber(next.DisplayText)
		if v == 0 {
			return next
		}
		fixed := fixedPrefix.ReplaceAllString(next.DisplayText, "")
		next.DisplayText = FixedNumber(v/100, len(fixed)+2)

	case Operate:
		input := ParseNumber(next.DisplayText)
		if next.PendingOperand == nil {
			next.PendingOperand = &input
		}
		if next.PendingOperator != nil {
			left := 0.0
			if s.PendingOperand != nil && !math.IsNaN(*s.PendingOperand) {
				left = *s.PendingOperand
			}
			result := next.PendingOperator.Apply(left, input)
			next.PendingOperand = &result
			next.DisplayText = FormatNumber(result)
		}
		op := a.Op
		next.PendingOperator = &op
		next.AwaitingNewOperand = true

	case ClearAll:
		return InitialState()

	case ClearDisplay:
		next.DisplayText = "0"

	case ClearLastChar:
		next.DisplayText = next.DisplayText[:max(len(next.DisplayText)-1, 0)]
		if next.DisplayText == "" {
			next.DisplayText = "0"
		}
	}

	return next
}

// ReduceAll folds actions over s from left to right.
func ReduceAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}
