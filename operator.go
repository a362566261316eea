package calcx

import "fmt"

// Operator is a binary keypad operator.
type Operator int

const (
	Divide Operator = iota + 1
	Multiply
	Add
	Subtract
	Equals
)

// String returns the ASCII symbol of the operator.
func (o Operator) String() string {
	switch o {
	case Divide:
		return "/"
	case Multiply:
		return "*"
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Equals:
		return "="
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Valid reports whether o is one of the declared operators.
func (o Operator) Valid() bool {
	return o >= Divide && o <= Equals
}

// Apply evaluates prev <op> next. Equals yields next unchanged.
// Division by zero follows IEEE 754 and returns an infinity or NaN.
func (o Operator) Apply(prev, next float64) float64 {
	switch o {
	case Divide:
		return prev / next
	case Multiply:
		return prev * next
	case Add:
		return prev + next
	case Subtract:
		return prev - next
	case Equals:
		return next
	}
	return next
}

// ParseOperator accepts the ASCII symbols and the keypad glyphs.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "/", "÷":
		return Divide, nil
	case "*", "×", "x":
		return Multiply, nil
	case "+":
		return Add, nil
	case "-", "−":
		return Subtract, nil
	case "=":
		return Equals, nil
	}
	return 0, fmt.Errorf("operator %q: %w", s, ErrInvalidAction)
}

// MarshalText implements encoding.TextMarshaler.
func (o Operator) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("operator %d: %w", int(o), ErrInvalidAction)
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := ParseOperator(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
