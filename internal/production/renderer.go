package production

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/keypad"
)

const (
	cellWidth = 5
	columns   = 4
)

// TextRenderer draws the display above the keypad grid in plain text.
type TextRenderer struct {
	// DisplayOnly skips the keypad grid.
	DisplayOnly bool
}

var _ calcx.Renderer = (*TextRenderer)(nil)

// StateView is the JSON form of a state. Numbers are rendered as display
// strings so NaN and infinities survive encoding.
type StateView struct {
	DisplayText        string  `json:"displayText"`
	PendingOperand     *string `json:"pendingOperand"`
	PendingOperator    *string `json:"pendingOperator"`
	AwaitingNewOperand bool    `json:"awaitingNewOperand"`
	ClearKey           string  `json:"clearKey"`
}

// NewStateView converts s to its JSON view.
func NewStateView(s calcx.State) StateView {
	v := StateView{
		DisplayText:        s.DisplayText,
		AwaitingNewOperand: s.AwaitingNewOperand,
		ClearKey:           keypad.ClearLabel(s),
	}
	if s.PendingOperand != nil {
		operand := calcx.FormatNumber(*s.PendingOperand)
		v.PendingOperand = &operand
	}
	if s.PendingOperator != nil {
		op := s.PendingOperator.String()
		v.PendingOperator = &op
	}
	return v
}

// Render draws s.
func (r *TextRenderer) Render(s calcx.State) string {
	var b strings.Builder
	inner := columns*cellWidth + columns - 1

	border := "+" + strings.Repeat("-", inner) + "+\n"
	b.WriteString(border)
	b.WriteString("|" + padLeft(s.DisplayText+" ", inner) + "|\n")
	if r.DisplayOnly {
		b.WriteString(border)
		return b.String()
	}

	row := "+" + strings.Repeat(strings.Repeat("-", cellWidth)+"+", columns) + "\n"
	b.WriteString(row)
	for _, keys := range keypad.Layout(s) {
		b.WriteString("|")
		for _, k := range keys {
			w := k.Span*cellWidth + k.Span - 1
			b.WriteString(center(k.Label, w))
			b.WriteString("|")
		}
		b.WriteString("\n")
	}
	b.WriteString(row)
	return b.String()
}

// ExportJSON serializes the state view.
func (r *TextRenderer) ExportJSON(s calcx.State) ([]byte, error) {
	return json.MarshalIndent(NewStateView(s), "", "  ")
}

func padLeft(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	return strings.Repeat(" ", w-n) + s
}

func center(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	left := (w - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-n-left)
}
