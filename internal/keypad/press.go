package keypad

import (
	"context"
	"fmt"

	"github.com/comalice/calcx"
)

// Press resolves each label against the machine's current state and sends
// the resulting action. It stops at the first unknown label.
func Press(ctx context.Context, m *calcx.Machine, labels ...string) (calcx.State, error) {
	s := m.State()
	for i, label := range labels {
		a, err := Lookup(label, s)
		if err != nil {
			return s, fmt.Errorf("press %d: %w", i, err)
		}
		if s, err = m.Send(ctx, a); err != nil {
			return s, fmt.Errorf("press %d: %w", i, err)
		}
	}
	return s, nil
}
