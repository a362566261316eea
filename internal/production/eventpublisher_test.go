// Tests for ChannelPublisher delivery and Machine integration.
package production

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/calcx"
)

func TestChannelPublisher_Delivery(t *testing.T) {
	ch := make(chan calcx.Transition, 10)
	p := NewChannelPublisher(ch)

	tr := calcx.Transition{
		MachineID: "test-machine",
		Action:    calcx.Digit(7).String(),
		Before:    calcx.InitialState(),
		After:     calcx.State{DisplayText: "7"},
		Timestamp: time.Now(),
	}

	require.NoError(t, p.Publish(context.Background(), tr))

	select {
	case got := <-ch:
		assert.Equal(t, tr.MachineID, got.MachineID)
		assert.Equal(t, "digit(7)", got.Action)
		assert.Equal(t, "7", got.After.DisplayText)
	case <-time.After(100 * time.Millisecond):
		t.Error("No transition delivered")
	}
}

func TestChannelPublisher_BackpressureDrop(t *testing.T) {
	ch := make(chan calcx.Transition, 1)
	p := NewChannelPublisher(ch)
	ch <- calcx.Transition{} // Fill buffer

	err := p.Publish(context.Background(), calcx.Transition{MachineID: "drop"})
	assert.NoError(t, err, "publish on full channel should drop silently")
	assert.Len(t, ch, 1)
}

func TestChannelPublisher_MachineIntegration(t *testing.T) {
	ch := make(chan calcx.Transition, 10)
	m := calcx.NewMachine(
		calcx.WithID("calc-1"),
		calcx.WithPublisher(NewChannelPublisher(ch)),
	)

	ctx := context.Background()
	_, err := m.SendAll(ctx, calcx.Digit(7), calcx.Operate{Op: calcx.Add}, calcx.Digit(3), calcx.Operate{Op: calcx.Equals})
	require.NoError(t, err)
	require.NoError(t, m.Close())

	var got []calcx.Transition
	for tr := range ch {
		got = append(got, tr)
	}
	require.Len(t, got, 4)
	assert.Equal(t, "calc-1", got[0].MachineID)
	assert.Equal(t, "0", got[0].Before.DisplayText)
	assert.Equal(t, "operate(=)", got[3].Action)
	assert.Equal(t, "3", got[3].Before.DisplayText)
	assert.Equal(t, "10", got[3].After.DisplayText)
}
