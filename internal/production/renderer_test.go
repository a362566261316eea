package production

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/calcx"
)

func TestTextRenderer_Render(t *testing.T) {
	r := &TextRenderer{}

	out := r.Render(calcx.InitialState())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)

	assert.Equal(t, "+-----------------------+", lines[0])
	assert.Equal(t, "|                     0 |", lines[1])
	assert.Equal(t, "| AC  |  ±  |  %  |  ÷  |", lines[3])
	assert.Equal(t, "|     0     |  .  |  =  |", lines[7])
}

func TestTextRenderer_ClearKeyFollowsDisplay(t *testing.T) {
	r := &TextRenderer{}
	out := r.Render(calcx.State{DisplayText: "12"})
	assert.Contains(t, out, "|  C  |  ±  |")
	assert.Contains(t, out, "|                    12 |")
}

func TestTextRenderer_DisplayOnly(t *testing.T) {
	r := &TextRenderer{DisplayOnly: true}
	out := r.Render(calcx.State{DisplayText: "3.5"})
	assert.Equal(t, "+-----------------------+\n|                   3.5 |\n+-----------------------+\n", out)
}

func TestTextRenderer_ExportJSON(t *testing.T) {
	inf := math.Inf(1)
	op := calcx.Divide
	s := calcx.State{
		PendingOperand:     &inf,
		DisplayText:        "Infinity",
		PendingOperator:    &op,
		AwaitingNewOperand: true,
	}

	data, err := (&TextRenderer{}).ExportJSON(s)
	require.NoError(t, err)

	var view StateView
	require.NoError(t, json.Unmarshal(data, &view))
	assert.Equal(t, "Infinity", view.DisplayText)
	require.NotNil(t, view.PendingOperand)
	assert.Equal(t, "Infinity", *view.PendingOperand)
	require.NotNil(t, view.PendingOperator)
	assert.Equal(t, "/", *view.PendingOperator)
	assert.True(t, view.AwaitingNewOperand)
	assert.Equal(t, "C", view.ClearKey)
}

func TestTextRenderer_ExportJSONInitial(t *testing.T) {
	data, err := (&TextRenderer{}).ExportJSON(calcx.InitialState())
	require.NoError(t, err)
	assert.JSONEq(t, `{"displayText":"0","pendingOperand":null,"pendingOperator":null,"awaitingNewOperand":false,"clearKey":"AC"}`, string(data))
}
