package tape

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/calcx"
	"github.com/comalice/calcx/internal/keypad"
)

func TestLoad_YAMLSession(t *testing.T) {
	tp, err := Load("testdata/session.yaml")
	require.NoError(t, err)
	assert.Equal(t, "session", tp.Name)
	require.Len(t, tp.Steps, 7)

	results, err := Run(context.Background(), calcx.NewMachine(), tp)
	require.NoError(t, err)
	require.Len(t, results, 7)
	for _, r := range results {
		assert.True(t, r.OK(), "step %d: got %q", r.Index, r.Display)
	}
	assert.Equal(t, "Infinity", results[6].Display)
}

func TestLoad_JSONSession(t *testing.T) {
	tp, err := Load("testdata/session.json")
	require.NoError(t, err)
	assert.Equal(t, "json-session", tp.Name)

	results, err := Run(context.Background(), calcx.NewMachine(), tp)
	require.NoError(t, err)
	assert.Equal(t, "5.2", results[len(results)-1].Display)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "no steps", data: "name: empty\n"},
		{name: "bad yaml", data: "steps: [\n"},
		{name: "keys not a list", data: "steps:\n  - keys: {a: b}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestRun_Mismatch(t *testing.T) {
	tp, err := Parse([]byte("steps:\n  - keys: ['2', '+', '2', '=']\n    expect: '5'\n  - keys: ['1']\n"))
	require.NoError(t, err)

	results, err := Run(context.Background(), calcx.NewMachine(), tp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch))
	require.Len(t, results, 1)
	assert.Equal(t, "4", results[0].Display)
	assert.False(t, results[0].OK())
}

func TestRun_UnknownKey(t *testing.T) {
	tp, err := Parse([]byte("steps:\n  - keys: ['1', 'sqrt']\n"))
	require.NoError(t, err)

	_, err = Run(context.Background(), calcx.NewMachine(), tp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, keypad.ErrUnknownKey))
}

func TestRun_NoExpectation(t *testing.T) {
	tp, err := Parse([]byte("steps:\n  - keys: ['4', '2']\n"))
	require.NoError(t, err)

	results, err := Run(context.Background(), calcx.NewMachine(), tp)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].Expect)
	assert.True(t, results[0].OK())
	assert.Equal(t, "42", results[0].Display)
}
