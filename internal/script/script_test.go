package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/statestore"
)

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
name: walkthrough
actions:
  - type: INC
  - type: ADD
    payload: 5
  - type: ADD_TODO
    payload: write docs
  - type: RENAME
    payload:
      from: a
      to: b
`))
	require.NoError(t, err)
	assert.Equal(t, "walkthrough", s.Name)
	assert.Equal(t, []statestore.Action{
		{Type: "INC"},
		{Type: "ADD", Payload: 5},
		{Type: "ADD_TODO", Payload: "write docs"},
		{Type: "RENAME", Payload: map[string]any{"from": "a", "to": "b"}},
	}, s.Actions)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "name: nothing\n", ErrEmptyScript},
		{"missing type", "actions:\n  - payload: 1\n", statestore.ErrInvalidActionType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Parse([]byte("actions: [unterminated"))
	assert.ErrorContains(t, err, "yaml unmarshal")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actions:\n  - type: INC\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Actions, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
