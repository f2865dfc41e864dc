package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/comalice/statestore"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "actions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		scriptPath, historyPath = "", ""
		traceSpans, keepGoing, verbose = false, false, false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun_PrintsEachState(t *testing.T) {
	path := writeScript(t, `
name: tour
actions:
  - type: INC
  - type: ADD
    payload: 4
  - type: TOGGLE
  - type: ADD_TODO
    payload: ship it
`)
	out, err := execute(t, "run", "--script", path)
	require.NoError(t, err)
	assert.Equal(t, "# tour\n"+
		"initial\t{\"count\":0,\"flag\":false,\"todos\":[]}\n"+
		"INC\t{\"count\":1,\"flag\":false,\"todos\":[]}\n"+
		"ADD\t{\"count\":5,\"flag\":false,\"todos\":[]}\n"+
		"TOGGLE\t{\"count\":5,\"flag\":true,\"todos\":[]}\n"+
		"ADD_TODO\t{\"count\":5,\"flag\":true,\"todos\":[\"ship it\"]}\n", out)
}

func TestRun_StopsOnError(t *testing.T) {
	path := writeScript(t, "actions:\n  - type: ADD\n    payload: nope\n  - type: INC\n")
	_, err := execute(t, "run", "--script", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action 0 (ADD)")
}

func TestRun_KeepGoingAndHistory(t *testing.T) {
	path := writeScript(t, "actions:\n  - type: ADD\n    payload: nope\n  - type: INC\n")
	history := filepath.Join(t.TempDir(), "history.yaml")

	out, err := execute(t, "run", "--script", path, "--keep-going", "--trace", "--history", history)
	require.NoError(t, err)
	assert.Contains(t, out, "ADD\tERROR")
	assert.Contains(t, out, "1 of 2 actions failed")

	data, err := os.ReadFile(history)
	require.NoError(t, err)
	var entries []struct {
		Seq    uint64            `yaml:"seq"`
		Action statestore.Action `yaml:"action"`
	}
	require.NoError(t, yaml.Unmarshal(data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, statestore.ActionTypeInit, entries[0].Action.Type)
	assert.Equal(t, "INC", entries[1].Action.Type)
}

func TestRun_RequiresScript(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)
}
