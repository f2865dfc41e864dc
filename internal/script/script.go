// Package script loads YAML action scripts replayed by the demo CLI.
//
//	name: counter walkthrough
//	actions:
//	  - type: INC
//	  - type: ADD
//	    payload: 5
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/comalice/statestore"
)

// ErrEmptyScript is returned for scripts without actions.
var ErrEmptyScript = errors.New("script has no actions")

// Script is an ordered list of actions to dispatch.
type Script struct {
	Name    string              `yaml:"name"`
	Actions []statestore.Action `yaml:"actions"`
}

// Parse decodes a script and checks every action has a type.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(s.Actions) == 0 {
		return nil, ErrEmptyScript
	}
	for i, a := range s.Actions {
		if a.Type == "" {
			return nil, fmt.Errorf("action %d: %w", i, statestore.ErrInvalidActionType)
		}
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
