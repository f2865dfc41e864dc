package statestore

import (
	"errors"
	"testing"
)

func TestToAction(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    Action
		wantErr error
	}{
		{"value", Action{Type: "A", Payload: 1}, Action{Type: "A", Payload: 1}, nil},
		{"pointer", &Action{Type: "B"}, Action{Type: "B"}, nil},
		{"record", map[string]any{"type": "C"}, Action{Type: "C"}, nil},
		{"nil", nil, Action{}, ErrInvalidAction},
		{"number", 3.14, Action{}, ErrInvalidAction},
		{"typed map", map[string]string{"type": "D"}, Action{}, ErrInvalidAction},
		{"empty type", Action{}, Action{}, ErrInvalidActionType},
		{"record missing type", map[string]any{"kind": "E"}, Action{}, ErrInvalidActionType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toAction(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error: got %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("action: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSameState(t *testing.T) {
	m := map[string]any{}
	s := []int{1, 2}
	p := &struct{}{}
	type point struct{ X, Y int }
	type bag struct{ Items []int }

	tests := []struct {
		name string
		a, b State
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", nil, 0, false},
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"int vs int64", 1, int64(1), false},
		{"equal strings", "x", "x", true},
		{"same map", m, m, true},
		{"different maps", m, map[string]any{}, false},
		{"same slice", s, s, true},
		{"resliced", s, s[:1], false},
		{"same pointer", p, p, true},
		{"equal structs", point{1, 2}, point{1, 2}, true},
		{"non-comparable structs", bag{s}, bag{s}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameState(tt.a, tt.b); got != tt.want {
				t.Errorf("sameState(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
