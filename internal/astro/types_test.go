package astro

import (
	"math"
	"testing"
)

func TestVector_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		valid bool
	}{
		{"empty", Vector{}, true},
		{"normal", Vector{1.0, 2.0, 3.0}, true},
		{"zeros", Vector{0.0, 0.0}, true},
		{"with NaN", Vector{1.0, math.NaN()}, false},
		{"with +Inf", Vector{1.0, math.Inf(1)}, false},
		{"with -Inf", Vector{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestVector_Norm(t *testing.T) {
	tests := []struct {
		v        Vector
		expected float64
	}{
		{Vector{3, 4}, 5.0},
		{Vector{1, 0}, 1.0},
		{Vector{0, 0}, 0.0},
		{Vector{1, 1, 1, 1}, 2.0},
	}

	for _, tt := range tests {
		if got := tt.v.Norm(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Norm(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVector_Arithmetic(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, 5, 6}

	sum := a.Add(b)
	if sum[0] != 5 || sum[1] != 7 || sum[2] != 9 {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := b.Sub(a)
	if diff[0] != 3 || diff[1] != 3 || diff[2] != 3 {
		t.Errorf("Sub failed: got %v", diff)
	}

	scaled := a.Scale(2)
	if scaled[0] != 2 || scaled[1] != 4 || scaled[2] != 6 {
		t.Errorf("Scale failed: got %v", scaled)
	}
}

func TestVector_Clone(t *testing.T) {
	a := Vector{1, 2}
	c := a.Clone()
	c[0] = 99
	if a[0] != 1 {
		t.Error("Clone must not alias the original")
	}
}

func TestState_Clone(t *testing.T) {
	s := NewState(10, Vector{1, 2})
	c := s.Clone()
	c.Vector[0] = 99
	if s.Vector[0] != 1 {
		t.Error("State.Clone must deep-copy the vector")
	}
	if c.Time != 10 {
		t.Errorf("Clone lost the epoch: got %v", c.Time)
	}
}

func TestState_IsValid(t *testing.T) {
	if !NewState(0, Vector{1}).IsValid() {
		t.Error("finite state must be valid")
	}
	if NewState(math.NaN(), Vector{1}).IsValid() {
		t.Error("NaN epoch must be invalid")
	}
	if NewState(0, Vector{math.Inf(1)}).IsValid() {
		t.Error("Inf component must be invalid")
	}
}

func TestBodyIdentity(t *testing.T) {
	a := NewBody("sat")
	b := NewBody("sat")

	m := map[*Body]int{a: 1, b: 2}
	if len(m) != 2 {
		t.Error("bodies with equal names must remain distinct identities")
	}
}
