package rng

import "testing"

func TestSeededDeterministic(t *testing.T) {
	a := Seeded(12345)
	b := Seeded(12345)

	for i := 0; i < 20; i++ {
		gotA := a.Float64()
		gotB := b.Float64()
		if gotA != gotB {
			t.Fatalf("expected deterministic sequence, mismatch at %d: %v != %v", i, gotA, gotB)
		}
	}
}

func TestSeedWordChangesWithSalt(t *testing.T) {
	if seedWord(99, "a") == seedWord(99, "b") {
		t.Fatal("expected different seed words for different salts")
	}
}

func TestIntN(t *testing.T) {
	tests := []struct {
		value float64
		n     int
		want  int
	}{
		{0, 4, 0},
		{0.24, 4, 0},
		{0.25, 4, 1},
		{0.99, 4, 3},
		{0.5, 8, 4},
		{0.5, 0, 0},
	}

	for _, tt := range tests {
		got := IntN(NewSequence(tt.value), tt.n)
		if got != tt.want {
			t.Errorf("IntN(%v, %d) = %d, want %d", tt.value, tt.n, got, tt.want)
		}
	}
}

func TestSequence(t *testing.T) {
	seq := NewSequence(0.1, 0.7)

	if got := seq.Float64(); got != 0.1 {
		t.Errorf("first Float64() = %v, want 0.1", got)
	}
	if got := seq.Float64(); got != 0.7 {
		t.Errorf("second Float64() = %v, want 0.7", got)
	}
	if got := seq.Float64(); got != 0.7 {
		t.Errorf("exhausted Float64() = %v, want last value 0.7", got)
	}
	if seq.Draws() != 2 {
		t.Errorf("Draws() = %d, want 2", seq.Draws())
	}

	if got := NewSequence().Float64(); got != 0 {
		t.Errorf("empty Float64() = %v, want 0", got)
	}
}
