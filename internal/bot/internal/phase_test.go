package internal

import "testing"

func TestDetectPhase_Opening(t *testing.T) {
	sizes := map[string]int{"p1": 18, "p2": 18, "p3": 18}

	if got := DetectPhase(sizes); got != PhaseOpening {
		t.Fatalf("DetectPhase = %v, want %v", got, PhaseOpening)
	}
}

func TestDetectPhase_Mid(t *testing.T) {
	sizes := map[string]int{"p1": 12, "p2": 9, "p3": 18}

	if got := DetectPhase(sizes); got != PhaseMid {
		t.Fatalf("DetectPhase = %v, want %v", got, PhaseMid)
	}
}

func TestDetectPhase_End(t *testing.T) {
	sizes := map[string]int{"p1": 5, "p2": 9, "p3": 14}

	if got := DetectPhase(sizes); got != PhaseEnd {
		t.Fatalf("DetectPhase = %v, want %v", got, PhaseEnd)
	}
}

func TestDetectPhase_TwoSeats(t *testing.T) {
	if got := DetectPhase(map[string]int{"p1": 27, "p2": 27}); got != PhaseOpening {
		t.Fatalf("DetectPhase = %v, want %v", got, PhaseOpening)
	}
	if got := DetectPhase(map[string]int{"p1": 18, "p2": 18}); got != PhaseMid {
		t.Fatalf("DetectPhase = %v, want %v", got, PhaseMid)
	}
}
