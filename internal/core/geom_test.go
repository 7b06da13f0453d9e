package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max int
		expected      int
	}{
		{"within range", 5, 0, 10, 5},
		{"below min", -3, 0, 10, 0},
		{"above max", 15, 0, 10, 10},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Clamp(tc.val, tc.min, tc.max)
			if result != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(2.5, 0, 2); got != 2 {
		t.Errorf("ClampF(2.5, 0, 2) = %v, expected 2", got)
	}
	if got := ClampF(-0.1, 0, 2); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 2) = %v, expected 0", got)
	}
	if got := ClampF(1.3, 0, 2); got != 1.3 {
		t.Errorf("ClampF(1.3, 0, 2) = %v, expected 1.3", got)
	}
}

func TestLerpNeverOvershoots(t *testing.T) {
	// t beyond 1 is clamped, so the result lands exactly on b
	if got := Lerp(0, 1.2, 5); got != 1.2 {
		t.Errorf("Lerp(0, 1.2, 5) = %v, expected 1.2", got)
	}
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Errorf("Lerp(0, 10, 0.5) = %v, expected 5", got)
	}
	if got := Lerp(3, 3, 0.7); got != 3 {
		t.Errorf("Lerp between equal endpoints should stay put, got %v", got)
	}
	// Negative t is clamped to the start
	if got := Lerp(2, 8, -1); got != 2 {
		t.Errorf("Lerp(2, 8, -1) = %v, expected 2", got)
	}
}

func TestAbs(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs is wrong for one of -4, 4, 0")
	}
	if AbsF(-1.5) != 1.5 || AbsF(1.5) != 1.5 {
		t.Error("AbsF is wrong for one of -1.5, 1.5")
	}
}

func TestMinMax(t *testing.T) {
	if Min(2, 7) != 2 || Min(7, 2) != 2 {
		t.Error("Min is wrong")
	}
	if Max(2, 7) != 7 || Max(7, 2) != 7 {
		t.Error("Max is wrong")
	}
}
