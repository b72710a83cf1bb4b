package math

import (
	m "math"
	"testing"
)

func TestFloatComparisons(t *testing.T) {
	eps := Epsilon
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"zero", IsZero(Float(0)), true},
		{"zero within epsilon", IsZero(eps / 2), true},
		{"not zero", IsZero(eps * 4), false},
		{"IsNotZero", IsNotZero(Float(1)), true},
		{"equal within epsilon", AreEqual(1, 1+eps/2), true},
		{"not equal", AreNotEqual(Float(1), 1.5), true},
		{"equal with tolerance", AreEqualTolerance(Float(1), 1.05, 0.1), true},
		{"greater than", IsGreaterThan(Float(2), 1), true},
		{"greater than inside epsilon", IsGreaterThan(1+eps/2, 1), false},
		{"less than", IsLessThan(Float(1), 2), true},
		{"less than inside epsilon", IsLessThan(1-eps/2, 1), false},
		{"greater or equals inside epsilon", IsGreaterOrEquals(1-eps/2, 1), true},
		{"less or equals inside epsilon", IsLessOrEquals(1+eps/2, 1), true},
		{"positive", IsPositive(Float(0.5)), true},
		{"tiny is not positive", IsPositive(eps / 2), false},
		{"negative", IsNegative(Float(-0.5)), true},
		{"NaN", IsNaN(Float(m.NaN())), true},
		{"infinite", IsInfinite(Float(m.Inf(-1))), true},
		{"valid", IsValid(Float(3)), true},
		{"NaN invalid", IsValid(Float(m.NaN())), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestFloatHelpers(t *testing.T) {
	if Abs(Float(-2)) != 2 || Abs(Float(3)) != 3 {
		t.Error("Abs")
	}
	if Sign(Float(-4)) != -1 || Sign(Float(4)) != 1 || Sign(Epsilon/2) != 0 {
		t.Error("Sign")
	}
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp")
	}
}

func TestAngleConversions(t *testing.T) {
	assertFloat(t, K_HALF_PI, DegToRad(90))
	assertFloat(t, 180, RadToDeg(K_PI))
	assertFloat(t, K_PI, angleToRadians(angleFromRadians(K_PI)))
	if AngleUnitDegrees {
		assertFloat(t, 90, angleFromRadians(K_HALF_PI))
	} else {
		assertFloat(t, K_HALF_PI, angleFromRadians(K_HALF_PI))
	}
}
