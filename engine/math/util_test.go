package math

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spaghettifunk/bedrock/engine/core"
)

// Loose enough for both precisions.
const testTolerance Float = 1e-4

var approx = cmpopts.EquateApprox(0, float64(testTolerance))

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// expectAssertion fails the test unless fn trips a strict mode assertion.
func expectAssertion(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, core.ErrAssertion) {
			t.Errorf("expected an assertion failure, got %v", r)
		}
	}()
	fn()
}

// ignoreAssertions switches to ignore mode for the rest of the test.
func ignoreAssertions(t *testing.T) {
	t.Helper()
	core.SetAssertMode(core.AssertModeIgnore)
	t.Cleanup(func() { core.SetAssertMode(core.AssertModeStrict) })
}

func assertPlane(t *testing.T, want, got Plane) {
	t.Helper()
	if !want.EqualTolerance(got, testTolerance) {
		t.Errorf("want %s, got %s", want, got)
	}
}

func assertVec3(t *testing.T, want, got Vec3) {
	t.Helper()
	if !want.Compare(got, testTolerance) {
		t.Errorf("want %s, got %s", want, got)
	}
}

func assertVec2(t *testing.T, want, got Vec2) {
	t.Helper()
	if !want.Compare(got, testTolerance) {
		t.Errorf("want %s, got %s", want, got)
	}
}

func assertFloat(t *testing.T, want, got Float) {
	t.Helper()
	if !AreEqualTolerance(want, got, testTolerance) {
		t.Errorf("want %g, got %g", want, got)
	}
}
