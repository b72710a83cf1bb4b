package math

import (
	"testing"

	"golang.org/x/exp/rand"
)

var quarterTurn = angleFromRadians(K_HALF_PI)

func TestPlaneTranslate(t *testing.T) {
	xy := NewPlaneXY()
	assertPlane(t, NewPlane(0, 0, 1, -3), xy.TranslateVec(NewVec3(0, 0, 3)))
	assertPlane(t, NewPlane(0, 0, 1, -3), xy.TranslateXYZ(7, -1, 3))
	assertPlane(t, xy, xy.TranslateVec(NewVec3(5, -2, 0)))

	// Only the translation row counts.
	m := NewMat4EulerX(quarterTurn).Mul(NewMat4Translation(NewVec3(0, 0, -2)))
	assertPlane(t, NewPlane(0, 0, 1, 2), xy.Translate(m))
}

func TestPlaneRotate(t *testing.T) {
	rz := NewMat4EulerZ(quarterTurn).Linear()

	assertPlane(t, NewPlaneZX(), NewPlaneYZ().Rotate(rz))
	assertPlane(t, NewPlane(0, 1, 0, -1), NewPlane(1, 0, 0, -1).Rotate(rz))
	assertPlane(t, NewPlaneXY(), NewPlaneXY().Rotate(rz))

	q := NewQuatFromAxisAngle(NewVec3(0, 0, 1), quarterTurn, true)
	assertPlane(t, NewPlane(0, 1, 0, -1), NewPlane(1, 0, 0, -1).RotateQuaternion(q))

	// The plane x = 1 turned about (1, 0, 0) still goes through it.
	pivot := NewVec3(1, 0, 0)
	assertPlane(t, NewPlaneZX(), NewPlane(1, 0, 0, -1).RotateWithPivot(rz, pivot))
	assertPlane(t, NewPlaneZX(), NewPlane(1, 0, 0, -1).RotateQuaternionWithPivot(q, pivot))
}

func TestPlaneScale(t *testing.T) {
	p := NewPlane(1, 1, 1, -1)
	want := NewPlane(0.5, 0.5, 0.5, -1)
	assertPlane(t, want, p.ScaleXYZ(2, 2, 2))
	assertPlane(t, want, p.ScaleVec(NewVec3(2, 2, 2)))
	assertPlane(t, want, p.Scale(NewMat3Scale(NewVec3(2, 2, 2))))

	// Scaling about a point of the plane keeps that point.
	pivot := NewVec3(1, 0, 0)
	scaled := p.ScaleXYZWithPivot(3, 1, 0.5, pivot)
	if !scaled.Contains(pivot) {
		t.Errorf("%s lost its pivot", scaled)
	}
	assertPlane(t, scaled, p.ScaleVecWithPivot(NewVec3(3, 1, 0.5), pivot))
	assertPlane(t, scaled, p.ScaleWithPivot(NewMat3Scale(NewVec3(3, 1, 0.5)), pivot))
}

func TestPlaneSingularTransformCollapses(t *testing.T) {
	p := NewPlane(1, 2, 3, -4)
	want := NewPlane(0, 0, 0, -4)

	if got := p.Rotate(Mat3{}); got != want {
		t.Errorf("null rotation gave %s, want %s", got, want)
	}
	if got := p.RotateQuaternion(Quaternion{}); got != want {
		t.Errorf("null quaternion gave %s, want %s", got, want)
	}
	if got := p.ScaleXYZ(0, 1, 1); got != want {
		t.Errorf("null scale gave %s, want %s", got, want)
	}
	if !p.Transform(NewMat4Scale(NewVec3(1, 0, 1))).IsNull() {
		t.Error("flattening matrix should give a null plane")
	}
}

func TestPlaneTransform(t *testing.T) {
	m := NewMat4EulerZ(quarterTurn).Mul(NewMat4Translation(NewVec3(1, 2, 3)))
	assertPlane(t, NewPlane(0, 1, 0, -3), NewPlane(1, 0, 0, -1).Transform(m))

	identity := NewPlane(2, -1, 0.5, 7)
	assertPlane(t, identity, identity.Transform(NewMat4Identity()))
}

func TestPlaneTransformBy(t *testing.T) {
	child := NewTransformFromPosition(NewVec3(0, 0, 5))
	assertPlane(t, NewPlane(0, 0, 1, -5), NewPlaneXY().TransformBy(child))

	parent := NewTransformFromPositionRotationScale(NewVec3(1, 0, 0), NewQuatIdentity(), NewVec3(1, 1, 2))
	child.SetParent(parent)
	assertPlane(t, NewPlane(0, 0, 1, -10), NewPlaneXY().TransformBy(child).Normalize())

	child.SetPosition(NewVec3(0, 0, 1))
	assertPlane(t, NewPlane(0, 0, 1, -2), NewPlaneXY().TransformBy(child).Normalize())
}

func TestPlaneZeroPivotMatchesOrigin(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		p := randomPlane(r)
		q := NewQuatFromAxisAngle(randomVec3(r, 1), randomFloat(r, angleFromRadians(K_PI)), true)
		s := NewVec3(1+randomFloat(r, 0.5), 1+randomFloat(r, 0.5), 1+randomFloat(r, 0.5))
		m := NewMat4Scale(s).Mul(q.ToMat4()).Mul(NewMat4Translation(randomVec3(r, 5)))

		assertPlane(t, p.RotateQuaternion(q), p.RotateQuaternionWithPivot(q, Vec3{}))
		assertPlane(t, p.ScaleVec(s), p.ScaleVecWithPivot(s, Vec3{}))
		assertPlane(t, p.Transform(m), p.TransformWithPivot(m, Vec3{}))
	}
}

func TestPlaneTransformKeepsPoints(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		p := randomPlane(r)
		q := NewQuatFromAxisAngle(randomVec3(r, 1), randomFloat(r, angleFromRadians(K_PI)), true)
		s := NewVec3(1+randomFloat(r, 0.5), -1+randomFloat(r, 0.5), 1+randomFloat(r, 0.5))
		m := NewMat4Scale(s).Mul(q.ToMat4()).Mul(NewMat4Translation(randomVec3(r, 5)))
		pivot := randomVec3(r, 5)

		transformed := p.Transform(m)
		aroundPivot := p.TransformWithPivot(m, pivot)
		for j := 0; j < 5; j++ {
			point := p.PointProjection(randomVec3(r, 10))

			moved := point.Transform(m)
			if d := transformed.PointDistance(moved); d > testTolerance {
				t.Fatalf("%s moved by %v is %g away from %s", point, m, d, transformed)
			}

			movedAroundPivot := point.Sub(pivot).Transform(m).Add(pivot)
			if d := aroundPivot.PointDistance(movedAroundPivot); d > testTolerance {
				t.Fatalf("%s moved about %s is %g away from %s", point, pivot, d, aroundPivot)
			}
		}
	}
}
