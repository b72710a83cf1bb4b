package math

import (
	"fmt"

	"github.com/spaghettifunk/bedrock/engine/core"
)

// Circle is a 2D circle. Like Plane it is a value type: transforms return a
// new circle. A zero radius is a valid, degenerate circle.
type Circle struct {
	Center Vec2
	Radius Float
}

func NewCircle(center Vec2, radius Float) Circle {
	return Circle{Center: center, Radius: radius}
}

func NewCircleFromOrb(orb Orb[Vec2]) Circle {
	return Circle{Center: orb.Center, Radius: orb.Radius}
}

// NewUnitCircle returns the circle of radius 1 centered at the origin.
func NewUnitCircle() Circle {
	return Circle{Radius: 1}
}

func (c Circle) Orb() Orb[Vec2] {
	return NewOrb(c.Center, c.Radius)
}

func (c Circle) Contains(point Vec2) bool {
	return c.Orb().Contains(point)
}

func (c Circle) Equal(other Circle) bool {
	return c.Orb().Equal(other.Orb())
}

func (c Circle) String() string {
	return fmt.Sprintf("CI(%s, %g)", c.Center, c.Radius)
}

func (c Circle) Translate(translation Vec2) Circle {
	return Circle{c.Center.Add(translation), c.Radius}
}

func (c Circle) TranslateXY(x, y Float) Circle {
	return c.Translate(Vec2{x, y})
}

// Rotate turns the center counter clockwise about the origin. The angle uses
// the configured angle unit. The radius never changes.
func (c Circle) Rotate(angle Float) Circle {
	return Circle{c.Center.Rotate(angleToRadians(angle)), c.Radius}
}

func (c Circle) RotateWithPivot(angle Float, pivot Vec2) Circle {
	return Circle{c.Center.Sub(pivot).Rotate(angleToRadians(angle)).Add(pivot), c.Radius}
}

/**
 * @brief Scales the center componentwise about the origin and the radius by
 * a separate factor, so anisotropic scales still produce a circle.
 *
 * @param scale The center scale.
 * @param scaleRadius The radius factor. Its sign is dropped.
 */
func (c Circle) Scale(scale Vec2, scaleRadius Float) Circle {
	return Circle{c.Center.Mul(scale), c.scaledRadius(scaleRadius)}
}

func (c Circle) ScaleWithPivot(scale Vec2, scaleRadius Float, pivot Vec2) Circle {
	return Circle{c.Center.Sub(pivot).Mul(scale).Add(pivot), c.scaledRadius(scaleRadius)}
}

/**
 * @brief Applies a 2D affine matrix to the center and a separate factor to
 * the radius.
 */
func (c Circle) Transform(m Mat3, scaleRadius Float) Circle {
	return Circle{c.Center.Transform(m), c.scaledRadius(scaleRadius)}
}

func (c Circle) TransformWithPivot(m Mat3, scaleRadius Float, pivot Vec2) Circle {
	return Circle{c.Center.Sub(pivot).Transform(m).Add(pivot), c.scaledRadius(scaleRadius)}
}

func (c Circle) scaledRadius(factor Float) Float {
	return Abs(c.Radius * factor)
}

/**
 * @brief Computes the points shared by both circles.
 *
 * @return Two points and how many of them are meaningful:
 *  - Infinite when both circles are the same;
 *  - None when they are apart, or one lies strictly inside the other;
 *  - One when they are tangent, inside or outside; the point is returned twice;
 *  - Two otherwise; the first point lies on the left of the line going from
 *    the receiver's center to the other center.
 * Both radii must be non-zero.
 */
func (c Circle) IntersectionPoint(other Circle) (Vec2, Vec2, Intersections) {
	if !core.Assert(c.Radius != 0 && other.Radius != 0, "c.Radius != 0 && other.Radius != 0",
		"cannot intersect circles with a zero radius: %s, %s", c, other) {
		return Vec2{}, Vec2{}, IntersectionsNone
	}

	offset := other.Center.Sub(c.Center)
	distance := offset.Length()
	radiiSum := c.Radius + other.Radius
	radiiDiff := Abs(c.Radius - other.Radius)

	switch {
	case IsZero(distance) && AreEqual(c.Radius, other.Radius):
		return Vec2{}, Vec2{}, IntersectionsInfinite
	case IsGreaterThan(distance, radiiSum), IsLessThan(distance, radiiDiff):
		return Vec2{}, Vec2{}, IntersectionsNone
	}

	direction := offset.MulScalar(1 / distance)

	if AreEqual(distance, radiiSum) {
		point := c.Center.Add(direction.MulScalar(c.Radius))
		return point, point, IntersectionsOne
	}
	if AreEqual(distance, radiiDiff) {
		// Internal tangency: the point lies on the far side of the bigger circle.
		big, small := c, other
		if other.Radius > c.Radius {
			big, small = other, c
		}
		point := big.Center.Add(small.Center.Sub(big.Center).MulScalar(big.Radius / distance))
		return point, point, IntersectionsOne
	}

	// Distance from c.Center to the chord along the line of centers.
	a := (distance*distance + c.Radius*c.Radius - other.Radius*other.Radius) / (2 * distance)
	h := ksqrt(Clamp(c.Radius*c.Radius-a*a, 0, c.Radius*c.Radius))
	mid := c.Center.Add(direction.MulScalar(a))
	side := direction.Perp().MulScalar(h)
	return mid.Add(side), mid.Sub(side), IntersectionsTwo
}
