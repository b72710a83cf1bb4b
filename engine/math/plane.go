package math

import (
	"fmt"

	"github.com/spaghettifunk/bedrock/engine/core"
)

/**
 * @brief An oriented plane: the points P with A*P.X + B*P.Y + C*P.Z + D = 0.
 * (A, B, C) is the normal, not necessarily of unit length.
 *
 * Plane is a value type. Every operation returns a new plane and leaves the
 * receiver untouched.
 */
type Plane struct {
	A, B, C, D Float
}

func NewPlane(a, b, c, d Float) Plane {
	return Plane{A: a, B: b, C: c, D: d}
}

/**
 * @brief Creates a plane from its coefficients stored in a slice.
 *
 * @param values At least four values, in the order a, b, c, d.
 */
func NewPlaneFromSlice(values []Float) Plane {
	if !core.Assert(values != nil, "values != nil", "the coefficient slice must not be nil") {
		return NewPlaneZero()
	}
	if !core.Assert(len(values) >= 4, "len(values) >= 4", "a plane needs 4 coefficients, got %d", len(values)) {
		return NewPlaneZero()
	}
	return Plane{values[0], values[1], values[2], values[3]}
}

/**
 * @brief Creates the normalized plane through three points.
 *
 * The normal is (p2 - p1) x (p3 - p1): swapping any two points flips it.
 * The points must be distinct and not collinear; otherwise the null plane is
 * returned when assertions are ignored.
 */
func NewPlaneFromPoints(p1, p2, p3 Vec3) Plane {
	if !core.Assert(!p1.Compare(p2, Epsilon) && !p2.Compare(p3, Epsilon) && !p1.Compare(p3, Epsilon),
		"p1 != p2 && p2 != p3 && p1 != p3", "the points %s, %s and %s must be distinct", p1, p2, p3) {
		return NewPlaneZero()
	}

	normal := p2.Sub(p1).Cross(p3.Sub(p1))
	if !core.Assert(!normal.IsZero(), "(p2-p1) x (p3-p1) != 0", "the points %s, %s and %s are collinear", p1, p2, p3) {
		return NewPlaneZero()
	}

	normal = normal.Normalize()
	return Plane{normal.X, normal.Y, normal.Z, -normal.Dot(p1)}
}

// NewPlaneFromPoints4 is NewPlaneFromPoints ignoring the W components.
func NewPlaneFromPoints4(p1, p2, p3 Vec4) Plane {
	return NewPlaneFromPoints(p1.ToVec3(), p2.ToVec3(), p3.ToVec3())
}

// NewPlaneZero returns the null plane (0, 0, 0, 0).
func NewPlaneZero() Plane {
	return Plane{}
}

// NewPlaneXY returns the plane z = 0 with normal +Z.
func NewPlaneXY() Plane {
	return Plane{0, 0, 1, 0}
}

// NewPlaneYZ returns the plane x = 0 with normal +X.
func NewPlaneYZ() Plane {
	return Plane{1, 0, 0, 0}
}

// NewPlaneZX returns the plane y = 0 with normal +Y.
func NewPlaneZX() Plane {
	return Plane{0, 1, 0, 0}
}

func (p Plane) Normal() Vec3 {
	return Vec3{p.A, p.B, p.C}
}

func (p Plane) IsNull() bool {
	return p.Normal().IsZero()
}

func (p Plane) IsNormalized() bool {
	return AreEqual(p.Normal().LengthSquared(), 1)
}

func (p Plane) Equal(other Plane) bool {
	return p.EqualTolerance(other, Epsilon)
}

func (p Plane) EqualTolerance(other Plane, tolerance Float) bool {
	return AreEqualTolerance(p.A, other.A, tolerance) &&
		AreEqualTolerance(p.B, other.B, tolerance) &&
		AreEqualTolerance(p.C, other.C, tolerance) &&
		AreEqualTolerance(p.D, other.D, tolerance)
}

// Negate returns the same set of points with the opposite orientation.
func (p Plane) Negate() Plane {
	return Plane{-p.A, -p.B, -p.C, -p.D}
}

func (p Plane) String() string {
	return fmt.Sprintf("PL(%g, %g, %g, %g)", p.A, p.B, p.C, p.D)
}

/**
 * @brief Scales the four coefficients so the normal has unit length. The set
 * of points does not change.
 */
func (p Plane) Normalize() Plane {
	if !core.Assert(!p.IsNull(), "!p.IsNull()", "a null plane cannot be normalized") {
		return p
	}
	return p.normalized()
}

func (p Plane) normalized() Plane {
	length := p.Normal().Length()
	return Plane{p.A / length, p.B / length, p.C / length, p.D / length}
}

// DotProduct returns normal · v. A null plane gives 0.
func (p Plane) DotProduct(v Vec3) Float {
	return p.A*v.X + p.B*v.Y + p.C*v.Z
}

// DotProduct4 is DotProduct ignoring W.
func (p Plane) DotProduct4(v Vec4) Float {
	return p.DotProduct(v.ToVec3())
}

// DotProductPlane returns the dot product of both normals, ignoring D.
func (p Plane) DotProductPlane(other Plane) Float {
	return p.DotProduct(other.Normal())
}

/**
 * @brief Returns the angle between the plane normal and v, in the configured
 * angle unit, within [0, PI]. D plays no part.
 */
func (p Plane) AngleBetween(v Vec3) Float {
	if !core.Assert(!p.IsNull(), "!p.IsNull()", "the angle to a null plane is undefined") {
		return 0
	}
	if !core.Assert(!v.IsZero(), "!v.IsZero()", "the angle to a zero vector is undefined") {
		return 0
	}
	return angleBetweenNormals(p.Normal(), v)
}

// AngleBetween4 is AngleBetween ignoring W.
func (p Plane) AngleBetween4(v Vec4) Float {
	return p.AngleBetween(v.ToVec3())
}

// AngleBetweenPlane returns the angle between both normals.
func (p Plane) AngleBetweenPlane(other Plane) Float {
	if !core.Assert(!p.IsNull() && !other.IsNull(), "!p.IsNull() && !other.IsNull()", "the angle between null planes is undefined") {
		return 0
	}
	return angleBetweenNormals(p.Normal(), other.Normal())
}

func angleBetweenNormals(a, b Vec3) Float {
	cos := Clamp(a.Normalize().Dot(b.Normalize()), -1, 1)
	return angleFromRadians(kacos(cos))
}

/**
 * @brief Returns the orthogonal projection of point on the plane. Points
 * already on the plane are returned unchanged.
 */
func (p Plane) PointProjection(point Vec3) Vec3 {
	if !core.Assert(!p.IsNull(), "!p.IsNull()", "cannot project on a null plane") {
		return point
	}
	n := p.Normal()
	offset := (n.Dot(point) + p.D) / n.LengthSquared()
	return point.Sub(n.MulScalar(offset))
}

// PointProjection4 projects the XYZ part of point; W passes through.
func (p Plane) PointProjection4(point Vec4) Vec4 {
	return NewVec4FromVec3(p.PointProjection(point.ToVec3()), point.W)
}

/**
 * @brief Returns the unsigned distance from point to the plane, so points at
 * both sides at the same distance report the same value.
 */
func (p Plane) PointDistance(point Vec3) Float {
	if !core.Assert(!p.IsNull(), "!p.IsNull()", "the distance to a null plane is undefined") {
		return 0
	}
	n := p.Normal()
	return Abs(n.Dot(point)+p.D) / n.Length()
}

// PointDistance4 is PointDistance ignoring W.
func (p Plane) PointDistance4(point Vec4) Float {
	return p.PointDistance(point.ToVec3())
}

// Contains reports whether point lies on the plane. Scaling the plane does not
// change the answer.
func (p Plane) Contains(point Vec3) bool {
	if !core.Assert(!p.IsNull(), "!p.IsNull()", "a null plane contains nothing") {
		return false
	}
	return IsZero(p.PointDistance(point))
}

// Contains4 is Contains ignoring W.
func (p Plane) Contains4(point Vec4) bool {
	return p.Contains(point.ToVec3())
}

/**
 * @brief Computes the point shared by p, b and c.
 *
 * @return The point, only meaningful with IntersectionsOne (the zero vector
 * otherwise), and how many points the three planes share:
 *  - One when the normals are linearly independent;
 *  - Infinite when the planes share at least a line (all coincident, two
 *    coincident crossed by the third, or three planes around one line);
 *  - None otherwise (distinct parallels, a parallel pair crossed by the third,
 *    or three lines of intersection that never meet).
 * Scaling any of the planes changes neither the point nor the classification.
 */
func (p Plane) IntersectionPoint(b, c Plane) (Vec3, Intersections) {
	if !core.Assert(!p.IsNull() && !b.IsNull() && !c.IsNull(),
		"!p.IsNull() && !b.IsNull() && !c.IsNull()", "cannot intersect null planes") {
		return Vec3{}, IntersectionsNone
	}
	return intersectThreePlanes(p.normalized(), b.normalized(), c.normalized())
}

// IntersectionPoint4 works as IntersectionPoint but writes the XYZ of the
// result into out. out comes back untouched unless there is exactly one point,
// and its W is always preserved.
func (p Plane) IntersectionPoint4(b, c Plane, out Vec4) (Vec4, Intersections) {
	point, result := p.IntersectionPoint(b, c)
	if result == IntersectionsOne {
		out.X, out.Y, out.Z = point.X, point.Y, point.Z
	}
	return out, result
}

func intersectThreePlanes(p1, p2, p3 Plane) (Vec3, Intersections) {
	n1, n2, n3 := p1.Normal(), p2.Normal(), p3.Normal()
	n2xn3 := n2.Cross(n3)
	det := n1.Dot(n2xn3)

	if !IsZero(det) {
		n3xn1 := n3.Cross(n1)
		n1xn2 := n1.Cross(n2)
		point := n2xn3.MulScalar(-p1.D).
			Add(n3xn1.MulScalar(-p2.D)).
			Add(n1xn2.MulScalar(-p3.D)).
			DivScalar(det)
		return point, IntersectionsOne
	}

	par12, par23, par13 := areParallel(p1, p2), areParallel(p2, p3), areParallel(p1, p3)
	co12 := par12 && areCoincident(p1, p2)
	co23 := par23 && areCoincident(p2, p3)
	co13 := par13 && areCoincident(p1, p3)

	switch {
	case co12 && co23:
		return Vec3{}, IntersectionsInfinite
	case par12 && par23:
		// Three parallels, at least one of them apart from the others.
		return Vec3{}, IntersectionsNone
	case co12 || co23 || co13:
		// The third plane is not parallel, so it crosses the coincident pair
		// along a line.
		return Vec3{}, IntersectionsInfinite
	case par12 || par23 || par13:
		return Vec3{}, IntersectionsNone
	}

	// No parallel pair: either the three planes share one line or they form
	// a prism. Take a point of the line p1 ∩ p2 and test it against p3.
	u := n1.Cross(n2)
	onLine := n2.Cross(u).MulScalar(-p1.D).
		Add(u.Cross(n1).MulScalar(-p2.D)).
		DivScalar(u.LengthSquared())
	if p3.Contains(onLine) {
		return Vec3{}, IntersectionsInfinite
	}
	return Vec3{}, IntersectionsNone
}

// Both planes must be normalized.
func areParallel(p1, p2 Plane) bool {
	return p1.Normal().Cross(p2.Normal()).IsZero()
}

// Both planes must be normalized and parallel.
func areCoincident(p1, p2 Plane) bool {
	if p1.DotProductPlane(p2) < 0 {
		p2 = p2.Negate()
	}
	return AreEqual(p1.D, p2.D)
}

/**
 * @brief Locates other with respect to the half spaces of p.
 *
 * Crossing planes give BothSides. For parallel planes the other plane is
 * flipped to face the same way and the constants decide: equal means
 * Contained, p.D > other.D means PositiveSide. The constants are compared as
 * given, so normalize both planes to compare planes of different scale.
 */
func (p Plane) SpaceRelation(other Plane) SpaceRelation {
	if !core.Assert(!p.IsNull() && !other.IsNull(), "!p.IsNull() && !other.IsNull()", "null planes have no half spaces") {
		return SpaceRelationBothSides
	}

	if !areParallel(p.normalized(), other.normalized()) {
		return SpaceRelationBothSides
	}
	if p.DotProductPlane(other) < 0 {
		other = other.Negate()
	}

	switch {
	case AreEqual(p.D, other.D):
		return SpaceRelationContained
	case p.D > other.D:
		return SpaceRelationPositiveSide
	default:
		return SpaceRelationNegativeSide
	}
}
