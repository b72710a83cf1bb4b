package math

import (
	"fmt"
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI Float = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 Float = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI Float = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI Float = 0.25 * K_PI
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO Float = 1.41421356237309504880
	/** @brief An approximation of the square root of 3. */
	K_SQRT_THREE Float = 1.73205080756887729352
	/** @brief One divided by an approximation of the square root of 3. */
	K_SQRT_ONE_OVER_THREE Float = 0.57735026918962576450
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER Float = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER Float = 180.0 / K_PI
)

func ksin(x Float) Float {
	return Float(m.Sin(float64(x)))
}

func kcos(x Float) Float {
	return Float(m.Cos(float64(x)))
}

func kacos(x Float) Float {
	return Float(m.Acos(float64(x)))
}

func ksqrt(x Float) Float {
	return Float(m.Sqrt(float64(x)))
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees Float) Float {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians Float) Float {
	return radians * K_RAD2DEG_MULTIPLIER
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y Float) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies componentwise.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

func (v Vec2) MulScalar(scalar Float) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(other Vec2) Float {
	return v.X*other.X + v.Y*other.Y
}

// Perp returns v rotated a quarter turn counter clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

func (v Vec2) LengthSquared() Float {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() Float {
	return ksqrt(v.LengthSquared())
}

func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	return Vec2{v.X / length, v.Y / length}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically Epsilon or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2) Compare(other Vec2, tolerance Float) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}
	if Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

func (v Vec2) IsZero() bool {
	return v.Compare(Vec2{}, Epsilon)
}

func (v Vec2) Distance(other Vec2) Float {
	return v.Sub(other).Length()
}

// Rotate turns v counter clockwise about the origin by an angle in radians.
func (v Vec2) Rotate(radians Float) Vec2 {
	s, c := ksin(radians), kcos(radians)
	return Vec2{
		v.X*c - v.Y*s,
		v.X*s + v.Y*c}
}

/**
 * @brief Transform v by the 2D affine matrix mt. v is treated as a point, so
 * the translation row of the matrix applies.
 */
func (v Vec2) Transform(mt Mat3) Vec2 {
	return Vec2{
		v.X*mt.Data[0] + v.Y*mt.Data[3] + mt.Data[6],
		v.X*mt.Data[1] + v.Y*mt.Data[4] + mt.Data[7]}
}

func (v Vec2) String() string {
	return fmt.Sprintf("V2(%g, %g)", v.X, v.Y)
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z Float) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func NewVec3FromVec4(vector Vec4) Vec3 {
	return Vec3{vector.X, vector.Y, vector.Z}
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 */
func (v Vec3) ToVec4(w Float) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies v by other componentwise and returns a copy of the result.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

func (v Vec3) MulScalar(scalar Float) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

func (v Vec3) DivScalar(scalar Float) Vec3 {
	return Vec3{
		v.X / scalar,
		v.Y / scalar,
		v.Z / scalar}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) LengthSquared() Float {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() Float {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a unit length copy of v. The result is undefined for a
 * zero vector.
 */
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{
		v.X / length,
		v.Y / length,
		v.Z / length}
}

/**
 * @brief Calculates and returns the dot product between the provided vectors.
 * Typically used to calculate the difference in direction.
 */
func (v Vec3) Dot(other Vec3) Float {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of the supplied vectors.
 * The cross product is a new vector which is orthoganal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

func (v Vec3) Compare(other Vec3, tolerance Float) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}
	if Abs(v.Y-other.Y) > tolerance {
		return false
	}
	if Abs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

func (v Vec3) IsZero() bool {
	return v.Compare(Vec3{}, Epsilon)
}

func (v Vec3) Distance(other Vec3) Float {
	return v.Sub(other).Length()
}

/**
 * @brief Transform v by mt. NOTE: It is assumed by this function that the
 * vector v is a point, not a direction, and is calculated as if a w component
 * with a value of 1.0 is there.
 *
 * @param mt The matrix to transform by.
 * @return A transformed copy of v.
 */
func (v Vec3) Transform(mt Mat4) Vec3 {
	out := Vec3{}
	out.X = v.X*mt.Data[0+0] + v.Y*mt.Data[4+0] + v.Z*mt.Data[8+0] + 1.0*mt.Data[12+0]
	out.Y = v.X*mt.Data[0+1] + v.Y*mt.Data[4+1] + v.Z*mt.Data[8+1] + 1.0*mt.Data[12+1]
	out.Z = v.X*mt.Data[0+2] + v.Y*mt.Data[4+2] + v.Z*mt.Data[8+2] + 1.0*mt.Data[12+2]
	return out
}

// TransformMat3 applies a linear transform to v.
func (v Vec3) TransformMat3(mt Mat3) Vec3 {
	return Vec3{
		v.X*mt.Data[0] + v.Y*mt.Data[3] + v.Z*mt.Data[6],
		v.X*mt.Data[1] + v.Y*mt.Data[4] + v.Z*mt.Data[7],
		v.X*mt.Data[2] + v.Y*mt.Data[5] + v.Z*mt.Data[8]}
}

func (v Vec3) String() string {
	return fmt.Sprintf("V3(%g, %g, %g)", v.X, v.Y, v.Z)
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w Float) Vec4 {
	return Vec4{x, y, z, w}
}

func NewVec4FromVec3(v Vec3, w Float) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

func (v Vec4) LengthSquared() Float {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

func (v Vec4) Length() Float {
	return ksqrt(v.LengthSquared())
}

func (v Vec4) Compare(other Vec4, tolerance Float) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}

	if Abs(v.Y-other.Y) > tolerance {
		return false
	}

	if Abs(v.Z-other.Z) > tolerance {
		return false
	}

	if Abs(v.W-other.W) > tolerance {
		return false
	}

	return true
}

func (v Vec4) String() string {
	return fmt.Sprintf("V4(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
