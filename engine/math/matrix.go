package math

// ------------------------------------------
// Matrix 3
// ------------------------------------------

/**
 * @brief Creates and returns a 3x3 identity matrix.
 */
func NewMat3Identity() Mat3 {
	out_matrix := Mat3{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[4] = 1.0
	out_matrix.Data[8] = 1.0
	return out_matrix
}

/**
 * @brief Creates a 3D scale matrix.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat3Scale(scale Vec3) Mat3 {
	out_matrix := Mat3{}
	out_matrix.Data[0] = scale.X
	out_matrix.Data[4] = scale.Y
	out_matrix.Data[8] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a 2D affine rotation, counter clockwise about the origin.
 *
 * @param angle The angle, in the configured angle unit.
 */
func NewMat3Rotation2D(angle Float) Mat3 {
	r := angleToRadians(angle)
	c := kcos(r)
	s := ksin(r)

	out_matrix := NewMat3Identity()
	out_matrix.Data[0] = c
	out_matrix.Data[1] = s
	out_matrix.Data[3] = -s
	out_matrix.Data[4] = c
	return out_matrix
}

// NewMat3Translation2D creates a 2D affine translation.
func NewMat3Translation2D(translation Vec2) Mat3 {
	out_matrix := NewMat3Identity()
	out_matrix.Data[6] = translation.X
	out_matrix.Data[7] = translation.Y
	return out_matrix
}

// NewMat3Scale2D creates a 2D affine scale about the origin.
func NewMat3Scale2D(scale Vec2) Mat3 {
	out_matrix := NewMat3Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[4] = scale.Y
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other. Applying the result
 * is the same as applying mt first and other second.
 */
func (mt Mat3) Mul(other Mat3) Mat3 {
	out_matrix := Mat3{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := Float(0)
			for i := 0; i < 3; i++ {
				sum += mt.Data[row*3+i] * other.Data[i*3+col]
			}
			out_matrix.Data[row*3+col] = sum
		}
	}
	return out_matrix
}

func (mt Mat3) Transposed() Mat3 {
	return Mat3{Data: [9]Float(mglMat3(mt.Data).Transpose())}
}

func (mt Mat3) Determinant() Float {
	return mglMat3(mt.Data).Det()
}

/**
 * @brief Returns the inverse of mt. A singular matrix yields the zero matrix.
 */
func (mt Mat3) Inverse() Mat3 {
	// mathgl is column major, which is exactly the transpose of this layout.
	// Inversion commutes with transposition, so the data maps across as is.
	return Mat3{Data: [9]Float(mglMat3(mt.Data).Inv())}
}

// IsSingular reports a determinant that is negligible relative to the size of
// the rows. Scale invariant, so uniformly tiny matrices are not singular.
func (mt Mat3) IsSingular() bool {
	r0 := Vec3{mt.Data[0], mt.Data[1], mt.Data[2]}.Length()
	r1 := Vec3{mt.Data[3], mt.Data[4], mt.Data[5]}.Length()
	r2 := Vec3{mt.Data[6], mt.Data[7], mt.Data[8]}.Length()
	return Abs(mt.Determinant()) <= Epsilon*r0*r1*r2
}

func (mt Mat3) Compare(other Mat3, tolerance Float) bool {
	for i := range mt.Data {
		if Abs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Embeds a 3x3 linear transform into an affine 4x4 matrix with no
 * translation.
 */
func NewMat4FromMat3(linear Mat3) Mat4 {
	out_matrix := NewMat4Identity()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out_matrix.Data[row*4+col] = linear.Data[row*3+col]
		}
	}
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := Float(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func (mt Mat4) Transposed() Mat4 {
	return Mat4{Data: [16]Float(mglMat4(mt.Data).Transpose())}
}

/**
 * @brief Creates and returns an inverse of the provided matrix. A singular
 * matrix yields the zero matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	return Mat4{Data: [16]Float(mglMat4(mt.Data).Inv())}
}

// Linear returns the upper 3x3 block: rotation, scale and shear.
func (mt Mat4) Linear() Mat3 {
	out_matrix := Mat3{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out_matrix.Data[row*3+col] = mt.Data[row*4+col]
		}
	}
	return out_matrix
}

// Translation returns the translation row.
func (mt Mat4) Translation() Vec3 {
	return Vec3{mt.Data[12], mt.Data[13], mt.Data[14]}
}

func (mt Mat4) Compare(other Mat4, tolerance Float) bool {
	for i := range mt.Data {
		if Abs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param angle The x angle, in the configured angle unit.
 * @return A rotation matrix.
 */
func NewMat4EulerX(angle Float) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angleToRadians(angle))
	s := ksin(angleToRadians(angle))

	out_matrix.Data[5] = c
	out_matrix.Data[6] = s
	out_matrix.Data[9] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angle The y angle, in the configured angle unit.
 * @return A rotation matrix.
 */
func NewMat4EulerY(angle Float) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(angleToRadians(angle))
	s := ksin(angleToRadians(angle))

	out_matrix.Data[0] = c
	out_matrix.Data[2] = -s
	out_matrix.Data[8] = s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angle The z angle, in the configured angle unit.
 * @return A rotation matrix.
 */
func NewMat4EulerZ(angle Float) Mat4 {
	out_matrix := NewMat4Identity()

	c := kcos(angleToRadians(angle))
	s := ksin(angleToRadians(angle))

	out_matrix.Data[0] = c
	out_matrix.Data[1] = s
	out_matrix.Data[4] = -s
	out_matrix.Data[5] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis rotations,
 * applied in that order.
 */
func NewMat4EulerXYZ(x, y, z Float) Mat4 {
	rx := NewMat4EulerX(x)
	ry := NewMat4EulerY(y)
	rz := NewMat4EulerZ(z)
	out_matrix := rx.Mul(ry)
	out_matrix = out_matrix.Mul(rz)
	return out_matrix
}

// ------------------------------------------
// Quaternion
// ------------------------------------------

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation, in the configured angle unit.
 * @param normalize Indicates if the quaternion should be normalized.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle Float, normalize bool) Quaternion {
	half_angle := 0.5 * angleToRadians(angle)
	s := ksin(half_angle)
	c := kcos(half_angle)

	q := Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
	if normalize {
		q = q.Normalize()
	}
	return q
}

/**
 * @brief Returns the normal of the provided quaternion.
 */
func (q Quaternion) Normal() Float {
	return ksqrt(
		q.X*q.X +
			q.Y*q.Y +
			q.Z*q.Z +
			q.W*q.W)
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	return Quaternion{
		q.X / normal,
		q.Y / normal,
		q.Z / normal,
		q.W / normal}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns an inverse copy of the provided quaternion.
 */
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().Normalize()
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product q * other).
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.X = q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y +
		q.W*other.X

	out_quaternion.Y = -q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X +
		q.W*other.Y

	out_quaternion.Z = q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W +
		q.W*other.Z

	out_quaternion.W = -q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z +
		q.W*other.W

	return out_quaternion
}

func (q Quaternion) Dot(other Quaternion) Float {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

/**
 * @brief Creates a rotation matrix from the given quaternion, laid out for
 * row vectors (p' = p * M). The quaternion is normalized first; the zero
 * quaternion yields the zero matrix.
 */
func (q Quaternion) ToMat3() Mat3 {
	out_matrix := Mat3{}
	if q.Normal() == 0 {
		return out_matrix
	}
	n := q.Normalize()

	out_matrix.Data[0] = 1.0 - 2.0*n.Y*n.Y - 2.0*n.Z*n.Z
	out_matrix.Data[1] = 2.0*n.X*n.Y + 2.0*n.Z*n.W
	out_matrix.Data[2] = 2.0*n.X*n.Z - 2.0*n.Y*n.W

	out_matrix.Data[3] = 2.0*n.X*n.Y - 2.0*n.Z*n.W
	out_matrix.Data[4] = 1.0 - 2.0*n.X*n.X - 2.0*n.Z*n.Z
	out_matrix.Data[5] = 2.0*n.Y*n.Z + 2.0*n.X*n.W

	out_matrix.Data[6] = 2.0*n.X*n.Z + 2.0*n.Y*n.W
	out_matrix.Data[7] = 2.0*n.Y*n.Z - 2.0*n.X*n.W
	out_matrix.Data[8] = 1.0 - 2.0*n.X*n.X - 2.0*n.Y*n.Y

	return out_matrix
}

/**
 * @brief Creates a 4x4 rotation matrix from the given quaternion.
 */
func (q Quaternion) ToMat4() Mat4 {
	return NewMat4FromMat3(q.ToMat3())
}
