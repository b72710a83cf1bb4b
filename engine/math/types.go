package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y Float
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z Float
}

// Vec4 represents a 4D vector. When used as a point, W is the homogeneous
// component and geometry operations leave it untouched.
type Vec4 struct {
	X, Y, Z, W Float
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion Vec4

/**
 * @brief A 3x3 matrix stored row by row. Vectors are rows multiplied on the
 * left (p' = p * M). In 3D it holds a linear transform (rotation, scale). In
 * 2D it holds an affine transform, with the translation in Data[6] and Data[7].
 */
type Mat3 struct {
	/** @brief The matrix elements */
	Data [9]Float
}

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Same row-vector layout as Mat3; the translation lives in Data[12..14].
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]Float
}

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the functions in transform.go
 * to ensure proper matrix generation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The scale in the world. */
	Scale Vec3
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	Local Mat4
	/** @brief A pointer to a parent transform if one is assigned. Can also be null. */
	Parent *Transform
}

// Intersections is the number of points two or more shapes have in common.
type Intersections uint8

const (
	IntersectionsNone Intersections = iota
	IntersectionsOne
	IntersectionsTwo
	IntersectionsInfinite
)

func (i Intersections) String() string {
	switch i {
	case IntersectionsNone:
		return "None"
	case IntersectionsOne:
		return "One"
	case IntersectionsTwo:
		return "Two"
	case IntersectionsInfinite:
		return "Infinite"
	default:
		return "Unknown"
	}
}

// SpaceRelation locates a shape with respect to the two half spaces of a plane.
type SpaceRelation uint8

const (
	// SpaceRelationContained means the shape lies on the plane.
	SpaceRelationContained SpaceRelation = iota
	// SpaceRelationPositiveSide is the side the plane normal points to.
	SpaceRelationPositiveSide
	SpaceRelationNegativeSide
	// SpaceRelationBothSides means the shape crosses the plane.
	SpaceRelationBothSides
)

func (s SpaceRelation) String() string {
	switch s {
	case SpaceRelationContained:
		return "Contained"
	case SpaceRelationPositiveSide:
		return "PositiveSide"
	case SpaceRelationNegativeSide:
		return "NegativeSide"
	case SpaceRelationBothSides:
		return "BothSides"
	default:
		return "Unknown"
	}
}
