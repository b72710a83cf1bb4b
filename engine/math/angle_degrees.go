//go:build bedrock_degrees

package math

// AngleUnitDegrees reports whether angle valued APIs take and return degrees.
const AngleUnitDegrees = true

func angleToRadians(angle Float) Float {
	return DegToRad(angle)
}

func angleFromRadians(radians Float) Float {
	return RadToDeg(radians)
}
