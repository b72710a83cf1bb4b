//go:build !bedrock_degrees

package math

// AngleUnitDegrees reports whether angle valued APIs take and return degrees.
const AngleUnitDegrees = false

func angleToRadians(angle Float) Float {
	return angle
}

func angleFromRadians(radians Float) Float {
	return radians
}
