//go:build bedrock_single

package math

import "github.com/go-gl/mathgl/mgl32"

// Float is the scalar type used by the whole math package.
type Float = float32

const (
	// Epsilon is the tolerance used by every geometric comparison.
	Epsilon Float = 1e-6
	// DoublePrecision reports which Float the package was built with.
	DoublePrecision = false
)

type (
	mglMat3 = mgl32.Mat3
	mglMat4 = mgl32.Mat4
)
