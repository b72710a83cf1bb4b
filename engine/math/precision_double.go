//go:build !bedrock_single

package math

import "github.com/go-gl/mathgl/mgl64"

// Float is the scalar type used by the whole math package.
type Float = float64

const (
	// Epsilon is the tolerance used by every geometric comparison.
	Epsilon Float = 1e-12
	// DoublePrecision reports which Float the package was built with.
	DoublePrecision = true
)

type (
	mglMat3 = mgl64.Mat3
	mglMat4 = mgl64.Mat4
)
