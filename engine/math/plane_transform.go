package math

import "github.com/spaghettifunk/bedrock/engine/core"

// Transforms move the set of points of the plane. The normal follows the
// inverse-transpose of the linear part (as any implicit surface does, unlike
// points) and D is rebuilt from the translation: for p' = p*L + t,
//
//	normal' = normal * transpose(inverse(L))
//	D'      = D - normal' · t
//
// A singular L has no inverse. In that case the normal collapses to zero and
// D keeps its previous value, which is what a null rotation or a null scale
// produces.

func (p Plane) affine(linear Mat3, translation Vec3) Plane {
	if linear.IsSingular() {
		core.LogDebug("plane %s transformed by a singular matrix, normal collapsed", p)
		return Plane{0, 0, 0, p.D}
	}
	n := p.Normal().TransformMat3(linear.Inverse().Transposed())
	return Plane{n.X, n.Y, n.Z, p.D - n.Dot(translation)}
}

func (p Plane) aroundPivot(linear Mat3, translation Vec3, pivot Vec3) Plane {
	return p.TranslateVec(pivot.Negate()).affine(linear, translation).TranslateVec(pivot)
}

// Rotate applies a rotation matrix about the origin.
func (p Plane) Rotate(rotation Mat3) Plane {
	return p.affine(rotation, Vec3{})
}

func (p Plane) RotateWithPivot(rotation Mat3, pivot Vec3) Plane {
	return p.aroundPivot(rotation, Vec3{}, pivot)
}

func (p Plane) RotateQuaternion(rotation Quaternion) Plane {
	return p.Rotate(rotation.ToMat3())
}

func (p Plane) RotateQuaternionWithPivot(rotation Quaternion, pivot Vec3) Plane {
	return p.RotateWithPivot(rotation.ToMat3(), pivot)
}

// Scale applies a scale matrix about the origin.
func (p Plane) Scale(scale Mat3) Plane {
	return p.affine(scale, Vec3{})
}

func (p Plane) ScaleWithPivot(scale Mat3, pivot Vec3) Plane {
	return p.aroundPivot(scale, Vec3{}, pivot)
}

func (p Plane) ScaleVec(scale Vec3) Plane {
	return p.Scale(NewMat3Scale(scale))
}

func (p Plane) ScaleVecWithPivot(scale Vec3, pivot Vec3) Plane {
	return p.ScaleWithPivot(NewMat3Scale(scale), pivot)
}

func (p Plane) ScaleXYZ(x, y, z Float) Plane {
	return p.ScaleVec(Vec3{x, y, z})
}

func (p Plane) ScaleXYZWithPivot(x, y, z Float, pivot Vec3) Plane {
	return p.ScaleVecWithPivot(Vec3{x, y, z}, pivot)
}

// Translate uses the translation row of m; the rest of the matrix is ignored.
func (p Plane) Translate(m Mat4) Plane {
	return p.TranslateVec(m.Translation())
}

// TranslateVec moves the plane by displacement. Displacements lying on the
// plane leave it unchanged.
func (p Plane) TranslateVec(displacement Vec3) Plane {
	return Plane{p.A, p.B, p.C, p.D - p.DotProduct(displacement)}
}

func (p Plane) TranslateXYZ(x, y, z Float) Plane {
	return p.TranslateVec(Vec3{x, y, z})
}

// Transform applies an affine matrix: linear part first, then translation.
func (p Plane) Transform(m Mat4) Plane {
	return p.affine(m.Linear(), m.Translation())
}

func (p Plane) TransformWithPivot(m Mat4, pivot Vec3) Plane {
	return p.aroundPivot(m.Linear(), m.Translation(), pivot)
}

// TransformBy applies the world matrix of t.
func (p Plane) TransformBy(t *Transform) Plane {
	return p.Transform(t.GetWorld())
}
