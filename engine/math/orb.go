package math

import "fmt"

type orbVector[V any] interface {
	Sub(V) V
	Length() Float
	Compare(V, Float) bool
}

// Orb is the set of points at most Radius away from Center, in any dimension
// the vector type provides. Circle is its 2D specialization.
type Orb[V orbVector[V]] struct {
	Center V
	Radius Float
}

func NewOrb[V orbVector[V]](center V, radius Float) Orb[V] {
	return Orb[V]{Center: center, Radius: radius}
}

// Contains reports whether point is inside the orb or on its surface.
func (o Orb[V]) Contains(point V) bool {
	return IsLessOrEquals(point.Sub(o.Center).Length(), o.Radius)
}

// Intersects reports whether both orbs share at least one point.
func (o Orb[V]) Intersects(other Orb[V]) bool {
	return IsLessOrEquals(other.Center.Sub(o.Center).Length(), o.Radius+other.Radius)
}

func (o Orb[V]) Equal(other Orb[V]) bool {
	return o.Center.Compare(other.Center, Epsilon) && AreEqual(o.Radius, other.Radius)
}

func (o Orb[V]) String() string {
	return fmt.Sprintf("OB(%v, %g)", o.Center, o.Radius)
}
