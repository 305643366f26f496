package geom

import "golang.org/x/exp/constraints"

// Lerper is implemented by vector-like values that support the operations
// needed for linear interpolation.
type Lerper[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float32) T
}

// Lerp interpolates between two scalars.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// LerpVec interpolates between two vector values.
// t=0 returns a, t=1 returns b.
func LerpVec[T Lerper[T]](a, b T, t float32) T {
	return a.Add(b.Sub(a).Mul(t))
}
