package functional

import "golang.org/x/exp/constraints"

// Number is any type that supports ordering and addition.
type Number interface {
	constraints.Integer | constraints.Float
}

// Max returns the max of a and b
func Max[T constraints.Ordered](a T, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the min of a and b
func Min[T constraints.Ordered](a T, b T) T {
	if a < b {
		return a
	}
	return b
}

// ClampZero returns x, or zero if x is negative.
func ClampZero[T Number](x T) T {
	var zero T
	return Max(zero, x)
}

// Add returns the sum of a and b
func Add[T Number](a T, b T) T {
	return a + b
}
