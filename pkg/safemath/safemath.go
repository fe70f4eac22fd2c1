// Package safemath implements checked and saturating arithmetic over unsigned
// integers.
//
// Checked operations report overflow (or division by zero) through ok=false and
// leave the decision to the caller. Saturating operations clamp at the bounds of
// the type and never fail.
package safemath

// Unsigned is the set of integer types the helpers accept, including named
// types such as domain.Balance and domain.BlockNumber.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

func maxOf[T Unsigned]() T {
	return ^T(0)
}

// CheckedAdd returns a+b, or ok=false on overflow.
func CheckedAdd[T Unsigned](a, b T) (sum T, ok bool) {
	sum = a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// CheckedSub returns a-b, or ok=false when b > a.
func CheckedSub[T Unsigned](a, b T) (diff T, ok bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// CheckedMul returns a*b, or ok=false on overflow.
func CheckedMul[T Unsigned](a, b T) (product T, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product = a * b
	if product/a != b {
		return 0, false
	}
	return product, true
}

// CheckedDiv returns a/b, or ok=false when b is zero.
func CheckedDiv[T Unsigned](a, b T) (quotient T, ok bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// SaturatingAdd returns a+b clamped to the maximum of T.
func SaturatingAdd[T Unsigned](a, b T) T {
	if sum, ok := CheckedAdd(a, b); ok {
		return sum
	}
	return maxOf[T]()
}

// SaturatingSub returns a-b clamped at zero.
func SaturatingSub[T Unsigned](a, b T) T {
	if diff, ok := CheckedSub(a, b); ok {
		return diff
	}
	return 0
}

// SaturatingMul returns a*b clamped to the maximum of T.
func SaturatingMul[T Unsigned](a, b T) T {
	if product, ok := CheckedMul(a, b); ok {
		return product
	}
	return maxOf[T]()
}
