// core/numeric/numeric.go
package numeric

import "golang.org/x/exp/constraints"

// DivMod returns n/m and n%m. m must be non-zero.
func DivMod[T constraints.Unsigned](n, m T) (q, r T) {
	return n / m, n % m
}

// Digits returns the number of decimal digits in n; Digits(0) is 1.
func Digits[T constraints.Unsigned](n T) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Pow10 returns 10^k. The caller keeps k within T's range.
func Pow10[T constraints.Unsigned](k int) T {
	p := T(1)
	for i := 0; i < k; i++ {
		p *= 10
	}
	return p
}
