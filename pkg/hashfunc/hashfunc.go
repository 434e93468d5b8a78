package hashfunc

// fibonacciConstant is the 64-bit unsigned approximation of
// floor(2^64 / phi), per spec.md §4.1. It is a fixed literal rather
// than a runtime computation of 2^64/phi, since implementations
// differ in how they evaluate that power and would silently diverge.
const fibonacciConstant uint64 = 0x9E3779B97F4A7C15

// Division computes the division-method home index: h = |k| mod m,
// then index = h mod N. m may differ from N (e.g. m=113, N=120 for
// scheme 7), so the second reduction by N is required to keep the
// index within the full addressable table.
func Division(k, m, n int) int {
	h := absUint64(int64(k)) % uint64(m)
	return int(h % uint64(n))
}

// Fibonacci computes Knuth's multiplicative home index using the
// fixed-point constant fibonacciConstant: hv = |k| * A with wrapping
// 64-bit multiplication, then index = hv mod N.
func Fibonacci(k, n int) int {
	hv := absUint64(int64(k)) * fibonacciConstant
	return int(hv % uint64(n))
}

// absUint64 returns the absolute value of k as an unsigned 64-bit
// value, so that math.MinInt64 (whose magnitude does not fit in a
// signed 64-bit value) is represented correctly rather than
// overflowing. Two's-complement negation in unsigned arithmetic never
// overflows, unlike negating a signed value directly.
func absUint64(k int64) uint64 {
	if k >= 0 {
		return uint64(k)
	}
	return ^uint64(k) + 1
}
