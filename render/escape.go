package render

// Iterate returns the escape count of c = x0 + y0·i under z ← z² + c, starting
// from z = 0. A result of i < depth means |z| passed 2 after step i; a result
// equal to depth means the point did not escape and is taken to be inside the set.
func Iterate(x0, y0 float64, depth int) int {
	if depth <= 0 {
		return 0
	}
	var x, y float64
	for i := 0; i < depth; i++ {
		x, y = x*x-y*y+x0, 2*x*y+y0
		if x*x+y*y > 4 {
			return i
		}
	}
	return depth
}
