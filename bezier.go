package curvefit

import (
	"fmt"

	"github.com/npillmayer/arithm"
)

// Rows of Pascal's triangle, up to the cubic case.
var pascal = [4][4]float64{
	{1},
	{1, 1},
	{1, 2, 1},
	{1, 3, 3, 1},
}

// Bezier evaluates a Bézier curve of the given degree at parameter value
// t. The curve is given by its control points ctrl[0] .. ctrl[degree].
// Degrees 0 to 3 are supported; Bezier panics for anything else. t is not
// restricted to [0,1]: values outside extrapolate the polynomial.
func Bezier(degree int, ctrl []arithm.Pair, t float64) arithm.Pair {
	if degree < 0 || degree >= len(pascal) {
		panic(fmt.Sprintf("curvefit: unsupported curve degree %d", degree))
	}
	s := 1.0 - t
	spow := [4]float64{1, s}
	tpow := [4]float64{1, t}
	for i := 1; i < degree; i++ {
		spow[i+1] = spow[i] * s
		tpow[i+1] = tpow[i] * t
	}
	ret := scale(spow[degree], ctrl[0])
	for i := 1; i <= degree; i++ {
		ret += scale(pascal[degree][i]*spow[degree-i]*tpow[i], ctrl[i])
	}
	return ret
}

// bernstein returns the four cubic Bernstein weights at parameter value u.
func bernstein(u float64) (b0, b1, b2, b3 float64) {
	b := 1.0 - u
	b0 = b * b * b
	b1 = 3 * u * b * b
	b2 = 3 * u * u * b
	b3 = u * u * u
	return
}
