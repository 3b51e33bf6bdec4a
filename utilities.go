package curvefit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/arithm"
)

// scale stretches a pair by a scalar factor.
func scale(a float64, p arithm.Pair) arithm.Pair {
	return arithm.P(p.X()*a, p.Y()*a)
}

// div shrinks a pair by a scalar divisor.
func div(p arithm.Pair, a float64) arithm.Pair {
	return arithm.P(p.X()/a, p.Y()/a)
}

// dot is the dot product of two pairs, read as vectors.
func dot(p, q arithm.Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// lensq is the squared euclidean length of p.
func lensq(p arithm.Pair) float64 {
	return dot(p, p)
}

// l2 is the euclidean length of p.
func l2(p arithm.Pair) float64 {
	return cmplx.Abs(p.C())
}

// unitVector scales v to length 1.
func unitVector(v arithm.Pair) arithm.Pair {
	return div(v, math.Sqrt(lensq(v)))
}

// rot90 rotates v by 90 degrees counter-clockwise.
func rot90(v arithm.Pair) arithm.Pair {
	return arithm.P(-v.Y(), v.X())
}

func isFinitePair(p arithm.Pair) bool {
	x, y := p.X(), p.Y()
	return !(math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0))
}

func ptstring(p arithm.Pair, iscontrol bool) string {
	if cmplx.IsNaN(p.C()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
