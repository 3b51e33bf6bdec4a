package curvefit

import (
	"fmt"

	"github.com/npillmayer/arithm"
)

// LeftTangent estimates the unit tangent at the start of a trace of
// digitized points. It looks ahead until the trace leaves a neighborhood
// of squared radius tolSq around the first point, so that noise and dense
// sampling do not derail the estimate. If the whole trace stays inside
// the neighborhood, the direction to the farthest point reached is used,
// or the direction to the immediate neighbor if even that distance
// vanishes. The trace must hold at least 2 points.
func LeftTangent(points []arithm.Pair, tolSq float64) arithm.Pair {
	for i := 1; ; {
		t := points[i] - points[0]
		distSq := dot(t, t)
		if tolSq < distSq {
			return unitVector(t)
		}
		i++
		if i == len(points) {
			if distSq == 0 {
				return leftChordTangent(points)
			}
			return unitVector(t)
		}
	}
}

// RightTangent is the analogue of LeftTangent for the end of a trace. The
// estimated unit tangent points backwards, from the last point into the
// trace.
func RightTangent(points []arithm.Pair, tolSq float64) arithm.Pair {
	last := len(points) - 1
	for i := last - 1; ; i-- {
		t := points[i] - points[last]
		distSq := dot(t, t)
		if tolSq < distSq {
			return unitVector(t)
		}
		if i == 0 {
			if distSq == 0 {
				return rightChordTangent(points)
			}
			return unitVector(t)
		}
	}
}

// CenterTangent estimates the unit tangent at an interior point of a
// trace from the direction between its two neighbors. The tangent points
// backwards, i.e. against the winding direction of the trace. If the two
// neighbors coincide, the direction to the center point, rotated by 90
// degrees, is used instead. center must be an interior index; CenterTangent
// panics otherwise.
func CenterTangent(points []arithm.Pair, center int) arithm.Pair {
	if center <= 0 || center >= len(points)-1 {
		panic(fmt.Sprintf("curvefit: center tangent at non-interior index %d", center))
	}
	var ret arithm.Pair
	if points[center+1] == points[center-1] {
		ret = rot90(points[center] - points[center-1])
	} else {
		ret = points[center-1] - points[center+1]
	}
	return unitVector(ret)
}

// leftChordTangent is the simple two-point tangent estimate at the start
// of a trace: the unit vector from the first point to its neighbor.
func leftChordTangent(points []arithm.Pair) arithm.Pair {
	return unitVector(points[1] - points[0])
}

// rightChordTangent estimates backwards, from the last point of a trace
// to its neighbor.
func rightChordTangent(points []arithm.Pair) arithm.Pair {
	last := len(points) - 1
	return unitVector(points[last-1] - points[last])
}
