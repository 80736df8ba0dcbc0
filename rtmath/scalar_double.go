//go:build doubleprecision

package rtmath

import "math"

// Scalar is float64 under the doubleprecision build tag, for scenes where
// float32 precision loss at large world coordinates becomes visible.
type Scalar = float64

var ScalarInf = Scalar(math.Inf(1))
