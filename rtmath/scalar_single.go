//go:build !doubleprecision

package rtmath

import "math"

// Scalar is float32 by default, trading precision for cache footprint and
// throughput across large framebuffers.
type Scalar = float32

var ScalarInf = Scalar(math.Inf(1))
