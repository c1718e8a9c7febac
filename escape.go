package mandel

import (
	"context"
	"fmt"
	"math/cmplx"
)

// ctxCheckEvery is how many points are computed between context checks.
const ctxCheckEvery = 1024

// EscapeTime iterates z = z*z + c starting from z = c and returns the index
// of the first iteration at which |z| > 2. Points that stay bounded for the
// whole budget get limit-1, the last index tested, so they share a value with
// points escaping on the final iteration. limit must be positive.
func EscapeTime(c complex128, limit int) int {
	z := c
	for i := range limit {
		z = z*z + c
		if cmplx.Abs(z) > 2 {
			// diverged; stop before squaring overflows
			return i
		}
	}
	return limit - 1
}

// EscapeTimes computes the escape time of every point in C. The result has
// the same length and order as C, and C is not modified.
func EscapeTimes(C []complex128, limit int) ([]int, error) {
	return EscapeTimesContext(context.Background(), C, limit)
}

// EscapeTimesContext is EscapeTimes that gives up once ctx is done.
func EscapeTimesContext(ctx context.Context, C []complex128, limit int) ([]int, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("escape times: limit %d: %w", limit, ErrInvalidLimit)
	}
	out := make([]int, len(C))
	for i, c := range C {
		if i%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("escape times: %d of %d points: %w", i, len(C), err)
			}
		}
		out[i] = EscapeTime(c, limit)
	}
	return out, nil
}
