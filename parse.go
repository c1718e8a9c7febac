package mandel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseCentre parses "X,Y".
func ParseCentre(s string) (x, y float64, err error) {
	return parsePair(s, ",")
}

// ParseSize parses "WxH".
func ParseSize(s string) (w, h float64, err error) {
	return parsePair(s, "x")
}

func parsePair(s, sep string) (a, b float64, err error) {
	parts := strings.Split(strings.TrimSpace(s), sep)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: expected two numbers separated by %q: %w", s, sep, ErrInvalidValue)
	}
	vals := [2]float64{}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidValue)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, fmt.Errorf("%q: not finite: %w", s, ErrInvalidValue)
		}
		vals[i] = v
	}
	return vals[0], vals[1], nil
}
