package mandel

import (
	"fmt"
	"strconv"
	"strings"
)

// Usage is the one-line synopsis printed by the commands when arguments are missing.
const Usage = "Usage: x_0,x_1 y_0,y_1 depth resolution"

// ParseRange parses "lo,hi" into its two bounds. Ordering is not checked here;
// Region.Validate does that.
func ParseRange(s string) (lo, hi float64, err error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: range %q: want lo,hi", ErrInvalidArguments, s)
	}
	lo, err = strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: range %q: %v", ErrInvalidArguments, s, err)
	}
	hi, err = strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: range %q: %v", ErrInvalidArguments, s, err)
	}
	return lo, hi, nil
}

// ParseRegion builds a region from a real-axis and an imaginary-axis range.
func ParseRegion(re, im string) (Region, error) {
	xmin, xmax, err := ParseRange(re)
	if err != nil {
		return Region{}, err
	}
	ymin, ymax, err := ParseRange(im)
	if err != nil {
		return Region{}, err
	}
	return Region{Xmin: xmin, Xmax: xmax, Ymin: ymin, Ymax: ymax}, nil
}

// ParseDepthResolution parses the integer depth and resolution arguments.
func ParseDepthResolution(depth, res string) (int, float64, error) {
	d, err := strconv.Atoi(strings.TrimSpace(depth))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: depth %q: %v", ErrInvalidArguments, depth, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(res))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: resolution %q: %v", ErrInvalidArguments, res, err)
	}
	return d, float64(r), nil
}

// ParseSize parses a "WxH" bounding box such as "1920x1080".
func ParseSize(s string) (w, h float64, err error) {
	a, b, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: size %q: want WxH", ErrInvalidArguments, s)
	}
	w, err = strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q: %v", ErrInvalidArguments, s, err)
	}
	h, err = strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: size %q: %v", ErrInvalidArguments, s, err)
	}
	if !(w > 0) || !(h > 0) {
		return 0, 0, fmt.Errorf("%w: size %q: dimensions must be positive", ErrInvalidArguments, s)
	}
	return w, h, nil
}
