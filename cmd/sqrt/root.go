package main

import (
	"strconv"

	"github.com/neurlang/arith/sqrt"
	"github.com/pkg/errors"
)

// root formats the square root of arg.
func root(arg string, integer, checked bool) (string, error) {
	if integer {
		n, err := strconv.ParseUint(arg, 0, 32)
		if err != nil {
			return "", errors.Wrapf(err, "could not parse %q as uint32", arg)
		}
		return strconv.FormatUint(uint64(sqrt.Isqrt(uint32(n))), 10), nil
	}
	f, err := strconv.ParseFloat(arg, 32)
	if err != nil {
		return "", errors.Wrapf(err, "could not parse %q as float32", arg)
	}
	if !checked {
		return strconv.FormatFloat(float64(sqrt.Sqrt(float32(f))), 'g', -1, 32), nil
	}
	r, ok := sqrt.SqrtChecked(float32(f))
	if !ok {
		return "", errors.Errorf("%q is outside the square root domain", arg)
	}
	return strconv.FormatFloat(float64(r), 'g', -1, 32), nil
}
