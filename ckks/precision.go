package ckks

import (
	"math/cmplx"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/ckkscore/bignum"
)

// PrecisionStats summarises the component-wise absolute decoding error
// between an expected and an actually-decrypted slot vector.
type PrecisionStats struct {
	MeanAbsoluteError float64
	MaxAbsoluteError  float64
	MinAbsoluteError  float64
	StdAbsoluteError  float64
}

// ComputePrecisionStats compares want against got slot-by-slot and reports
// summary statistics of the absolute error, via
// github.com/montanaflynn/stats.
func ComputePrecisionStats(want, got []*bignum.Complex) (*PrecisionStats, error) {
	errs := make(stats.Float64Data, len(want))
	for i := range want {
		d := want[i].ToComplex128() - got[i].ToComplex128()
		errs[i] = cmplx.Abs(d)
	}

	mean, err := errs.Mean()
	if err != nil {
		return nil, err
	}
	max, err := errs.Max()
	if err != nil {
		return nil, err
	}
	min, err := errs.Min()
	if err != nil {
		return nil, err
	}
	std, err := errs.StandardDeviation()
	if err != nil {
		return nil, err
	}

	return &PrecisionStats{
		MeanAbsoluteError: mean,
		MaxAbsoluteError:  max,
		MinAbsoluteError:  min,
		StdAbsoluteError:  std,
	}, nil
}
