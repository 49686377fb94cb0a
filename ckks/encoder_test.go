package ckks_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/ckkscore/ckks"
	"github.com/tuneinsight/ckkscore/rlwe"
)

func testEncoderParams(t *testing.T) rlwe.Parameters {
	t.Helper()
	params, err := rlwe.NewParametersFromLiteral(rlwe.ParametersLiteral{
		LogN:     4,
		LogScale: 20,
		LogQ:     80,
		LogP:     40,
		L:        4,
	})
	require.NoError(t, err)
	return params
}

func TestGroupDegroupIndexRoundTrip(t *testing.T) {
	params := testEncoderParams(t)
	enc := ckks.NewEncoder(params)
	prec := params.KsiPrecision()

	vals := cplx([]complex128{1 + 1i, 2 - 3i, 0.5, -1}, prec)

	g := enc.GroupIndex(vals)
	require.Len(t, g, 2*len(vals))

	back := enc.DegroupIndex(g)
	requireApprox(t, []complex128{1 + 1i, 2 - 3i, 0.5, -1}, back, 1e-9)
}

func TestEncodeDecodeIdempotence(t *testing.T) {
	params := testEncoderParams(t)
	enc := ckks.NewEncoder(params)
	prec := params.KsiPrecision()

	vals := cplx([]complex128{3 + 2i, -1.5 + 0.25i}, prec)

	msg := enc.EncodeSlots(vals, 1)
	require.Equal(t, len(vals), msg.Slots)
	require.Equal(t, 1, msg.Level)

	got := enc.DecodeSlots(msg)
	requireApprox(t, []complex128{3 + 2i, -1.5 + 0.25i}, got, math.Pow(2, -10))
}

func TestEncodeDecodeSingleSlot(t *testing.T) {
	params := testEncoderParams(t)
	enc := ckks.NewEncoder(params)
	prec := params.KsiPrecision()

	vals := cplx([]complex128{0.125}, prec)
	msg := enc.EncodeSlots(vals, 2)
	got := enc.DecodeSlots(msg)

	requireApprox(t, []complex128{0.125}, got, math.Pow(2, -10))
}
