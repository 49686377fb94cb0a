package rlwe

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLiteral() ParametersLiteral {
	return ParametersLiteral{LogN: 4, LogScale: 10, LogQ: 50, LogP: 20, L: 3}
}

func TestNewParametersFromLiteral(t *testing.T) {
	p, err := NewParametersFromLiteral(testLiteral())
	require.NoError(t, err)
	require.Equal(t, 16, p.N())
	require.Equal(t, 8, p.Nh())
	require.Equal(t, 3, p.LogNh())

	want := new(big.Int).Lsh(big.NewInt(1), 50)
	require.Equal(t, 0, p.QAt(1).Cmp(want))

	want2 := new(big.Int).Lsh(big.NewInt(1), 40)
	require.Equal(t, 0, p.QAt(2).Cmp(want2))
}

func TestNewParametersFromLiteralRejectsExhaustedChain(t *testing.T) {
	lit := testLiteral()
	lit.LogQ = 5
	_, err := NewParametersFromLiteral(lit)
	require.Error(t, err)
}

func TestRotGroupIsPermutationOfOddResidues(t *testing.T) {
	p, err := NewParametersFromLiteral(testLiteral())
	require.NoError(t, err)

	for s := 0; s <= p.LogNh(); s++ {
		slots := 1 << s
		mod := 4 * slots
		seen := make(map[int]bool)
		row := p.RotGroup(s)
		require.Len(t, row, slots)
		for _, v := range row {
			require.Equal(t, 1, v%2, "rotGroup entries must be odd residues")
			require.True(t, v > 0 && v < mod)
			require.False(t, seen[v], "rotGroup must not repeat a residue")
			seen[v] = true
		}
	}
}

func TestRotGroupInvIsNegation(t *testing.T) {
	p, err := NewParametersFromLiteral(testLiteral())
	require.NoError(t, err)

	s := p.LogNh()
	slots := 1 << s
	mod := 4 * slots
	row := p.RotGroup(s)
	rowInv := p.RotGroupInv(s)
	for i := range row {
		require.Equal(t, 0, (row[i]+rowInv[i])%mod)
	}
}

func TestRotationExponentMatchesRowLogNh(t *testing.T) {
	p, err := NewParametersFromLiteral(testLiteral())
	require.NoError(t, err)

	for k := 0; k < p.LogNh(); k++ {
		require.Equal(t, p.RotGroup(p.LogNh())[1<<k], p.RotationExponent(k))
	}
}
