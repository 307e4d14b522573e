package bitmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navicust/bitmap"
)

func mustFrom(t *testing.T, data []bool, r, c int) bitmap.Bitmap {
	t.Helper()
	b, err := bitmap.From(data, r, c)
	require.NoError(t, err)

	return b
}

func TestFromRejectsBadShape(t *testing.T) {
	_, err := bitmap.From([]bool{true, false}, 2, 2)
	require.ErrorIs(t, err, bitmap.ErrBadShape)

	_, err = bitmap.From([]bool{true}, 0, 1)
	require.ErrorIs(t, err, bitmap.ErrBadShape)
}

func TestRot90L(t *testing.T) {
	// 2x3:
	// T F T
	// T T F
	b := mustFrom(t, []bool{true, false, true, true, true, false}, 2, 3)
	r := b.Rot90()
	require.Equal(t, 3, r.Rows)
	require.Equal(t, 2, r.Cols)
	// Expected 3x2 clockwise rotation:
	// T T
	// T F
	// F T
	want := mustFrom(t, []bool{true, true, true, false, false, true}, 3, 2)
	require.True(t, r.Equal(want))
}

func TestRot90FourTimesIsIdentity(t *testing.T) {
	b := mustFrom(t, []bool{true, false, true, true, true, false}, 2, 3)
	r := b
	for i := 0; i < 4; i++ {
		r = r.Rot90()
	}
	require.True(t, b.Equal(r))
}

func TestTrim(t *testing.T) {
	// 4x4 grid with a 2x3 true region offset by (1,1).
	data := make([]bool, 16)
	set := func(r, c int) { data[r*4+c] = true }
	set(1, 1)
	set(1, 2)
	set(2, 3)
	b := mustFrom(t, data, 4, 4)
	trimmed := b.Trim()
	require.Equal(t, 2, trimmed.Rows)
	require.Equal(t, 3, trimmed.Cols)
}

func TestTrimAllFalse(t *testing.T) {
	b := mustFrom(t, make([]bool, 9), 3, 3)
	trimmed := b.Trim()
	require.Equal(t, 0, trimmed.Rows)
	require.Equal(t, 0, trimmed.Cols)
}

func TestSubarrayOutOfRange(t *testing.T) {
	b := mustFrom(t, make([]bool, 9), 3, 3)
	_, err := b.Subarray(2, 2, 2, 2)
	require.ErrorIs(t, err, bitmap.ErrOutOfRange)
}

func TestCountTrue(t *testing.T) {
	b := mustFrom(t, []bool{true, false, true, true}, 2, 2)
	require.Equal(t, 3, b.CountTrue())
}

func TestFingerprintStableAndDistinguishing(t *testing.T) {
	a := mustFrom(t, []bool{true, false, false, true}, 2, 2)
	b := mustFrom(t, []bool{true, false, false, true}, 2, 2)
	c := mustFrom(t, []bool{false, true, true, false}, 2, 2)
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestCopyIsIndependent(t *testing.T) {
	a := mustFrom(t, []bool{true, false}, 1, 2)
	c := a.Copy()
	c.Cells[0] = false
	require.True(t, a.Cells[0])
}
