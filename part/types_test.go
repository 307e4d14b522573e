package part_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navicust/part"
)

func TestLocationValidate(t *testing.T) {
	require.NoError(t, part.Location{Rotation: 0}.Validate())
	require.NoError(t, part.Location{Rotation: 3}.Validate())
	require.ErrorIs(t, part.Location{Rotation: 4}.Validate(), part.ErrInvalidRotation)
	require.ErrorIs(t, part.Location{Rotation: -1}.Validate(), part.ErrInvalidRotation)
}

func TestTriString(t *testing.T) {
	require.Equal(t, "yes", part.Yes.String())
	require.Equal(t, "no", part.No.String())
	require.Equal(t, "unspecified", part.Unspecified.String())
}

func TestPartMask(t *testing.T) {
	p := part.Part{}
	p.CompressedMask.Rows = 1
	p.UncompressedMask.Rows = 2
	require.Equal(t, 1, p.Mask(true).Rows)
	require.Equal(t, 2, p.Mask(false).Rows)
}

func TestTriJSONRoundTrip(t *testing.T) {
	for _, tri := range []part.Tri{part.Unspecified, part.Yes, part.No} {
		data, err := json.Marshal(tri)
		require.NoError(t, err)

		var got part.Tri
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, tri, got)
	}

	var empty part.Tri
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	require.Equal(t, part.Unspecified, empty)

	var bad part.Tri
	require.ErrorIs(t, json.Unmarshal([]byte(`"maybe"`), &bad), part.ErrBadTri)
}
