package denovo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	h5test "github.com/scigolib/denovo/internal/testing"
)

func TestLoadParameters(t *testing.T) {
	g := h5test.NewGroup("denovo",
		h5test.Floats("mesh_x", 0, 1, 2),
		h5test.Floats("flux", 1, 2, 3, 4),
		h5test.Strings("title", "slab"),
		h5test.Floats("source", 1),
		h5test.Floats("angular_flux", 9),
		h5test.Floats("block", 0),
		h5test.Floats("num_groups", 2),
		h5test.NewGroup("db", h5test.NewGroup("hdf5_db", h5test.Floats("flux", 1))),
	)

	p, err := loadParameters(g)
	require.NoError(t, err)
	require.Equal(t, []string{"mesh_x", "title", "num_groups"}, p.Keys())
	require.Equal(t, 3, p.Len())

	x, ok := p.Floats("mesh_x")
	require.True(t, ok)
	require.Equal(t, []float64{0, 1, 2}, x)

	title, ok := p.Strings("title")
	require.True(t, ok)
	require.Equal(t, []string{"slab"}, title)

	n, ok := p.Scalar("num_groups")
	require.True(t, ok)
	require.Equal(t, 2.0, n)

	for _, key := range []string{"flux", "source", "angular_flux", "block", "db"} {
		require.False(t, p.Has(key), key)
	}
}

func TestLoadParameters_TypedAccessMismatch(t *testing.T) {
	p, err := loadParameters(h5test.NewGroup("denovo",
		h5test.Strings("title", "slab"),
		h5test.Floats("mesh_x", 0, 1),
	))
	require.NoError(t, err)

	_, ok := p.Floats("title")
	require.False(t, ok)
	_, ok = p.Strings("mesh_x")
	require.False(t, ok)
	_, ok = p.Scalar("mesh_x")
	require.False(t, ok, "two values are not a scalar")
	_, ok = p.Get("missing")
	require.False(t, ok)
}

func TestLoadParameters_UnreadableDataset(t *testing.T) {
	cause := errors.New("corrupt layout")
	_, err := loadParameters(h5test.NewGroup("denovo",
		h5test.Floats("mesh_x", 0, 1),
		h5test.Broken("mesh_y", cause),
	))
	require.Error(t, err)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "mesh_y")
}

func TestLoadParameters_SkippedUnreadableField(t *testing.T) {
	// Excluded datasets are never read.
	p, err := loadParameters(h5test.NewGroup("denovo",
		h5test.Broken("flux", errors.New("huge chunked dataset")),
	))
	require.NoError(t, err)
	require.Zero(t, p.Len())
}

func TestParameters_KeysIsACopy(t *testing.T) {
	p := newParameters()
	p.set("a", []float64{1})
	keys := p.Keys()
	keys[0] = "changed"
	require.Equal(t, []string{"a"}, p.Keys())
}
