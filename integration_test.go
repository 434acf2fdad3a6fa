package denovo

import (
	"path/filepath"
	"testing"

	"github.com/scigolib/hdf5"
	"github.com/stretchr/testify/require"

	"github.com/scigolib/denovo/internal/h5"
	h5test "github.com/scigolib/denovo/internal/testing"
)

// writeSlab writes a Denovo-style file with the slab mesh and the given flags.
func writeSlab(t *testing.T, marker string, groups []float64, flags map[string]int32) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "slab"+Suffix)
	root := "/" + marker
	fx := h5test.Fixture{
		Groups: []string{root, root + "/db", root + "/db/hdf5_db"},
		Datasets: []h5test.Entry{
			{Path: root + "/mesh_x", Floats: []float64{0, 1, 2}},
			{Path: root + "/mesh_y", Floats: []float64{0, 1}},
			{Path: root + "/mesh_z", Floats: []float64{0, 5}},
			{Path: root + "/flux", Floats: []float64{1, 2, 3, 4}},
			{Path: root + "/block", Ints: []int32{0, 0}},
		},
	}
	if groups != nil {
		fx.Datasets = append(fx.Datasets, h5test.Entry{Path: root + "/mesh_g", Floats: groups})
	}
	for name, v := range flags {
		fx.Datasets = append(fx.Datasets, h5test.Entry{Path: root + "/db/hdf5_db/" + name, Ints: []int32{v}})
	}
	require.NoError(t, fx.Write(path))
	return path
}

func TestIntegration_IsValid(t *testing.T) {
	require.True(t, IsValid(writeSlab(t, "denovo", nil, map[string]int32{"flux": 1})))
	require.True(t, IsValid(writeSlab(t, "denovo-forward", nil, map[string]int32{"flux": 1})))

	other := filepath.Join(t.TempDir(), "other.h5")
	require.NoError(t, h5test.Fixture{
		Groups:   []string{"/results"},
		Datasets: []h5test.Entry{{Path: "/results/x", Floats: []float64{1}}},
	}.Write(other))
	require.False(t, IsValid(other))
}

func TestIntegration_Load(t *testing.T) {
	path := writeSlab(t, "denovo", nil, map[string]int32{
		"flux":         1,
		"source":       1,
		"uncflux":      0,
		"block":        1,
		"angular_mesh": 1,
	})

	ds, err := Load(path)
	require.NoError(t, err)
	defer func() { _ = ds.Close() }()

	require.ElementsMatch(t, []string{"mesh_x", "mesh_y", "mesh_z"}, ds.Parameters.Keys())
	require.Equal(t, []float64{0, 0, 0}, ds.DomainLeftEdge)
	require.Equal(t, []float64{2, 1, 5}, ds.DomainRightEdge)
	require.ElementsMatch(t, []Field{{"denovo", "flux"}, {"denovo", "source"}}, ds.FieldList())
	require.Equal(t, 2, ds.Index().Meshes[0].NumCells())

	values, err := ds.ReadField(Field{"denovo", "flux"})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, values)
}

func TestIntegration_LoadEnergyGroups(t *testing.T) {
	path := writeSlab(t, "denovo", []float64{1, 2}, map[string]int32{"flux": 1, "block": 1})

	ds, err := Load(path)
	require.NoError(t, err)
	defer func() { _ = ds.Close() }()

	require.Equal(t, []Field{{"egroup_001", "flux"}, {"egroup_002", "flux"}}, ds.FieldList())

	values, err := ds.ReadField(Field{"egroup_002", "flux"})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, values)
}

func TestIntegration_LoadNotDenovo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.h5")
	require.NoError(t, h5test.Fixture{Groups: []string{"/results"}}.Write(path))

	ds, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidFormat)
	require.Nil(t, ds)

	_, err = Load(filepath.Join(t.TempDir(), "missing.out.h5"))
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestIntegration_SmallIntegerTypes(t *testing.T) {
	tests := []struct {
		name  string
		dtype hdf5.Datatype
		on    any
		off   any
		param any
	}{
		{"int8", hdf5.Int8, []int8{1}, []int8{0}, []int8{-3, 4}},
		{"uint8", hdf5.Uint8, []uint8{1}, []uint8{0}, []uint8{3, 4}},
		{"int16", hdf5.Int16, []int16{1}, []int16{0}, []int16{-3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "flags"+Suffix)
			fx := h5test.Fixture{
				Groups: []string{"/denovo", "/denovo/db", "/denovo/db/hdf5_db"},
				Datasets: []h5test.Entry{
					{Path: "/denovo/mesh_x", Floats: []float64{0, 1, 2}},
					{Path: "/denovo/mesh_y", Floats: []float64{0, 1}},
					{Path: "/denovo/mesh_z", Floats: []float64{0, 5}},
					{Path: "/denovo/num_sets", Type: tt.dtype, Values: tt.param},
					{Path: "/denovo/db/hdf5_db/flux", Type: tt.dtype, Values: tt.on},
					{Path: "/denovo/db/hdf5_db/source", Type: tt.dtype, Values: tt.off},
				},
			}
			require.NoError(t, fx.Write(path))

			ds, err := Load(path)
			require.NoError(t, err)
			defer func() { _ = ds.Close() }()

			require.Equal(t, []Field{{"denovo", "flux"}}, ds.FieldList())

			values, ok := ds.Parameters.Floats("num_sets")
			require.True(t, ok)
			want, err := h5.Float64s(tt.param)
			require.NoError(t, err)
			require.Equal(t, want, values)
		})
	}
}
