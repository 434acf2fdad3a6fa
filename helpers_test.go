package denovo

import (
	"testing"

	"github.com/scigolib/denovo/internal/h5"
	h5test "github.com/scigolib/denovo/internal/testing"
)

// treeSpec describes an in-memory Denovo file.
type treeSpec struct {
	marker string      // Marker group name, "denovo" when empty.
	params []h5.Object // Datasets directly under the marker group.
	flags  []h5.Object // Datasets of the field database.
	noDB   bool        // Omit db/hdf5_db.
}

func buildTree(spec treeSpec) *h5test.MockTree {
	marker := spec.marker
	if marker == "" {
		marker = "denovo"
	}
	g := h5test.NewGroup(marker, spec.params...)
	if !spec.noDB {
		g.Add(h5test.NewGroup("db", h5test.NewGroup("hdf5_db", spec.flags...)))
	}
	return h5test.NewTree(g)
}

// slabParams is a 2x1x1 cell slab: mesh_x=[0,1,2], mesh_y=[0,1], mesh_z=[0,5].
func slabParams(extra ...h5.Object) []h5.Object {
	return append([]h5.Object{
		h5test.Floats("mesh_x", 0, 1, 2),
		h5test.Floats("mesh_y", 0, 1),
		h5test.Floats("mesh_z", 0, 5),
	}, extra...)
}

// standardFlags marks flux, source and ww_lower as written; uncflux is off.
func standardFlags() []h5.Object {
	return []h5.Object{
		h5test.Floats("angular_mesh", 1),
		h5test.Floats("block", 1),
		h5test.Floats("flux", 1),
		h5test.Floats("source", 1),
		h5test.Floats("uncflux", 0),
		h5test.Floats("ww_lower", 1),
	}
}

// useTree makes openTree return tree for the duration of the test.
func useTree(t *testing.T, tree h5.Tree) {
	t.Helper()
	orig := openTree
	openTree = func(string) (h5.Tree, error) { return tree, nil }
	t.Cleanup(func() { openTree = orig })
}

func fieldNames(fields []Field, fieldType string) []string {
	var names []string
	for _, f := range fields {
		if f.Type == fieldType {
			names = append(names, f.Name)
		}
	}
	return names
}
