package denovo

import (
	"path/filepath"

	"github.com/scigolib/denovo/internal/h5"
	"github.com/scigolib/denovo/internal/utils"
)

// fieldDBPath is the group, relative to the marker group, whose datasets flag
// which fields the run produced.
const fieldDBPath = "db/hdf5_db"

// deferredFields are listed in the field database but cannot be read yet.
// "block" is dropped always, "angular_mesh" when present.
var deferredFields = map[string]bool{
	"block":        true,
	"angular_mesh": true,
}

// Index is the field and mesh index of a dataset.
type Index struct {
	DatasetType   string
	IndexFilename string // The index file is the dataset file itself.
	Directory     string
	FieldList     []Field
	Meshes        []*Mesh
	NumGrids      int
}

// buildIndex enumerates fields and builds the mesh. groups are the energy
// group numbers; without groups a single "denovo" field type is used.
func buildIndex(ds *Dataset, db h5.Group, groups []int) (*Index, error) {
	idx := &Index{
		DatasetType:   ds.DatasetType,
		IndexFilename: ds.ParameterFilename,
		Directory:     filepath.Dir(ds.ParameterFilename),
		NumGrids:      1,
	}

	logger.Infof("There are %d energy groups", len(groups))

	names, err := activeFieldNames(db)
	if err != nil {
		return nil, err
	}
	idx.FieldList = fieldList(names, groups)

	mesh, err := newMesh(ds.ParameterFilename, ds.Parameters)
	if err != nil {
		return nil, utils.WrapError("mesh build failed", err)
	}
	if mesh != nil {
		idx.Meshes = []*Mesh{mesh}
	}

	return idx, nil
}

// activeFieldNames lists the datasets of db whose stored value is truthy, in
// listing order, without deferred fields.
func activeFieldNames(db h5.Group) ([]string, error) {
	var names []string
	for _, d := range h5.Datasets(db) {
		name := d.Name()
		if deferredFields[name] {
			continue
		}
		on, err := flagSet(d)
		if err != nil {
			return nil, utils.WrapError("field flag "+name, err)
		}
		if on {
			names = append(names, name)
		}
	}
	return names, nil
}

// flagSet reports whether a presence flag dataset is truthy: any non-zero
// number or any non-empty string.
func flagSet(d h5.Dataset) (bool, error) {
	v, err := readValue(d)
	if err != nil {
		return false, err
	}
	switch values := v.(type) {
	case []float64:
		for _, x := range values {
			if x != 0 {
				return true, nil
			}
		}
	case []string:
		for _, s := range values {
			if s != "" {
				return true, nil
			}
		}
	}
	return false, nil
}

// fieldList pairs names with each field type: one "egroup_NNN" type per
// energy group, or the fixed "denovo" type when there are no groups.
func fieldList(names []string, groups []int) []Field {
	if len(groups) == 0 {
		return withType(FieldTypeDenovo, names, nil)
	}
	var out []Field
	for _, g := range groups {
		out = withType(GroupFieldType(g), names, out)
	}
	return out
}

func withType(fieldType string, names []string, out []Field) []Field {
	for _, n := range names {
		out = append(out, Field{Type: fieldType, Name: n})
	}
	return out
}
