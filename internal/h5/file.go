package h5

import (
	"errors"
	"path"

	"github.com/batchatco/go-native-netcdf/netcdf/api"
	ncdf5 "github.com/batchatco/go-native-netcdf/netcdf/hdf5"
	"github.com/scigolib/hdf5"

	"github.com/scigolib/denovo/internal/utils"
)

// File is a Tree backed by a pure Go HDF5 reader.
//
// Datasets are read with github.com/scigolib/hdf5, which converts only 32 and
// 64 bit numbers and fixed-length strings. Other datatypes (8 and 16 bit
// integers, variable-length strings) are read through a second, typed reader
// opened on the same file the first time one is needed.
type File struct {
	f        *hdf5.File
	filename string
	root     Group

	typed    api.Group
	typedErr error
}

// Open opens an HDF5 file read-only.
func Open(filename string) (*File, error) {
	f, err := hdf5.Open(filename)
	if err != nil {
		return nil, utils.WrapPathError(filename, "hdf5 open failed", err)
	}
	file := &File{f: f, filename: filename}
	file.root = group{g: f.Root(), path: "/", file: file}
	return file, nil
}

// Root returns the root group.
func (f *File) Root() Group {
	return f.root
}

// Close releases the handle. It is safe to call Close multiple times.
func (f *File) Close() error {
	if f.typed != nil {
		f.typed.Close()
		f.typed = nil
	}
	return f.f.Close()
}

// SuperblockVersion reports the HDF5 superblock format version.
func (f *File) SuperblockVersion() uint8 {
	return f.f.SuperblockVersion()
}

// typedValues reads the dataset at p with the typed reader. The result is
// whatever Go value that reader produces: a scalar, a typed slice or nested
// slices for multi-dimensional data.
func (f *File) typedValues(p string) (any, error) {
	if f.typed == nil && f.typedErr == nil {
		f.typed, f.typedErr = ncdf5.Open(f.filename)
	}
	if f.typedErr != nil {
		return nil, utils.WrapPathError(f.filename, "typed reader open failed", f.typedErr)
	}

	dir, name := path.Split(p)
	g := f.typed
	if dir = path.Clean(dir); dir != "/" {
		sub, err := f.typed.GetGroup(dir)
		if err != nil {
			return nil, utils.WrapPathError(f.filename, "group "+dir, err)
		}
		defer sub.Close()
		g = sub
	}

	v, err := g.GetVariable(name)
	if err != nil {
		return nil, utils.WrapPathError(f.filename, "dataset "+p, err)
	}
	return v.Values, nil
}

// group adapts *hdf5.Group so its children are exposed as h5 objects.
type group struct {
	g    *hdf5.Group
	path string
	file *File
}

func (g group) Name() string {
	return g.g.Name()
}

func (g group) Children() []Object {
	children := g.g.Children()
	out := make([]Object, 0, len(children))
	for _, c := range children {
		switch v := c.(type) {
		case *hdf5.Group:
			out = append(out, group{g: v, path: path.Join(g.path, v.Name()), file: g.file})
		case *hdf5.Dataset:
			out = append(out, dataset{d: v, path: path.Join(g.path, v.Name()), file: g.file})
		default:
			out = append(out, c)
		}
	}
	return out
}

// dataset adapts *hdf5.Dataset, falling back to the typed reader for
// datatypes the primary reader cannot convert.
type dataset struct {
	d    *hdf5.Dataset
	path string
	file *File
}

func (d dataset) Name() string {
	return d.d.Name()
}

func (d dataset) Read() ([]float64, error) {
	values, err := d.d.Read()
	if err == nil {
		return values, nil
	}
	v, typedErr := d.file.typedValues(d.path)
	if typedErr != nil {
		return nil, errors.Join(err, typedErr)
	}
	return Float64s(v)
}

func (d dataset) ReadStrings() ([]string, error) {
	values, err := d.d.ReadStrings()
	if err == nil {
		return values, nil
	}
	v, typedErr := d.file.typedValues(d.path)
	if typedErr != nil {
		return nil, errors.Join(err, typedErr)
	}
	return StringValues(v)
}

var (
	_ Tree    = (*File)(nil)
	_ Group   = group{}
	_ Dataset = dataset{}
)
