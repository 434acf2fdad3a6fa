package testing

import (
	"fmt"
	"reflect"

	"github.com/scigolib/hdf5"
)

// Entry is one dataset of a Fixture. Exactly one of Floats, Ints or Values is
// set. Values is a typed slice (e.g. []int8) written with datatype Type.
type Entry struct {
	Path   string
	Floats []float64
	Ints   []int32

	Type   hdf5.Datatype
	Values any
}

// Fixture describes an HDF5 file to be written for a test.
// Groups are created in order, so parents must precede children.
type Fixture struct {
	Groups   []string
	Datasets []Entry
}

// Write creates filename (truncating it) with the fixture's layout.
func (fx Fixture) Write(filename string) error {
	fw, err := hdf5.CreateForWrite(filename, hdf5.CreateTruncate)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}

	for _, g := range fx.Groups {
		if _, err := fw.CreateGroup(g); err != nil {
			_ = fw.Close()
			return fmt.Errorf("create group %s: %w", g, err)
		}
	}

	for _, e := range fx.Datasets {
		if err := writeEntry(fw, e); err != nil {
			_ = fw.Close()
			return err
		}
	}

	return fw.Close()
}

func writeEntry(fw *hdf5.FileWriter, e Entry) error {
	var (
		dw  *hdf5.DatasetWriter
		err error
	)
	switch {
	case e.Values != nil:
		n := reflect.ValueOf(e.Values).Len()
		dw, err = fw.CreateDataset(e.Path, e.Type, []uint64{uint64(n)})
		if err == nil {
			err = dw.Write(e.Values)
		}
	case e.Ints != nil:
		dw, err = fw.CreateDataset(e.Path, hdf5.Int32, []uint64{uint64(len(e.Ints))})
		if err == nil {
			err = dw.Write(e.Ints)
		}
	case e.Floats != nil:
		dw, err = fw.CreateDataset(e.Path, hdf5.Float64, []uint64{uint64(len(e.Floats))})
		if err == nil {
			err = dw.Write(e.Floats)
		}
	default:
		return fmt.Errorf("dataset %s has no values", e.Path)
	}
	if err != nil {
		return fmt.Errorf("write dataset %s: %w", e.Path, err)
	}
	return nil
}
