// Package denovo reads HDF5 output of the Denovo radiation transport code.
//
// A Denovo file holds a "denovo" (or "denovo-forward") group at its root with
// the mesh coordinate arrays (mesh_x, mesh_y, mesh_z), an optional energy
// group list (mesh_g), field data such as flux and source, and a field
// database group (db/hdf5_db) whose scalar datasets flag which fields exist.
//
// Load parses such a file into a Dataset: its parameters, domain edges, field
// list, hexahedral mesh and field units.
//
//	if !denovo.IsValid("slab.out.h5") {
//	    return errors.New("not a Denovo file")
//	}
//	ds, err := denovo.Load("slab.out.h5")
//	if err != nil {
//	    return err
//	}
//	defer ds.Close()
package denovo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/batchatco/go-thrower"

	"github.com/scigolib/denovo/internal/h5"
	"github.com/scigolib/denovo/internal/utils"
)

// Dataset defaults.
const (
	DefaultDatasetType = "denovo"
	Suffix             = ".out.h5"
	Geometry           = "cartesian"
)

// placeholderDimensions is reported as DomainDimensions regardless of the mesh
// resolution. Cell counts come from the mesh.
var placeholderDimensions = [3]int{2, 2, 2}

// State is the construction stage of a Dataset.
type State int

// Construction stages, entered strictly in this order.
const (
	StateUnopened State = iota
	StateValidated
	StateParametersLoaded
	StateIndexBuilt
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUnopened:
		return "unopened"
	case StateValidated:
		return "validated"
	case StateParametersLoaded:
		return "parameters loaded"
	case StateIndexBuilt:
		return "index built"
	case StateReady:
		return "ready"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Dataset is a parsed Denovo output file.
// The file stays open until Close.
type Dataset struct {
	ParameterFilename string
	UniqueIdentifier  string
	StorageFilename   string
	DatasetType       string
	MarkerGroup       string

	Parameters       *Parameters
	DomainLeftEdge   []float64 // Empty when the file has no coordinates.
	DomainRightEdge  []float64
	DomainDimensions [3]int
	Dimensionality   int
	Periodicity      [3]bool
	Geometry         string

	EnergyGroups []int
	FluidTypes   []string
	Units        CodeUnits

	// Denovo solutions are steady state and non-cosmological.
	CurrentTime            float64
	CosmologicalSimulation bool
	CurrentRedshift        float64
	OmegaLambda            float64
	OmegaMatter            float64
	HubbleConstant         float64

	state     State
	tree      h5.Tree
	index     *Index
	fieldInfo *FieldInfo
	closed    bool
}

// Load opens and parses a Denovo output file.
//
// Construction runs validation, parameter loading, index building and field
// registration in order. Any failure aborts it, closes the file and returns
// no dataset. A panic inside the HDF5 reader is reported as ErrInvalidFormat.
func Load(filename string, opts ...Option) (*Dataset, error) {
	cfg := newConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, utils.WrapPathError(filename, "invalid options", err)
	}

	tree, err := openTree(filename)
	if err != nil {
		return nil, utils.WrapPathError(filename, "open failed", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	return load(filename, tree, cfg)
}

func load(filename string, tree h5.Tree, cfg *config) (ds *Dataset, err error) {
	ds = &Dataset{
		ParameterFilename: filename,
		UniqueIdentifier:  filename,
		StorageFilename:   cfg.storageFilename,
		DatasetType:       cfg.datasetType,
		Geometry:          Geometry,
		Units:             resolveCodeUnits(cfg.unitsOverride),
		state:             StateUnopened,
		tree:              tree,
	}

	defer func() {
		// RecoverError passes reader panics through; they surface here.
		if r := recover(); r != nil {
			err = utils.WrapPathError(filename, "reader panic",
				fmt.Errorf("%w: %v", ErrInvalidFormat, r))
		}
		if err != nil {
			_ = tree.Close()
			ds = nil
		}
	}()
	defer thrower.RecoverError(&err)

	ds.validate()
	ds.parseParameterFile()
	ds.buildIndex()
	ds.setupFieldInfo()

	return ds, nil
}

func (ds *Dataset) validate() {
	marker, ok := findMarker(ds.tree.Root())
	if !ok {
		thrower.Throw(utils.WrapPathError(ds.ParameterFilename, "validate", ErrInvalidFormat))
	}
	ds.MarkerGroup = marker
	ds.state = StateValidated
}

func (ds *Dataset) parseParameterFile() {
	g, err := h5.LookupGroup(ds.tree.Root(), ds.MarkerGroup)
	if err != nil {
		thrower.Throw(utils.WrapPathError(ds.ParameterFilename, "parameter load failed",
			fmt.Errorf("%w: %w", ErrMissingMarker, err)))
	}

	ds.Parameters, err = loadParameters(g)
	thrower.ThrowIfError(utils.WrapPathError(ds.ParameterFilename, "parameter load failed", err))

	ds.DomainLeftEdge, ds.DomainRightEdge, err = domainEdges(ds.Parameters)
	thrower.ThrowIfError(utils.WrapPathError(ds.ParameterFilename, "domain edge calculation failed", err))

	ds.DomainDimensions = placeholderDimensions
	ds.Dimensionality = len(ds.DomainDimensions)

	ds.EnergyGroups, err = energyGroups(ds.Parameters)
	thrower.ThrowIfError(utils.WrapPathError(ds.ParameterFilename, "energy group load failed", err))
	ds.FluidTypes = fluidTypes(ds.EnergyGroups)

	ds.Periodicity = [3]bool{false, false, false}
	ds.CurrentTime = 0

	ds.state = StateParametersLoaded
}

func (ds *Dataset) buildIndex() {
	db, err := h5.LookupGroup(ds.tree.Root(), ds.MarkerGroup+"/"+fieldDBPath)
	thrower.ThrowIfError(utils.WrapPathError(ds.ParameterFilename, "field database lookup failed", err))

	ds.index, err = buildIndex(ds, db, ds.EnergyGroups)
	thrower.ThrowIfError(utils.WrapPathError(ds.ParameterFilename, "index build failed", err))

	ds.state = StateIndexBuilt
}

func (ds *Dataset) setupFieldInfo() {
	ds.fieldInfo = newFieldInfo(ds.index.FieldList)
	ds.state = StateReady
}

// State returns the construction stage. A dataset returned by Load is always ready.
func (ds *Dataset) State() State {
	return ds.state
}

// Index returns the field and mesh index.
func (ds *Dataset) Index() *Index {
	return ds.index
}

// FieldList returns the (type, name) pairs of every field in the file.
func (ds *Dataset) FieldList() []Field {
	return append([]Field(nil), ds.index.FieldList...)
}

// FieldInfo returns the field metadata container.
func (ds *Dataset) FieldInfo() *FieldInfo {
	return ds.fieldInfo
}

// FieldUnits returns the units of f with code units expanded, e.g. "1 / cm**2".
func (ds *Dataset) FieldUnits(f Field) (string, error) {
	expr, err := ds.fieldInfo.Units(f)
	if err != nil {
		return "", err
	}
	return ds.Units.Expand(expr), nil
}

// ReadField reads the values of field f.
//
// Field data lives in the marker group under the field name. Fields of the
// "denovo" type return the whole array. For an energy group type the array
// is split into one equal contiguous block per group in mesh_g order and the
// block of that group is returned.
func (ds *Dataset) ReadField(f Field) ([]float64, error) {
	if ds.closed {
		return nil, ErrClosed
	}
	f = ds.fieldInfo.Resolve(f)
	if _, ok := ds.fieldInfo.Lookup(f); !ok {
		return nil, fmt.Errorf("%s: %w", f, ErrUnknownField)
	}

	d, err := h5.LookupDataset(ds.tree.Root(), ds.MarkerGroup+"/"+f.Name)
	if err != nil {
		return nil, utils.WrapPathError(ds.ParameterFilename, "field "+f.Name, err)
	}
	values, err := d.Read()
	if err != nil {
		return nil, utils.WrapPathError(ds.ParameterFilename, "field "+f.Name, err)
	}

	if f.Type == FieldTypeDenovo || len(ds.EnergyGroups) == 0 {
		return values, nil
	}
	return ds.groupBlock(f, values)
}

func (ds *Dataset) groupBlock(f Field, values []float64) ([]float64, error) {
	pos := -1
	for i, g := range ds.EnergyGroups {
		if GroupFieldType(g) == f.Type {
			pos = i
			break
		}
	}
	if pos < 0 {
		return nil, fmt.Errorf("%s: %w", f, ErrUnknownField)
	}

	n := len(ds.EnergyGroups)
	if len(values)%n != 0 {
		return nil, fmt.Errorf("field %s: %d values do not split into %d energy groups", f.Name, len(values), n)
	}
	size := len(values) / n
	return values[pos*size : (pos+1)*size], nil
}

// Close releases the file handle. It is safe to call Close multiple times.
func (ds *Dataset) Close() error {
	if ds.closed {
		return nil
	}
	ds.closed = true
	return ds.tree.Close()
}

// String summarizes the dataset in one line.
func (ds *Dataset) String() string {
	return fmt.Sprintf("%s (%s, %d parameters, %d fields, types [%s])",
		ds.ParameterFilename, ds.DatasetType, ds.Parameters.Len(),
		len(ds.index.FieldList), strings.Join(ds.FluidTypes, " "))
}
