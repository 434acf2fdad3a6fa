// Package testing provides an in-memory HDF5 tree for reader tests.
package testing

import (
	"errors"

	"github.com/scigolib/denovo/internal/h5"
)

// Errors returned by mock datasets read with the wrong accessor.
var (
	ErrNotNumeric = errors.New("mock: dataset is not numeric")
	ErrNotString  = errors.New("mock: dataset is not a string dataset")
)

// MockGroup is an in-memory h5.Group. Children keep insertion order.
type MockGroup struct {
	name     string
	children []h5.Object
}

// NewGroup creates a group holding children.
func NewGroup(name string, children ...h5.Object) *MockGroup {
	return &MockGroup{name: name, children: children}
}

// Add appends children and returns g for chaining.
func (g *MockGroup) Add(children ...h5.Object) *MockGroup {
	g.children = append(g.children, children...)
	return g
}

// Name implements h5.Object.
func (g *MockGroup) Name() string { return g.name }

// Children implements h5.Group.
func (g *MockGroup) Children() []h5.Object { return g.children }

// MockDataset is an in-memory h5.Dataset holding either numbers or strings.
type MockDataset struct {
	name    string
	floats  []float64
	strings []string
	err     error
	panics  any
}

// Floats creates a numeric dataset.
func Floats(name string, values ...float64) *MockDataset {
	if values == nil {
		values = []float64{}
	}
	return &MockDataset{name: name, floats: values}
}

// Strings creates a string dataset.
func Strings(name string, values ...string) *MockDataset {
	if values == nil {
		values = []string{}
	}
	return &MockDataset{name: name, strings: values}
}

// Broken creates a dataset whose reads fail with err.
func Broken(name string, err error) *MockDataset {
	return &MockDataset{name: name, err: err}
}

// Panics creates a dataset whose reads panic with v, as a reader does on
// corrupt metadata.
func Panics(name string, v any) *MockDataset {
	return &MockDataset{name: name, panics: v}
}

// Name implements h5.Object.
func (d *MockDataset) Name() string { return d.name }

// Read implements h5.Dataset.
func (d *MockDataset) Read() ([]float64, error) {
	if d.panics != nil {
		panic(d.panics)
	}
	if d.err != nil {
		return nil, d.err
	}
	if d.floats == nil {
		return nil, ErrNotNumeric
	}
	out := make([]float64, len(d.floats))
	copy(out, d.floats)
	return out, nil
}

// ReadStrings implements h5.Dataset.
func (d *MockDataset) ReadStrings() ([]string, error) {
	if d.panics != nil {
		panic(d.panics)
	}
	if d.err != nil {
		return nil, d.err
	}
	if d.strings == nil {
		return nil, ErrNotString
	}
	out := make([]string, len(d.strings))
	copy(out, d.strings)
	return out, nil
}

// MockTree is an in-memory h5.Tree that counts Close calls.
type MockTree struct {
	root   *MockGroup
	closes int
}

// NewTree creates a tree whose root group holds children.
func NewTree(children ...h5.Object) *MockTree {
	return &MockTree{root: NewGroup("/", children...)}
}

// Root implements h5.Tree.
func (t *MockTree) Root() h5.Group { return t.root }

// Close implements h5.Tree.
func (t *MockTree) Close() error {
	t.closes++
	return nil
}

// Closes reports how many times Close was called.
func (t *MockTree) Closes() int { return t.closes }
