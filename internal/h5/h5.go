// Package h5 is the view of an HDF5 file the denovo reader works against:
// a tree of groups and datasets addressed by slash-separated paths.
//
// The production tree is backed by github.com/scigolib/hdf5 (see Open).
// Unit tests substitute an in-memory tree from internal/testing.
package h5

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors.
var (
	ErrNotFound   = errors.New("object not found")
	ErrNotGroup   = errors.New("object is not a group")
	ErrNotDataset = errors.New("object is not a dataset")

	// ErrUnsupportedType is returned when dataset values cannot be converted
	// to the requested Go representation.
	ErrUnsupportedType = errors.New("unsupported datatype")
)

// Object is any named node in the file tree.
type Object interface {
	Name() string
}

// Group is a node that contains other nodes.
type Group interface {
	Object
	Children() []Object
}

// Dataset is a leaf node holding values.
// Read converts numeric values to float64; ReadStrings reads fixed-length strings.
type Dataset interface {
	Object
	Read() ([]float64, error)
	ReadStrings() ([]string, error)
}

// Tree is an open file: a root group plus the handle that keeps it readable.
type Tree interface {
	Root() Group
	Close() error
}

// SplitPath splits a path into its components.
// Leading and trailing slashes are ignored and empty components are removed.
//
// Examples:
//   - "/" -> []string{}
//   - "/denovo" -> []string{"denovo"}
//   - "/denovo/db/hdf5_db" -> []string{"denovo", "db", "hdf5_db"}
func SplitPath(path string) []string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Child returns the direct child of g called name.
func Child(g Group, name string) (Object, bool) {
	for _, c := range g.Children() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Lookup resolves path starting at root.
func Lookup(root Group, path string) (Object, error) {
	var cur Object = root
	for _, part := range SplitPath(path) {
		g, ok := cur.(Group)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrNotGroup)
		}
		next, ok := Child(g, part)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		cur = next
	}
	return cur, nil
}

// LookupGroup resolves path and requires the result to be a group.
func LookupGroup(root Group, path string) (Group, error) {
	obj, err := Lookup(root, path)
	if err != nil {
		return nil, err
	}
	g, ok := obj.(Group)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotGroup)
	}
	return g, nil
}

// LookupDataset resolves path and requires the result to be a dataset.
func LookupDataset(root Group, path string) (Dataset, error) {
	obj, err := Lookup(root, path)
	if err != nil {
		return nil, err
	}
	d, ok := obj.(Dataset)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotDataset)
	}
	return d, nil
}

// Datasets returns the datasets directly under g in listing order.
// Nested groups are not descended into.
func Datasets(g Group) []Dataset {
	var out []Dataset
	for _, c := range g.Children() {
		if d, ok := c.(Dataset); ok {
			out = append(out, d)
		}
	}
	return out
}

// Walk traverses the tree below root, calling fn for each object.
// Objects are visited in depth-first order starting from the root group.
func Walk(root Group, fn func(path string, obj Object)) {
	walkGroup(root, "/", fn)
}

func walkGroup(g Group, currentPath string, fn func(string, Object)) {
	fn(currentPath, g)

	for _, child := range g.Children() {
		childPath := currentPath + child.Name()

		if childGroup, ok := child.(Group); ok {
			walkGroup(childGroup, childPath+"/", fn)
		} else {
			fn(childPath, child)
		}
	}
}
