package denovo

import (
	"github.com/scigolib/denovo/internal/h5"
)

// Marker groups identifying Denovo output, in order of preference.
var markerGroups = []string{"denovo", "denovo-forward"}

// openTree opens filename for reading. Tests replace it with in-memory trees.
var openTree = func(filename string) (h5.Tree, error) {
	f, err := h5.Open(filename)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// IsValid reports whether filename is a Denovo output file: an HDF5 file whose
// root holds a "denovo" or "denovo-forward" group.
//
// Any failure to open or read the file counts as not valid. IsValid never
// returns an error and never panics.
func IsValid(filename string) bool {
	_, ok := MarkerGroup(filename)
	return ok
}

// MarkerGroup returns the marker group found at the root of filename,
// preferring "denovo" over "denovo-forward".
func MarkerGroup(filename string) (marker string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Infof("%s: reader panic while probing: %v", filename, r)
			marker, ok = "", false
		}
	}()

	tree, err := openTree(filename)
	if err != nil {
		logger.Infof("%s: not a Denovo file: %v", filename, err)
		return "", false
	}
	defer func() { _ = tree.Close() }()

	return findMarker(tree.Root())
}

func findMarker(root h5.Group) (string, bool) {
	for _, name := range markerGroups {
		if obj, ok := h5.Child(root, name); ok {
			if _, isGroup := obj.(h5.Group); isGroup {
				return name, true
			}
		}
	}
	return "", false
}
