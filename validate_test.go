package denovo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scigolib/denovo/internal/h5"
	h5test "github.com/scigolib/denovo/internal/testing"
)

func TestFindMarker(t *testing.T) {
	tests := []struct {
		name   string
		root   h5.Group
		marker string
		ok     bool
	}{
		{"denovo", buildTree(treeSpec{}).Root(), "denovo", true},
		{"forward", buildTree(treeSpec{marker: "denovo-forward"}).Root(), "denovo-forward", true},
		{
			name:   "both prefers denovo",
			root:   h5test.NewGroup("/", h5test.NewGroup("denovo-forward"), h5test.NewGroup("denovo")),
			marker: "denovo",
			ok:     true,
		},
		{"other group", h5test.NewGroup("/", h5test.NewGroup("results")), "", false},
		{"dataset named denovo", h5test.NewGroup("/", h5test.Floats("denovo", 1)), "", false},
		{"empty root", h5test.NewGroup("/"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker, ok := findMarker(tt.root)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.marker, marker)
		})
	}
}

func TestIsValid_InMemory(t *testing.T) {
	tree := buildTree(treeSpec{})
	useTree(t, tree)

	require.True(t, IsValid("anything.out.h5"))
	require.Equal(t, 1, tree.Closes(), "probe handle must be closed")
}

func TestIsValid_Unreadable(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "notes.out.h5")
	require.NoError(t, os.WriteFile(text, []byte("plain text, not HDF5"), 0o600))
	empty := filepath.Join(dir, "empty.out.h5")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	for _, path := range []string{
		filepath.Join(dir, "missing.out.h5"),
		text,
		empty,
		dir,
	} {
		require.NotPanics(t, func() {
			require.False(t, IsValid(path), path)
		})
	}
}

func TestIsValid_ReaderPanic(t *testing.T) {
	orig := openTree
	openTree = func(string) (h5.Tree, error) { panic("index out of range") }
	t.Cleanup(func() { openTree = orig })

	require.NotPanics(t, func() {
		require.False(t, IsValid("corrupt.out.h5"))
	})
}

func TestMarkerGroup_NoMarker(t *testing.T) {
	useTree(t, h5test.NewTree(h5test.NewGroup("results")))

	marker, ok := MarkerGroup("other.h5")
	require.False(t, ok)
	require.Empty(t, marker)
}
