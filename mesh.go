package denovo

// Mesh layout constants.
const (
	ConnectivityLength = 8 // vertices per hexahedral cell
	IndexOffset        = 0 // connectivity indices are zero-based
)

// hexCorners lists the cell corner offsets (di, dj, dk) in connectivity order:
// the lexicographic product of {0, 1} over the three axes, with dk varying
// fastest. Note this is not the VTK hexahedron order.
var hexCorners = [ConnectivityLength][3]int{
	{0, 0, 0},
	{0, 0, 1},
	{0, 1, 0},
	{0, 1, 1},
	{1, 0, 0},
	{1, 0, 1},
	{1, 1, 0},
	{1, 1, 1},
}

// Mesh is a semi-structured hexahedral mesh built from three axis arrays.
type Mesh struct {
	ID           int
	Filename     string
	Coords       [][3]float64
	Connectivity [][ConnectivityLength]int
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int {
	return len(m.Coords)
}

// NumCells returns the number of hexahedral cells.
func (m *Mesh) NumCells() int {
	return len(m.Connectivity)
}

// CellVertices returns the corner positions of cell i in connectivity order.
func (m *Mesh) CellVertices(i int) [ConnectivityLength][3]float64 {
	var out [ConnectivityLength][3]float64
	for c, v := range m.Connectivity[i] {
		out[c] = m.Coords[v-IndexOffset]
	}
	return out
}

// HexahedralConnectivity expands a structured grid into unstructured form.
//
// Vertex (i, j, k) sits at (x[i], y[j], z[k]) and is stored at index
// (i*ny + j)*nz + k. Every cell spans samples i..i+1, j..j+1, k..k+1, so an
// axis with n samples contributes n-1 cells; cells are ordered the same way
// as vertices.
func HexahedralConnectivity(x, y, z []float64) ([][3]float64, [][ConnectivityLength]int) {
	nx, ny, nz := len(x), len(y), len(z)

	coords := make([][3]float64, 0, nx*ny*nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				coords = append(coords, [3]float64{x[i], y[j], z[k]})
			}
		}
	}

	cx, cy, cz := cellsAlong(nx), cellsAlong(ny), cellsAlong(nz)
	conn := make([][ConnectivityLength]int, 0, cx*cy*cz)
	for i := 0; i < cx; i++ {
		for j := 0; j < cy; j++ {
			for k := 0; k < cz; k++ {
				var cell [ConnectivityLength]int
				for c, off := range hexCorners {
					cell[c] = ((i+off[0])*ny+(j+off[1]))*nz + (k + off[2])
				}
				conn = append(conn, cell)
			}
		}
	}

	return coords, conn
}

func cellsAlong(n int) int {
	if n < 2 {
		return 0
	}
	return n - 1
}

// newMesh builds mesh 0 of filename from parameters. It returns nil when the
// file has no coordinate arrays.
func newMesh(filename string, p *Parameters) (*Mesh, error) {
	axes, ok, err := coordinates(p)
	if err != nil || !ok {
		return nil, err
	}
	coords, conn := HexahedralConnectivity(axes[0], axes[1], axes[2])
	return &Mesh{
		ID:           0,
		Filename:     filename,
		Coords:       coords,
		Connectivity: conn,
	}, nil
}
