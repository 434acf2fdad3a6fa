package denovo

import (
	"fmt"
	"math"
)

// Parameter names of the mesh coordinate and energy group arrays.
const (
	ParamMeshX = "mesh_x"
	ParamMeshY = "mesh_y"
	ParamMeshZ = "mesh_z"
	ParamMeshG = "mesh_g"
)

var coordinateParams = [3]string{ParamMeshX, ParamMeshY, ParamMeshZ}

// coordinates returns the three axis arrays, or ok=false when none is present.
// Some but not all axes present is an error.
func coordinates(p *Parameters) (axes [3][]float64, ok bool, err error) {
	present := 0
	for _, key := range coordinateParams {
		if p.Has(key) {
			present++
		}
	}
	if present == 0 {
		return axes, false, nil
	}
	if present != len(coordinateParams) {
		return axes, false, fmt.Errorf("%d of 3 axes present: %w", present, ErrCoordinates)
	}

	for i, key := range coordinateParams {
		values, isNumeric := p.Floats(key)
		if !isNumeric {
			return axes, false, fmt.Errorf("%s is not numeric: %w", key, ErrCoordinates)
		}
		if len(values) == 0 {
			return axes, false, fmt.Errorf("%s is empty: %w", key, ErrCoordinates)
		}
		axes[i] = values
	}
	return axes, true, nil
}

// domainEdges reduces the coordinate arrays to per-axis min (left) and max (right).
// Without coordinates both edges are empty.
func domainEdges(p *Parameters) (left, right []float64, err error) {
	logger.Info("calculating domain boundaries")

	axes, ok, err := coordinates(p)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return []float64{}, []float64{}, nil
	}

	left = make([]float64, len(axes))
	right = make([]float64, len(axes))
	for i, values := range axes {
		left[i], right[i] = minMax(values)
	}
	return left, right, nil
}

func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// energyGroups returns the group numbers listed in mesh_g, nil when absent.
func energyGroups(p *Parameters) ([]int, error) {
	if !p.Has(ParamMeshG) {
		return nil, nil
	}
	values, ok := p.Floats(ParamMeshG)
	if !ok {
		return nil, fmt.Errorf("%s is not numeric", ParamMeshG)
	}
	groups := make([]int, len(values))
	for i, v := range values {
		groups[i] = int(math.Trunc(v))
	}
	return groups, nil
}

// GroupFieldType returns the field type label of an energy group, e.g. "egroup_001".
func GroupFieldType(group int) string {
	return fmt.Sprintf("egroup_%03d", group)
}

// fluidTypes lists the fixed denovo type followed by one type per energy group.
func fluidTypes(groups []int) []string {
	types := make([]string, 0, len(groups)+1)
	types = append(types, FieldTypeDenovo)
	for _, g := range groups {
		types = append(types, GroupFieldType(g))
	}
	return types
}
