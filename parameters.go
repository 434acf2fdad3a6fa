package denovo

import (
	"errors"

	"github.com/batchatco/go-native-netcdf/netcdf/util"

	"github.com/scigolib/denovo/internal/h5"
	"github.com/scigolib/denovo/internal/utils"
)

// excludedParameters hold field data and are read through ReadField instead.
var excludedParameters = map[string]bool{
	"flux":         true,
	"source":       true,
	"angular_flux": true,
	"block":        true,
}

// Parameters maps dataset names under the marker group to their values.
// Numeric datasets are stored as []float64, string datasets as []string.
// Keys keep the order the file lists them in.
type Parameters struct {
	m *util.OrderedMap
}

func newParameters() *Parameters {
	m, _ := util.NewOrderedMap(nil, nil) // empty keys and values always match
	return &Parameters{m: m}
}

// Keys returns parameter names in file order.
func (p *Parameters) Keys() []string {
	keys := p.m.Keys()
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	return len(p.m.Keys())
}

// Has reports whether key was loaded.
func (p *Parameters) Has(key string) bool {
	_, ok := p.m.Get(key)
	return ok
}

// Get returns the raw value for key.
func (p *Parameters) Get(key string) (any, bool) {
	return p.m.Get(key)
}

// Floats returns a numeric parameter.
func (p *Parameters) Floats(key string) ([]float64, bool) {
	v, ok := p.m.Get(key)
	if !ok {
		return nil, false
	}
	f, ok := v.([]float64)
	return f, ok
}

// Strings returns a string parameter.
func (p *Parameters) Strings(key string) ([]string, bool) {
	v, ok := p.m.Get(key)
	if !ok {
		return nil, false
	}
	s, ok := v.([]string)
	return s, ok
}

// Scalar returns a numeric parameter holding exactly one value.
func (p *Parameters) Scalar(key string) (float64, bool) {
	f, ok := p.Floats(key)
	if !ok || len(f) != 1 {
		return 0, false
	}
	return f[0], true
}

func (p *Parameters) set(key string, value any) {
	p.m.Add(key, value)
}

// loadParameters copies every dataset directly under g into a Parameters,
// skipping field data. Nested groups are not descended into.
func loadParameters(g h5.Group) (*Parameters, error) {
	p := newParameters()
	for _, d := range h5.Datasets(g) {
		name := d.Name()
		if excludedParameters[name] {
			continue
		}
		v, err := readValue(d)
		if err != nil {
			return nil, utils.WrapError("parameter "+name, err)
		}
		p.set(name, v)
	}
	return p, nil
}

// readValue reads d as numbers, falling back to strings.
func readValue(d h5.Dataset) (any, error) {
	f, numErr := d.Read()
	if numErr == nil {
		return f, nil
	}
	s, strErr := d.ReadStrings()
	if strErr == nil {
		return s, nil
	}
	return nil, errors.Join(numErr, strErr)
}
