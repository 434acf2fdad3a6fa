package denovo

import "fmt"

// Option is a functional option for configuring Load.
type Option func(*config)

type config struct {
	datasetType     string
	storageFilename string
	unitsOverride   map[string]Quantity
}

func newConfig(opts []Option) *config {
	cfg := &config{
		datasetType: DefaultDatasetType,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithDatasetType sets the dataset type label. Default: "denovo".
func WithDatasetType(datasetType string) Option {
	return func(cfg *config) {
		cfg.datasetType = datasetType
	}
}

// WithStorageFilename records a sidecar storage file name on the dataset.
// The reader never opens it.
func WithStorageFilename(name string) Option {
	return func(cfg *config) {
		cfg.storageFilename = name
	}
}

// WithUnitsOverride replaces code units before defaults are applied.
// Accepted keys are "length_unit", "mass_unit" and "time_unit".
//
// Example:
//
//	ds, err := denovo.Load("slab.out.h5", denovo.WithUnitsOverride(map[string]denovo.Quantity{
//	    "length_unit": {Value: 1, Unit: "m"},
//	}))
func WithUnitsOverride(units map[string]Quantity) Option {
	return func(cfg *config) {
		if cfg.unitsOverride == nil {
			cfg.unitsOverride = make(map[string]Quantity, len(units))
		}
		for k, v := range units {
			cfg.unitsOverride[k] = v
		}
	}
}

func (cfg *config) validate() error {
	if cfg.datasetType == "" {
		return fmt.Errorf("dataset type cannot be empty")
	}
	for key := range cfg.unitsOverride {
		if _, ok := codeUnitKeys[key]; !ok {
			return fmt.Errorf("%q: %w", key, ErrUnknownUnit)
		}
	}
	return nil
}
