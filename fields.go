package denovo

import (
	"fmt"
)

// FieldTypeDenovo is the field type used when output is not split by energy group.
const FieldTypeDenovo = "denovo"

// Unit expressions of the known fields, in code units.
const (
	FluxUnits        = "1 / code_length**2"
	AngularFluxUnits = "1 / code_length**2 / steradian"
	SourceUnits      = "1"
)

// Field identifies an on-disk field by type and name.
type Field struct {
	Type string
	Name string
}

// String formats f as "(type, name)".
func (f Field) String() string {
	return fmt.Sprintf("(%s, %s)", f.Type, f.Name)
}

// KnownField is static metadata for a quantity Denovo writes.
type KnownField struct {
	Name        string   // On-disk dataset name.
	Units       string   // Unit expression in code units.
	Aliases     []string // Alternative names resolving to Name.
	DisplayName string   // LaTeX symbol, empty when none.
}

// knownOtherFields is the table of quantities with known units.
// Denovo writes no particle fields.
var knownOtherFields = []KnownField{
	{Name: "source", Units: SourceUnits, Aliases: []string{"source_strength"}},
	{Name: "flux", Units: FluxUnits, Aliases: []string{"scalar_flux"}, DisplayName: `\phi`},
	{Name: "uncflux", Units: FluxUnits, Aliases: []string{"uncollided_flux"}, DisplayName: `\phi_{uncollided}`},
	{Name: "angular_flux", Units: AngularFluxUnits, DisplayName: `\Psi`},
	{Name: "ww_lower", Units: "", Aliases: []string{"ww_lower_bound"}},
}

// KnownFields returns a copy of the known-field table.
func KnownFields() []KnownField {
	out := make([]KnownField, len(knownOtherFields))
	for i, kf := range knownOtherFields {
		kf.Aliases = append([]string(nil), kf.Aliases...)
		out[i] = kf
	}
	return out
}

// LookupKnownField finds the table entry for an on-disk name.
func LookupKnownField(name string) (KnownField, bool) {
	for _, kf := range knownOtherFields {
		if kf.Name == name {
			return kf, true
		}
	}
	return KnownField{}, false
}

// FieldEntry is the registered metadata of one field.
type FieldEntry struct {
	Field
	Units       string
	DisplayName string
	Known       bool // Name appears in the known-field table.
}

// FieldInfo holds the fields of a dataset with their units and aliases.
type FieldInfo struct {
	order   []Field
	entries map[Field]FieldEntry
	aliases map[Field]Field
}

// newFieldInfo registers every field of fieldList. Known fields get their
// table units and an alias per table alias within the same type; unknown
// fields are registered with empty units.
func newFieldInfo(fieldList []Field) *FieldInfo {
	fi := &FieldInfo{
		entries: make(map[Field]FieldEntry, len(fieldList)),
		aliases: make(map[Field]Field),
	}
	for _, f := range fieldList {
		if _, dup := fi.entries[f]; dup {
			continue
		}
		entry := FieldEntry{Field: f}
		if kf, ok := LookupKnownField(f.Name); ok {
			entry.Units = kf.Units
			entry.DisplayName = kf.DisplayName
			entry.Known = true
			for _, alias := range kf.Aliases {
				fi.aliases[Field{Type: f.Type, Name: alias}] = f
			}
		}
		fi.entries[f] = entry
		fi.order = append(fi.order, f)
	}
	return fi
}

// Fields returns the registered fields in registration order.
func (fi *FieldInfo) Fields() []Field {
	return append([]Field(nil), fi.order...)
}

// Resolve maps an alias to its on-disk field. Non-aliases are returned unchanged.
func (fi *FieldInfo) Resolve(f Field) Field {
	if target, ok := fi.aliases[f]; ok {
		return target
	}
	return f
}

// Lookup returns the entry of f, resolving aliases.
func (fi *FieldInfo) Lookup(f Field) (FieldEntry, bool) {
	entry, ok := fi.entries[fi.Resolve(f)]
	return entry, ok
}

// Units returns the unit expression of f in code units.
func (fi *FieldInfo) Units(f Field) (string, error) {
	entry, ok := fi.Lookup(f)
	if !ok {
		return "", fmt.Errorf("%s: %w", f, ErrUnknownField)
	}
	return entry.Units, nil
}

// Aliases returns every registered alias and the field it resolves to.
func (fi *FieldInfo) Aliases() map[Field]Field {
	out := make(map[Field]Field, len(fi.aliases))
	for k, v := range fi.aliases {
		out[k] = v
	}
	return out
}

// UnitTable returns the units of every registered known field, keyed by on-disk name.
func (fi *FieldInfo) UnitTable() map[string]string {
	out := make(map[string]string)
	for _, f := range fi.order {
		if entry := fi.entries[f]; entry.Known {
			out[f.Name] = entry.Units
		}
	}
	return out
}
