package denovo

import (
	"strconv"
	"strings"
)

// Quantity is a value with a unit symbol, e.g. 1 cm.
type Quantity struct {
	Value float64
	Unit  string
}

// String formats q as "<value> <unit>".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.Value, 'g', -1, 64) + " " + q.Unit
}

// CodeUnits are the physical units behind code_length, code_mass and code_time.
// Denovo output does not record units; centimeters, grams and seconds are implied.
type CodeUnits struct {
	Length Quantity
	Mass   Quantity
	Time   Quantity
}

var codeUnitKeys = map[string]func(*CodeUnits) *Quantity{
	"length_unit": func(u *CodeUnits) *Quantity { return &u.Length },
	"mass_unit":   func(u *CodeUnits) *Quantity { return &u.Mass },
	"time_unit":   func(u *CodeUnits) *Quantity { return &u.Time },
}

var defaultCodeUnits = map[string]Quantity{
	"length_unit": {Value: 1, Unit: "cm"},
	"mass_unit":   {Value: 1, Unit: "g"},
	"time_unit":   {Value: 1, Unit: "s"},
}

// resolveCodeUnits applies overrides first and fills what is still unset
// from the defaults.
func resolveCodeUnits(overrides map[string]Quantity) CodeUnits {
	var u CodeUnits
	set := make(map[string]bool, len(codeUnitKeys))
	for key, q := range overrides {
		if field, ok := codeUnitKeys[key]; ok {
			*field(&u) = q
			set[key] = true
		}
	}
	for key, q := range defaultCodeUnits {
		if !set[key] {
			*codeUnitKeys[key](&u) = q
		}
	}
	return u
}

// Expand substitutes code units into a unit expression such as
// "1 / code_length**2".
func (u CodeUnits) Expand(expr string) string {
	return strings.NewReplacer(
		"code_length", unitTerm(u.Length),
		"code_mass", unitTerm(u.Mass),
		"code_time", unitTerm(u.Time),
	).Replace(expr)
}

func unitTerm(q Quantity) string {
	if q.Value == 1 {
		return q.Unit
	}
	return "(" + q.String() + ")"
}
