// Package units provides the measurement units of the XMI interchange
// format and conversion helpers between compatible units.
package units

import (
	"fmt"
	"strings"
)

// Unit is a measurement unit as written on the wire.
type Unit string

const (
	Meter       Unit = "m"
	Centimeter  Unit = "cm"
	Millimeter  Unit = "mm"
	Meter2      Unit = "m^2"
	Centimeter2 Unit = "cm^2"
	Millimeter2 Unit = "mm^2"
	Meter3      Unit = "m^3"
	Centimeter3 Unit = "cm^3"
	Millimeter3 Unit = "mm^3"
	Meter4      Unit = "m^4"
	Centimeter4 Unit = "cm^4"
	Millimeter4 Unit = "mm^4"
	Inch        Unit = "in"
	Foot        Unit = "ft"
	Yard        Unit = "yd"
	Inch2       Unit = "in^2"
	Foot2       Unit = "ft^2"
	Inch3       Unit = "in^3"
	Foot3       Unit = "ft^3"
	Inch4       Unit = "in^4"
	Foot4       Unit = "ft^4"
	Second      Unit = "sec"
)

// BaseType classifies a unit by the physical quantity it measures. Two units
// are convertible exactly when they share a base type.
type BaseType string

const (
	BaseLength  BaseType = "length"
	BaseArea    BaseType = "area"
	BaseVolume  BaseType = "volume"
	BaseInertia BaseType = "inertia"
	BaseTime    BaseType = "time"
)

// toSI maps every unit to its factor relative to the SI base unit of its
// base type (m, m^2, m^3, m^4, sec).
var toSI = map[Unit]float64{
	Meter:       1,
	Centimeter:  0.01,
	Millimeter:  0.001,
	Inch:        0.0254,
	Foot:        0.3048,
	Yard:        0.9144,
	Meter2:      1,
	Centimeter2: 0.0001,
	Millimeter2: 0.000001,
	Inch2:       0.00064516,
	Foot2:       0.09290304,
	Meter3:      1,
	Centimeter3: 0.000001,
	Millimeter3: 0.000000001,
	Inch3:       0.000016387064,
	Foot3:       0.028316846592,
	Meter4:      1,
	Centimeter4: 0.00000001,
	Millimeter4: 0.000000000001,
	Inch4:       0.00000041623143,
	Foot4:       0.0086309748412416,
	Second:      1,
}

var baseTypes = map[Unit]BaseType{
	Meter:       BaseLength,
	Centimeter:  BaseLength,
	Millimeter:  BaseLength,
	Inch:        BaseLength,
	Foot:        BaseLength,
	Yard:        BaseLength,
	Meter2:      BaseArea,
	Centimeter2: BaseArea,
	Millimeter2: BaseArea,
	Inch2:       BaseArea,
	Foot2:       BaseArea,
	Meter3:      BaseVolume,
	Centimeter3: BaseVolume,
	Millimeter3: BaseVolume,
	Inch3:       BaseVolume,
	Foot3:       BaseVolume,
	Meter4:      BaseInertia,
	Centimeter4: BaseInertia,
	Millimeter4: BaseInertia,
	Inch4:       BaseInertia,
	Foot4:       BaseInertia,
	Second:      BaseTime,
}

// Parse resolves a wire value into a Unit. Matching is exact first, then
// case-insensitive.
func Parse(raw string) (Unit, error) {
	if _, ok := baseTypes[Unit(raw)]; ok {
		return Unit(raw), nil
	}
	for unit := range baseTypes {
		if strings.EqualFold(string(unit), raw) {
			return unit, nil
		}
	}
	return "", fmt.Errorf("invalid unit value: %q", raw)
}

// Base returns the base type of the unit.
func (u Unit) Base() (BaseType, error) {
	base, ok := baseTypes[u]
	if !ok {
		return "", fmt.Errorf("invalid unit value: %q", u)
	}
	return base, nil
}

// Convert converts value from one unit into another. Both units must share
// the same base type; conversion goes through the SI base unit.
func Convert(value float64, from, to Unit) (float64, error) {
	fromBase, err := from.Base()
	if err != nil {
		return 0, err
	}
	toBase, err := to.Base()
	if err != nil {
		return 0, err
	}
	if fromBase != toBase {
		return 0, fmt.Errorf("cannot convert %s (%s) to %s (%s)", from, fromBase, to, toBase)
	}
	return value * toSI[from] / toSI[to], nil
}

// ConvertMap converts every value of the map from one unit into another.
// The input map is left untouched.
func ConvertMap(values map[string]float64, from, to Unit) (map[string]float64, error) {
	converted := make(map[string]float64, len(values))
	for key, value := range values {
		result, err := Convert(value, from, to)
		if err != nil {
			return nil, err
		}
		converted[key] = result
	}
	return converted, nil
}
