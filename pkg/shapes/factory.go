package shapes

import (
	"fmt"

	"github.com/xmi-schema/xmi-go/pkg/xmi"
)

// parameterKeys lists the positional parameter symbols per shape.
var parameterKeys = map[xmi.Shape][]string{
	xmi.ShapeCircular:          (Circular{}).Keys(),
	xmi.ShapeRectangular:       (Rectangular{}).Keys(),
	xmi.ShapeLShape:            (LShape{}).Keys(),
	xmi.ShapeTShape:            (TShape{}).Keys(),
	xmi.ShapeCShape:            (CShape{}).Keys(),
	xmi.ShapeIShape:            (IShape{}).Keys(),
	xmi.ShapeSquareHollow:      (SquareHollow{}).Keys(),
	xmi.ShapeRectangularHollow: (RectangularHollow{}).Keys(),
}

// RequiredKeys returns the parameter symbols a shape expects, in positional
// order. Unmapped shapes have no fixed parameter set.
func RequiredKeys(shape xmi.Shape) []string {
	return parameterKeys[shape]
}

// FromMap builds the parameter set of a shape from a symbol-keyed
// dictionary. Shapes without a fixed parameter set produce a Custom set
// preserving the given values.
func FromMap(shape xmi.Shape, values map[string]float64) (Parameters, error) {
	keys, ok := parameterKeys[shape]
	if !ok {
		custom := Custom{Shape_: shape, Values: values}
		for key := range values {
			custom.Order = append(custom.Order, key)
		}
		return custom, custom.Validate()
	}
	ordered := make([]float64, len(keys))
	for i, key := range keys {
		value, ok := values[key]
		if !ok {
			return nil, fmt.Errorf("missing parameter %s for shape %s", key, shape)
		}
		ordered[i] = value
	}
	return FromList(shape, ordered)
}

// FromList builds the parameter set of a shape from a positional value list,
// matching the parameter encoding of cross-section records.
func FromList(shape xmi.Shape, values []float64) (Parameters, error) {
	keys, hasKeys := parameterKeys[shape]
	if hasKeys && len(values) != len(keys) {
		return nil, fmt.Errorf("shape %s expects %d parameters, got %d", shape, len(keys), len(values))
	}

	var params Parameters
	switch shape {
	case xmi.ShapeCircular:
		params = Circular{D: values[0]}
	case xmi.ShapeRectangular:
		params = Rectangular{H: values[0], B: values[1]}
	case xmi.ShapeLShape:
		params = LShape{H: values[0], B: values[1], T: values[2], Tw: values[3]}
	case xmi.ShapeTShape:
		params = TShape{D: values[0], B: values[1], T: values[2], Tw: values[3], R: values[4]}
	case xmi.ShapeCShape:
		params = CShape{H: values[0], B: values[1], T1: values[2], T2: values[3], Tw: values[4]}
	case xmi.ShapeIShape:
		params = IShape{D: values[0], B: values[1], T: values[2], Tw: values[3], R: values[4]}
	case xmi.ShapeSquareHollow:
		params = SquareHollow{H: values[0], Tw: values[1]}
	case xmi.ShapeRectangularHollow:
		params = RectangularHollow{H: values[0], B: values[1], Tw: values[2]}
	default:
		custom := Custom{Shape_: shape, Values: map[string]float64{}}
		for i, value := range values {
			key := fmt.Sprintf("P%d", i+1)
			custom.Values[key] = value
			custom.Order = append(custom.Order, key)
		}
		params = custom
	}

	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters for shape %s: %w", shape, err)
	}
	return params, nil
}

// FromCrossSection resolves the parameter set of a loaded cross-section
// entity.
func FromCrossSection(section *xmi.CrossSection) (Parameters, error) {
	return FromList(section.Shape, section.Parameters)
}
