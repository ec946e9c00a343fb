package xmi

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldAliases maps every wire-format field name to its in-memory name.
// Records may carry either spelling; the wire name wins when both are
// present.
var fieldAliases = map[string]string{
	"ID":                        "id",
	"Name":                      "name",
	"Description":               "description",
	"IFCGUID":                   "ifcguid",
	"NativeId":                  "native_id",
	"EntityType":                "entity_type",
	"X":                         "x",
	"Y":                         "y",
	"Z":                         "z",
	"StartPoint":                "start_point",
	"EndPoint":                  "end_point",
	"CenterPoint":               "center_point",
	"Radius":                    "radius",
	"MaterialType":              "material_type",
	"Grade":                     "grade",
	"UnitWeight":                "unit_weight",
	"EModulus":                  "e_modulus",
	"GModulus":                  "g_modulus",
	"PoissonRatio":              "poisson_ratio",
	"ThermalCoefficient":        "thermal_coefficient",
	"Shape":                     "shape",
	"Parameters":                "parameters",
	"Area":                      "area",
	"Ix":                        "ix",
	"Iy":                        "iy",
	"Rx":                        "rx",
	"Ry":                        "ry",
	"Ex":                        "ex",
	"Ey":                        "ey",
	"Zx":                        "zx",
	"Zy":                        "zy",
	"J":                         "j",
	"Material":                  "material",
	"CurveMemberType":           "curve_member_type",
	"SystemLine":                "system_line",
	"LocalAxisX":                "local_axis_x",
	"LocalAxisY":                "local_axis_y",
	"LocalAxisZ":                "local_axis_z",
	"BeginNodeXOffset":          "begin_node_x_offset",
	"BeginNodeYOffset":          "begin_node_y_offset",
	"BeginNodeZOffset":          "begin_node_z_offset",
	"EndNodeXOffset":            "end_node_x_offset",
	"EndNodeYOffset":            "end_node_y_offset",
	"EndNodeZOffset":            "end_node_z_offset",
	"Length":                    "length",
	"EndFixityStart":            "end_fixity_start",
	"EndFixityEnd":              "end_fixity_end",
	"SurfaceMemberType":         "surface_member_type",
	"Thickness":                 "thickness",
	"SystemPlane":               "system_plane",
	"ZOffset":                   "z_offset",
	"Height":                    "height",
	"SpanType":                  "span_type",
	"Point":                     "point",
	"Storey":                    "storey",
	"StoreyElevation":           "storey_elevation",
	"StoreyMass":                "storey_mass",
	"StoreyHorizontalReactionX": "storey_horizontal_reaction_x",
	"StoreyHorizontalReactionY": "storey_horizontal_reaction_y",
	"StoreyVerticalReaction":    "storey_vertical_reaction",
	"Geometry":                  "geometry",
	"Position":                  "position",
	"BeginNode":                 "begin_node",
	"EndNode":                   "end_node",
	"SegmentType":               "segment_type",
	"Entity":                    "entity",
	"Attribute":                 "attribute",
	"Unit":                      "unit",
	"Source":                    "source",
	"Target":                    "target",
	"UmlType":                   "uml_type",
	"IsBegin":                   "is_begin",
	"IsEnd":                     "is_end",
}

// lookupField returns the raw value for a wire-format field name, falling
// back to the aliased in-memory name.
func lookupField(obj map[string]any, wireName string) (any, bool) {
	if value, ok := obj[wireName]; ok {
		return value, true
	}
	if native, ok := fieldAliases[wireName]; ok {
		if value, ok := obj[native]; ok {
			return value, true
		}
	}
	return nil, false
}

// nativeName returns the in-memory spelling of a wire field name, used when
// composing error messages.
func nativeName(wireName string) string {
	if native, ok := fieldAliases[wireName]; ok {
		return native
	}
	return wireName
}

// stringField reads an optional string field. A missing field returns
// ("", false, nil); a present value of any other type is an error, never a
// silent miss.
func stringField(obj map[string]any, wireName string) (string, bool, error) {
	value, ok := lookupField(obj, wireName)
	if !ok || value == nil {
		return "", false, nil
	}
	s, ok := value.(string)
	if !ok {
		return "", false, fmt.Errorf("invalid %s value: %v must be a string", nativeName(wireName), value)
	}
	return s, true, nil
}

// requiredString reads a mandatory string field.
func requiredString(obj map[string]any, wireName string) (string, error) {
	s, ok, err := stringField(obj, wireName)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("Missing attribute: %s", nativeName(wireName))
	}
	return s, nil
}

// toFloat coerces the numeric value shapes a JSON decoder can produce, plus
// numeric strings, into a float64.
func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number: %v", value)
	}
}

// floatField reads an optional numeric field. A missing field returns
// (nil, nil); a present but malformed value is an error.
func floatField(obj map[string]any, wireName string) (*float64, error) {
	value, ok := lookupField(obj, wireName)
	if !ok || value == nil {
		return nil, nil
	}
	f, err := toFloat(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %v", nativeName(wireName), value)
	}
	return &f, nil
}

// requiredFloat reads a mandatory numeric field.
func requiredFloat(obj map[string]any, wireName string) (float64, error) {
	value, ok := lookupField(obj, wireName)
	if !ok || value == nil {
		return 0, fmt.Errorf("Missing attribute: %s", nativeName(wireName))
	}
	f, err := toFloat(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %v", nativeName(wireName), value)
	}
	return f, nil
}

// intField reads an optional integer field, defaulting to fallback.
func intField(obj map[string]any, wireName string, fallback int) (int, error) {
	value, ok := lookupField(obj, wireName)
	if !ok || value == nil {
		return fallback, nil
	}
	f, err := toFloat(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %v", nativeName(wireName), value)
	}
	return int(f), nil
}

// boolField reads an optional boolean field, defaulting to false.
func boolField(obj map[string]any, wireName string) (bool, error) {
	value, ok := lookupField(obj, wireName)
	if !ok || value == nil {
		return false, nil
	}
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("invalid %s value: %v", nativeName(wireName), value)
	}
	return b, nil
}

// parseAxis accepts a direction vector either as a 3-element numeric list or
// as a string of exactly three comma-separated numeric literals.
func parseAxis(wireName string, value any) ([3]float64, error) {
	var axis [3]float64
	switch v := value.(type) {
	case string:
		parts := strings.Split(v, ",")
		if len(parts) != 3 {
			return axis, fmt.Errorf("invalid %s value: %q must have exactly three components", nativeName(wireName), v)
		}
		for i, part := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return axis, fmt.Errorf("invalid %s value: non-numeric component %q", nativeName(wireName), part)
			}
			axis[i] = f
		}
		return axis, nil
	case []any:
		if len(v) != 3 {
			return axis, fmt.Errorf("invalid %s value: %v must have exactly three components", nativeName(wireName), v)
		}
		for i, item := range v {
			f, err := toFloat(item)
			if err != nil {
				return axis, fmt.Errorf("invalid %s value: non-numeric component %v", nativeName(wireName), item)
			}
			axis[i] = f
		}
		return axis, nil
	case []float64:
		if len(v) != 3 {
			return axis, fmt.Errorf("invalid %s value: %v must have exactly three components", nativeName(wireName), v)
		}
		copy(axis[:], v)
		return axis, nil
	default:
		return axis, fmt.Errorf("invalid %s value: %v", nativeName(wireName), value)
	}
}

// axisField reads an optional axis field, defaulting to fallback.
func axisField(obj map[string]any, wireName string, fallback [3]float64) ([3]float64, error) {
	value, ok := lookupField(obj, wireName)
	if !ok || value == nil {
		return fallback, nil
	}
	return parseAxis(wireName, value)
}

// formatAxis renders a direction vector in the wire representation.
func formatAxis(axis [3]float64) string {
	return fmt.Sprintf("%g,%g,%g", axis[0], axis[1], axis[2])
}

// parseParameters accepts cross-section parameters either as a numeric list
// or as a ";"-separated string of numeric literals.
func parseParameters(wireName string, value any) ([]float64, error) {
	switch v := value.(type) {
	case string:
		parts := strings.Split(v, ";")
		params := make([]float64, 0, len(parts))
		for _, part := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value: non-numeric component %q", nativeName(wireName), part)
			}
			params = append(params, f)
		}
		return params, nil
	case []any:
		params := make([]float64, 0, len(v))
		for _, item := range v {
			f, err := toFloat(item)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value: non-numeric component %v", nativeName(wireName), item)
			}
			params = append(params, f)
		}
		return params, nil
	case []float64:
		return v, nil
	default:
		return nil, fmt.Errorf("invalid %s value: %v", nativeName(wireName), value)
	}
}

// formatParameters renders cross-section parameters in the wire
// representation.
func formatParameters(params []float64) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strconv.FormatFloat(p, 'g', -1, 64)
	}
	return strings.Join(parts, ";")
}
