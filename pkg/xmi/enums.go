package xmi

import (
	"fmt"
	"strings"
)

// parseEnum resolves a raw wire value against the known values of an enum.
// Exact matches win; a case-insensitive pass runs before the value is
// rejected.
func parseEnum[T ~string](kind string, values []T, raw string) (T, error) {
	for _, value := range values {
		if string(value) == raw {
			return value, nil
		}
	}
	for _, value := range values {
		if strings.EqualFold(string(value), raw) {
			return value, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("invalid %s value: %q", kind, raw)
}

// Domain classifies an entity into one of the orthogonal model families.
type Domain string

const (
	DomainPhysical             Domain = "Physical"
	DomainStructuralAnalytical Domain = "StructuralAnalytical"
	DomainGeometry             Domain = "Geometry"
	DomainFunctional           Domain = "Functional"
	DomainShared               Domain = "Shared"
)

// MaterialType is the material classification of a structural material.
type MaterialType string

const (
	MaterialConcrete  MaterialType = "Concrete"
	MaterialSteel     MaterialType = "Steel"
	MaterialTimber    MaterialType = "Timber"
	MaterialAluminium MaterialType = "Aluminium"
	MaterialComposite MaterialType = "Composite"
	MaterialMasonry   MaterialType = "Masonry"
	MaterialOthers    MaterialType = "Others"
	MaterialRebar     MaterialType = "Rebar"
	MaterialTendon    MaterialType = "Tendon"
)

var materialTypes = []MaterialType{
	MaterialConcrete, MaterialSteel, MaterialTimber, MaterialAluminium,
	MaterialComposite, MaterialMasonry, MaterialOthers, MaterialRebar,
	MaterialTendon,
}

// ParseMaterialType resolves a wire value into a MaterialType.
func ParseMaterialType(raw string) (MaterialType, error) {
	return parseEnum("material_type", materialTypes, raw)
}

// Shape is the cross-section shape classification.
type Shape string

const (
	ShapeRectangular       Shape = "Rectangular"
	ShapeCircular          Shape = "Circular"
	ShapeLShape            Shape = "L Shape"
	ShapeTShape            Shape = "T Shape"
	ShapeCShape            Shape = "C Shape"
	ShapeIShape            Shape = "I Shape"
	ShapeSquareHollow      Shape = "Square Hollow"
	ShapeRectangularHollow Shape = "Rectangular Hollow"
	ShapeOthers            Shape = "Others"
	ShapeUnknown           Shape = "Unknown"
)

var shapes = []Shape{
	ShapeRectangular, ShapeCircular, ShapeLShape, ShapeTShape, ShapeCShape,
	ShapeIShape, ShapeSquareHollow, ShapeRectangularHollow, ShapeOthers,
	ShapeUnknown,
}

// ParseShape resolves a wire value into a Shape.
func ParseShape(raw string) (Shape, error) {
	return parseEnum("shape", shapes, raw)
}

// CurveMemberType classifies a structural curve member.
type CurveMemberType string

const (
	CurveMemberBeam    CurveMemberType = "Beam"
	CurveMemberColumn  CurveMemberType = "Column"
	CurveMemberBracing CurveMemberType = "Bracing"
	CurveMemberOther   CurveMemberType = "Other"
	CurveMemberUnknown CurveMemberType = "Unknown"
)

var curveMemberTypes = []CurveMemberType{
	CurveMemberBeam, CurveMemberColumn, CurveMemberBracing,
	CurveMemberOther, CurveMemberUnknown,
}

// ParseCurveMemberType resolves a wire value into a CurveMemberType.
func ParseCurveMemberType(raw string) (CurveMemberType, error) {
	return parseEnum("curve_member_type", curveMemberTypes, raw)
}

// SystemLine locates the analytical line within a member's cross-section.
type SystemLine string

const (
	SystemLineTopLeft      SystemLine = "Top Left"
	SystemLineTopMiddle    SystemLine = "Top Middle"
	SystemLineTopRight     SystemLine = "Top Right"
	SystemLineMiddleLeft   SystemLine = "Middle Left"
	SystemLineMiddleMiddle SystemLine = "Middle Middle"
	SystemLineMiddleRight  SystemLine = "Middle Right"
	SystemLineBottomLeft   SystemLine = "Bottom Left"
	SystemLineBottomMiddle SystemLine = "Bottom Middle"
	SystemLineBottomRight  SystemLine = "Bottom Right"
	SystemLineUnknown      SystemLine = "Unknown"
)

var systemLines = []SystemLine{
	SystemLineTopLeft, SystemLineTopMiddle, SystemLineTopRight,
	SystemLineMiddleLeft, SystemLineMiddleMiddle, SystemLineMiddleRight,
	SystemLineBottomLeft, SystemLineBottomMiddle, SystemLineBottomRight,
	SystemLineUnknown,
}

// ParseSystemLine resolves a wire value into a SystemLine.
func ParseSystemLine(raw string) (SystemLine, error) {
	return parseEnum("system_line", systemLines, raw)
}

// SurfaceMemberType classifies a structural surface member.
type SurfaceMemberType string

const (
	SurfaceMemberSlab         SurfaceMemberType = "Slab"
	SurfaceMemberWall         SurfaceMemberType = "Wall"
	SurfaceMemberPadFooting   SurfaceMemberType = "Pad Footing"
	SurfaceMemberStripFooting SurfaceMemberType = "Strip Footing"
	SurfaceMemberPilecap      SurfaceMemberType = "Pilecap"
	SurfaceMemberRoofPanel    SurfaceMemberType = "Roof Panel"
	SurfaceMemberWallPanel    SurfaceMemberType = "Wall Panel"
	SurfaceMemberRaft         SurfaceMemberType = "Raft"
	SurfaceMemberUnknown      SurfaceMemberType = "Unknown"
)

var surfaceMemberTypes = []SurfaceMemberType{
	SurfaceMemberSlab, SurfaceMemberWall, SurfaceMemberPadFooting,
	SurfaceMemberStripFooting, SurfaceMemberPilecap, SurfaceMemberRoofPanel,
	SurfaceMemberWallPanel, SurfaceMemberRaft, SurfaceMemberUnknown,
}

// ParseSurfaceMemberType resolves a wire value into a SurfaceMemberType.
func ParseSurfaceMemberType(raw string) (SurfaceMemberType, error) {
	return parseEnum("surface_member_type", surfaceMemberTypes, raw)
}

// SystemPlane locates the analytical plane within a surface member.
type SystemPlane string

const (
	SystemPlaneBottom  SystemPlane = "Bottom"
	SystemPlaneTop     SystemPlane = "Top"
	SystemPlaneMiddle  SystemPlane = "Middle"
	SystemPlaneLeft    SystemPlane = "Left"
	SystemPlaneRight   SystemPlane = "Right"
	SystemPlaneUnknown SystemPlane = "Unknown"
)

var systemPlanes = []SystemPlane{
	SystemPlaneBottom, SystemPlaneTop, SystemPlaneMiddle,
	SystemPlaneLeft, SystemPlaneRight, SystemPlaneUnknown,
}

// ParseSystemPlane resolves a wire value into a SystemPlane.
func ParseSystemPlane(raw string) (SystemPlane, error) {
	return parseEnum("system_plane", systemPlanes, raw)
}

// SpanType describes the load-carrying direction of a surface member.
type SpanType string

const (
	SpanOneWay  SpanType = "One Way"
	SpanTwoWay  SpanType = "Two Way"
	SpanUnknown SpanType = "Unknown"
)

var spanTypes = []SpanType{SpanOneWay, SpanTwoWay, SpanUnknown}

// ParseSpanType resolves a wire value into a SpanType.
func ParseSpanType(raw string) (SpanType, error) {
	return parseEnum("span_type", spanTypes, raw)
}

// SegmentType describes the geometry class of a member segment.
type SegmentType string

const (
	SegmentLine         SegmentType = "Line"
	SegmentCircularArc  SegmentType = "Circular Arc"
	SegmentParabolicArc SegmentType = "Parabolic Arc"
	SegmentBezier       SegmentType = "Bezier"
	SegmentSpline       SegmentType = "Spline"
	SegmentOthers       SegmentType = "Others"
)

var segmentTypes = []SegmentType{
	SegmentLine, SegmentCircularArc, SegmentParabolicArc,
	SegmentBezier, SegmentSpline, SegmentOthers,
}

// ParseSegmentType resolves a wire value into a SegmentType.
func ParseSegmentType(raw string) (SegmentType, error) {
	return parseEnum("segment_type", segmentTypes, raw)
}
