package xmi

import (
	"fmt"

	"github.com/xmi-schema/xmi-go/pkg/units"
)

// Material is a structural material definition.
type Material struct {
	BaseEntity
	MaterialType       MaterialType
	Grade              *float64
	UnitWeight         *float64 `validate:"omitempty,gte=0"`
	EModulus           *float64 `validate:"omitempty,gte=0"`
	GModulus           *float64 `validate:"omitempty,gte=0"`
	PoissonRatio       *float64
	ThermalCoefficient *float64
}

func (m *Material) encode() map[string]any {
	record := encodeBase(&m.BaseEntity)
	record["MaterialType"] = string(m.MaterialType)
	putFloat(record, "Grade", m.Grade)
	putFloat(record, "UnitWeight", m.UnitWeight)
	putFloat(record, "EModulus", m.EModulus)
	putFloat(record, "GModulus", m.GModulus)
	putFloat(record, "PoissonRatio", m.PoissonRatio)
	putFloat(record, "ThermalCoefficient", m.ThermalCoefficient)
	return record
}

func newMaterial(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiStructuralMaterial", DomainStructuralAnalytical)
	rawType, typeErr := requiredString(obj, "MaterialType")
	if typeErr != nil {
		errs = append(errs, typeErr)
	}
	materialType, err := ParseMaterialType(rawType)
	if typeErr == nil && err != nil {
		errs = append(errs, err)
	}
	material := &Material{
		BaseEntity:   base,
		MaterialType: materialType,
	}
	for wireName, field := range map[string]**float64{
		"Grade":              &material.Grade,
		"UnitWeight":         &material.UnitWeight,
		"EModulus":           &material.EModulus,
		"GModulus":           &material.GModulus,
		"PoissonRatio":       &material.PoissonRatio,
		"ThermalCoefficient": &material.ThermalCoefficient,
	} {
		value, err := floatField(obj, wireName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*field = value
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if errs := collectValidationErrors(validate.Struct(material)); len(errs) > 0 {
		return nil, errs
	}
	return material, nil
}

// CrossSection is a member cross-section: a shape classification, its
// dimensional parameters and optional precomputed section properties.
type CrossSection struct {
	BaseEntity
	Shape      Shape
	Parameters []float64
	Material   *Material
	Area       *float64 `validate:"omitempty,gte=0"`
	Ix         *float64 `validate:"omitempty,gte=0"`
	Iy         *float64 `validate:"omitempty,gte=0"`
	Rx         *float64 `validate:"omitempty,gte=0"`
	Ry         *float64 `validate:"omitempty,gte=0"`
	Ex         *float64 `validate:"omitempty,gte=0"`
	Ey         *float64 `validate:"omitempty,gte=0"`
	Zx         *float64 `validate:"omitempty,gte=0"`
	Zy         *float64 `validate:"omitempty,gte=0"`
	J          *float64 `validate:"omitempty,gte=0"`
}

func (c *CrossSection) encode() map[string]any {
	record := encodeBase(&c.BaseEntity)
	record["Shape"] = string(c.Shape)
	record["Parameters"] = formatParameters(c.Parameters)
	putFloat(record, "Area", c.Area)
	putFloat(record, "Ix", c.Ix)
	putFloat(record, "Iy", c.Iy)
	putFloat(record, "Rx", c.Rx)
	putFloat(record, "Ry", c.Ry)
	putFloat(record, "Ex", c.Ex)
	putFloat(record, "Ey", c.Ey)
	putFloat(record, "Zx", c.Zx)
	putFloat(record, "Zy", c.Zy)
	putFloat(record, "J", c.J)
	return record
}

func newCrossSection(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiCrossSection", DomainStructuralAnalytical)
	rawShape, shapeErr := requiredString(obj, "Shape")
	if shapeErr != nil {
		errs = append(errs, shapeErr)
	}
	shape, err := ParseShape(rawShape)
	if shapeErr == nil && err != nil {
		errs = append(errs, err)
	}

	var params []float64
	if value, ok := lookupField(obj, "Parameters"); ok && value != nil {
		params, err = parseParameters("Parameters", value)
		if err != nil {
			errs = append(errs, err)
		}
		for _, p := range params {
			if p < 0 {
				errs = append(errs, fmt.Errorf("invalid %s value: %g is negative", nativeName("Parameters"), p))
				break
			}
		}
	} else {
		errs = append(errs, fmt.Errorf("Missing attribute: %s", nativeName("Parameters")))
	}

	section := &CrossSection{
		BaseEntity: base,
		Shape:      shape,
		Parameters: params,
	}
	if value, ok := lookupField(obj, "Material"); ok && value != nil {
		material, ok := value.(*Material)
		if !ok {
			errs = append(errs, fmt.Errorf("invalid %s value: must be a constructed material", nativeName("Material")))
		} else {
			section.Material = material
		}
	}
	for wireName, field := range map[string]**float64{
		"Area": &section.Area,
		"Ix":   &section.Ix,
		"Iy":   &section.Iy,
		"Rx":   &section.Rx,
		"Ry":   &section.Ry,
		"Ex":   &section.Ex,
		"Ey":   &section.Ey,
		"Zx":   &section.Zx,
		"Zy":   &section.Zy,
		"J":    &section.J,
	} {
		value, err := floatField(obj, wireName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*field = value
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if errs := collectValidationErrors(validate.Struct(section)); len(errs) > 0 {
		return nil, errs
	}
	return section, nil
}

// defaultLocalAxes are the member axes used when a record does not override
// them.
var defaultLocalAxes = [3][3]float64{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// memberAxes bundles the local axis fields shared by linear members.
type memberAxes struct {
	LocalAxisX [3]float64
	LocalAxisY [3]float64
	LocalAxisZ [3]float64
}

func parseMemberAxes(obj map[string]any) (memberAxes, []error) {
	var errs []error
	axes := memberAxes{
		LocalAxisX: defaultLocalAxes[0],
		LocalAxisY: defaultLocalAxes[1],
		LocalAxisZ: defaultLocalAxes[2],
	}
	var err error
	if axes.LocalAxisX, err = axisField(obj, "LocalAxisX", axes.LocalAxisX); err != nil {
		errs = append(errs, err)
	}
	if axes.LocalAxisY, err = axisField(obj, "LocalAxisY", axes.LocalAxisY); err != nil {
		errs = append(errs, err)
	}
	if axes.LocalAxisZ, err = axisField(obj, "LocalAxisZ", axes.LocalAxisZ); err != nil {
		errs = append(errs, err)
	}
	return axes, errs
}

func encodeMemberAxes(record map[string]any, axes memberAxes) {
	record["LocalAxisX"] = formatAxis(axes.LocalAxisX)
	record["LocalAxisY"] = formatAxis(axes.LocalAxisY)
	record["LocalAxisZ"] = formatAxis(axes.LocalAxisZ)
}

// nodeOffsets bundles the begin/end node offset fields of linear members.
// All six default to zero.
type nodeOffsets struct {
	BeginNodeXOffset float64
	BeginNodeYOffset float64
	BeginNodeZOffset float64
	EndNodeXOffset   float64
	EndNodeYOffset   float64
	EndNodeZOffset   float64
}

func parseNodeOffsets(obj map[string]any) (nodeOffsets, []error) {
	var offsets nodeOffsets
	var errs []error
	for wireName, field := range map[string]*float64{
		"BeginNodeXOffset": &offsets.BeginNodeXOffset,
		"BeginNodeYOffset": &offsets.BeginNodeYOffset,
		"BeginNodeZOffset": &offsets.BeginNodeZOffset,
		"EndNodeXOffset":   &offsets.EndNodeXOffset,
		"EndNodeYOffset":   &offsets.EndNodeYOffset,
		"EndNodeZOffset":   &offsets.EndNodeZOffset,
	} {
		value, err := floatField(obj, wireName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if value != nil {
			*field = *value
		}
	}
	return offsets, errs
}

func encodeNodeOffsets(record map[string]any, offsets nodeOffsets) {
	record["BeginNodeXOffset"] = offsets.BeginNodeXOffset
	record["BeginNodeYOffset"] = offsets.BeginNodeYOffset
	record["BeginNodeZOffset"] = offsets.BeginNodeZOffset
	record["EndNodeXOffset"] = offsets.EndNodeXOffset
	record["EndNodeYOffset"] = offsets.EndNodeYOffset
	record["EndNodeZOffset"] = offsets.EndNodeZOffset
}

// CurveMember is the analytical idealization of a linear member.
type CurveMember struct {
	BaseEntity
	CurveMemberType CurveMemberType
	SystemLine      SystemLine
	memberAxes
	nodeOffsets
	Length         *float64 `validate:"omitempty,gte=0"`
	EndFixityStart string
	EndFixityEnd   string
}

func (c *CurveMember) encode() map[string]any {
	record := encodeBase(&c.BaseEntity)
	record["CurveMemberType"] = string(c.CurveMemberType)
	record["SystemLine"] = string(c.SystemLine)
	encodeMemberAxes(record, c.memberAxes)
	encodeNodeOffsets(record, c.nodeOffsets)
	putFloat(record, "Length", c.Length)
	if c.EndFixityStart != "" {
		record["EndFixityStart"] = c.EndFixityStart
	}
	if c.EndFixityEnd != "" {
		record["EndFixityEnd"] = c.EndFixityEnd
	}
	return record
}

func newCurveMember(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiStructuralCurveMember", DomainStructuralAnalytical)
	rawType, typeErr := requiredString(obj, "CurveMemberType")
	if typeErr != nil {
		errs = append(errs, typeErr)
	}
	memberType, err := ParseCurveMemberType(rawType)
	if typeErr == nil && err != nil {
		errs = append(errs, err)
	}
	rawLine, lineErr := requiredString(obj, "SystemLine")
	if lineErr != nil {
		errs = append(errs, lineErr)
	}
	systemLine, err := ParseSystemLine(rawLine)
	if lineErr == nil && err != nil {
		errs = append(errs, err)
	}
	axes, axesErrs := parseMemberAxes(obj)
	errs = append(errs, axesErrs...)
	offsets, offsetErrs := parseNodeOffsets(obj)
	errs = append(errs, offsetErrs...)
	length, err := floatField(obj, "Length")
	if err != nil {
		errs = append(errs, err)
	}
	member := &CurveMember{
		BaseEntity:      base,
		CurveMemberType: memberType,
		SystemLine:      systemLine,
		memberAxes:      axes,
		nodeOffsets:     offsets,
		Length:          length,
	}
	for wireName, field := range map[string]*string{
		"EndFixityStart": &member.EndFixityStart,
		"EndFixityEnd":   &member.EndFixityEnd,
	} {
		value, _, err := stringField(obj, wireName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*field = value
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if errs := collectValidationErrors(validate.Struct(member)); len(errs) > 0 {
		return nil, errs
	}
	return member, nil
}

// SurfaceMember is the analytical idealization of a planar member.
type SurfaceMember struct {
	BaseEntity
	SurfaceMemberType SurfaceMemberType
	Thickness         float64 `validate:"gte=0"`
	SystemPlane       SystemPlane
	SpanType          SpanType
	memberAxes
	ZOffset float64
	Area    *float64 `validate:"omitempty,gte=0"`
	Height  *float64 `validate:"omitempty,gte=0"`
}

func (s *SurfaceMember) encode() map[string]any {
	record := encodeBase(&s.BaseEntity)
	record["SurfaceMemberType"] = string(s.SurfaceMemberType)
	record["Thickness"] = s.Thickness
	if s.SystemPlane != "" {
		record["SystemPlane"] = string(s.SystemPlane)
	}
	if s.SpanType != "" {
		record["SpanType"] = string(s.SpanType)
	}
	encodeMemberAxes(record, s.memberAxes)
	record["ZOffset"] = s.ZOffset
	putFloat(record, "Area", s.Area)
	putFloat(record, "Height", s.Height)
	return record
}

func newSurfaceMember(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiStructuralSurfaceMember", DomainStructuralAnalytical)
	rawType, typeErr := requiredString(obj, "SurfaceMemberType")
	if typeErr != nil {
		errs = append(errs, typeErr)
	}
	memberType, err := ParseSurfaceMemberType(rawType)
	if typeErr == nil && err != nil {
		errs = append(errs, err)
	}
	thickness, err := requiredFloat(obj, "Thickness")
	if err != nil {
		errs = append(errs, err)
	}
	member := &SurfaceMember{
		BaseEntity:        base,
		SurfaceMemberType: memberType,
		Thickness:         thickness,
	}
	if rawPlane, ok, err := stringField(obj, "SystemPlane"); err != nil {
		errs = append(errs, err)
	} else if ok {
		member.SystemPlane, err = ParseSystemPlane(rawPlane)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if rawSpan, ok, err := stringField(obj, "SpanType"); err != nil {
		errs = append(errs, err)
	} else if ok {
		member.SpanType, err = ParseSpanType(rawSpan)
		if err != nil {
			errs = append(errs, err)
		}
	}
	axes, axesErrs := parseMemberAxes(obj)
	errs = append(errs, axesErrs...)
	member.memberAxes = axes
	if zOffset, err := floatField(obj, "ZOffset"); err != nil {
		errs = append(errs, err)
	} else if zOffset != nil {
		member.ZOffset = *zOffset
	}
	if member.Area, err = floatField(obj, "Area"); err != nil {
		errs = append(errs, err)
	}
	if member.Height, err = floatField(obj, "Height"); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if errs := collectValidationErrors(validate.Struct(member)); len(errs) > 0 {
		return nil, errs
	}
	return member, nil
}

// PointConnection is an analytical node: a deduplicated point, optionally
// tied to a storey.
type PointConnection struct {
	BaseEntity
	Point  *Point3D
	Storey string
}

func (p *PointConnection) encode() map[string]any {
	record := encodeBase(&p.BaseEntity)
	record["Point"] = p.Point.encode()
	if p.Storey != "" {
		record["Storey"] = p.Storey
	}
	return record
}

func newPointConnection(obj map[string]any, points PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiStructuralPointConnection", DomainStructuralAnalytical)
	point, pointErrs := requirePoint(obj, "Point", points)
	errs = append(errs, pointErrs...)
	storey, _, err := stringField(obj, "Storey")
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &PointConnection{
		BaseEntity: base,
		Point:      point,
		Storey:     storey,
	}, nil
}

// Storey is a horizontal building level.
type Storey struct {
	BaseEntity
	StoreyElevation           float64
	StoreyMass                float64 `validate:"gte=0"`
	StoreyHorizontalReactionX string
	StoreyHorizontalReactionY string
	StoreyVerticalReaction    string
}

func (s *Storey) encode() map[string]any {
	record := encodeBase(&s.BaseEntity)
	record["StoreyElevation"] = s.StoreyElevation
	record["StoreyMass"] = s.StoreyMass
	if s.StoreyHorizontalReactionX != "" {
		record["StoreyHorizontalReactionX"] = s.StoreyHorizontalReactionX
	}
	if s.StoreyHorizontalReactionY != "" {
		record["StoreyHorizontalReactionY"] = s.StoreyHorizontalReactionY
	}
	if s.StoreyVerticalReaction != "" {
		record["StoreyVerticalReaction"] = s.StoreyVerticalReaction
	}
	return record
}

func newStorey(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiStorey", DomainStructuralAnalytical)
	elevation, err := requiredFloat(obj, "StoreyElevation")
	if err != nil {
		errs = append(errs, err)
	}
	mass, err := requiredFloat(obj, "StoreyMass")
	if err != nil {
		errs = append(errs, err)
	}
	storey := &Storey{
		BaseEntity:      base,
		StoreyElevation: elevation,
		StoreyMass:      mass,
	}
	for wireName, field := range map[string]*string{
		"StoreyHorizontalReactionX": &storey.StoreyHorizontalReactionX,
		"StoreyHorizontalReactionY": &storey.StoreyHorizontalReactionY,
		"StoreyVerticalReaction":    &storey.StoreyVerticalReaction,
	} {
		value, _, err := stringField(obj, wireName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		*field = value
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if errs := collectValidationErrors(validate.Struct(storey)); len(errs) > 0 {
		return nil, errs
	}
	return storey, nil
}

// Segment is one piece of a curve member's geometry. Its geometry and node
// links are resolved through relationships; at construction time already
// built instances are accepted directly.
type Segment struct {
	BaseEntity
	SegmentType SegmentType
	Position    int
	Geometry    Entity
	BeginNode   *PointConnection
	EndNode     *PointConnection
}

func (s *Segment) encode() map[string]any {
	record := encodeBase(&s.BaseEntity)
	record["SegmentType"] = string(s.SegmentType)
	record["Position"] = s.Position
	return record
}

func newSegment(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiSegment", DomainShared)
	rawType, typeErr := requiredString(obj, "SegmentType")
	if typeErr != nil {
		errs = append(errs, typeErr)
	}
	segmentType, err := ParseSegmentType(rawType)
	if typeErr == nil && err != nil {
		errs = append(errs, err)
	}
	position, err := intField(obj, "Position", 0)
	if err != nil {
		errs = append(errs, err)
	}
	segment := &Segment{
		BaseEntity:  base,
		SegmentType: segmentType,
		Position:    position,
	}
	if value, ok := lookupField(obj, "Geometry"); ok && value != nil {
		switch geometry := value.(type) {
		case *Line3D:
			segment.Geometry = geometry
		case *Arc3D:
			segment.Geometry = geometry
		default:
			errs = append(errs, fmt.Errorf("invalid %s value: must be a constructed line or arc", nativeName("Geometry")))
		}
	}
	for wireName, field := range map[string]**PointConnection{
		"BeginNode": &segment.BeginNode,
		"EndNode":   &segment.EndNode,
	} {
		value, ok := lookupField(obj, wireName)
		if !ok || value == nil {
			continue
		}
		node, ok := value.(*PointConnection)
		if !ok {
			errs = append(errs, fmt.Errorf("invalid %s value: must be a constructed point connection", nativeName(wireName)))
			continue
		}
		*field = node
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return segment, nil
}

// StructuralUnit declares the measurement unit a producing application used
// for one attribute of one entity type.
type StructuralUnit struct {
	BaseEntity
	Entity    string
	Attribute string
	Unit      units.Unit
}

func (u *StructuralUnit) encode() map[string]any {
	record := encodeBase(&u.BaseEntity)
	record["Entity"] = u.Entity
	record["Attribute"] = u.Attribute
	record["Unit"] = string(u.Unit)
	return record
}

func newStructuralUnit(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiUnit", DomainShared)
	entity, err := requiredString(obj, "Entity")
	if err != nil {
		errs = append(errs, err)
	} else if entity == "" {
		errs = append(errs, fmt.Errorf("Missing attribute: %s", nativeName("Entity")))
	}
	attribute, err := requiredString(obj, "Attribute")
	if err != nil {
		errs = append(errs, err)
	} else if attribute == "" {
		errs = append(errs, fmt.Errorf("Missing attribute: %s", nativeName("Attribute")))
	}
	rawUnit, unitErr := requiredString(obj, "Unit")
	if unitErr != nil {
		errs = append(errs, unitErr)
	}
	unit, err := units.Parse(rawUnit)
	if unitErr == nil && err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &StructuralUnit{
		BaseEntity: base,
		Entity:     entity,
		Attribute:  attribute,
		Unit:       unit,
	}, nil
}

// putFloat writes an optional numeric field into a wire record only when it
// carries a value.
func putFloat(record map[string]any, wireName string, value *float64) {
	if value != nil {
		record[wireName] = *value
	}
}
