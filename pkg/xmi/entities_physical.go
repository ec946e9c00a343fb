package xmi

// Beam is a physical beam element. Its analytical counterpart is a
// CurveMember, linked through a HasStructuralCurveMember relationship.
type Beam struct {
	BaseEntity
	SystemLine SystemLine
	Length     float64 `validate:"gte=0"`
	memberAxes
	nodeOffsets
	EndFixityStart string
	EndFixityEnd   string
}

func (b *Beam) encode() map[string]any {
	record := encodeBase(&b.BaseEntity)
	record["SystemLine"] = string(b.SystemLine)
	record["Length"] = b.Length
	encodeMemberAxes(record, b.memberAxes)
	encodeNodeOffsets(record, b.nodeOffsets)
	if b.EndFixityStart != "" {
		record["EndFixityStart"] = b.EndFixityStart
	}
	if b.EndFixityEnd != "" {
		record["EndFixityEnd"] = b.EndFixityEnd
	}
	return record
}

// parseLinearPhysical covers the shared construction of beams and columns,
// which carry identical fields.
func parseLinearPhysical(obj map[string]any) (SystemLine, float64, memberAxes, nodeOffsets, string, string, []error) {
	var errs []error
	rawLine, lineErr := requiredString(obj, "SystemLine")
	if lineErr != nil {
		errs = append(errs, lineErr)
	}
	systemLine, err := ParseSystemLine(rawLine)
	if lineErr == nil && err != nil {
		errs = append(errs, err)
	}
	length, err := requiredFloat(obj, "Length")
	if err != nil {
		errs = append(errs, err)
	}
	axes, axesErrs := parseMemberAxes(obj)
	errs = append(errs, axesErrs...)
	offsets, offsetErrs := parseNodeOffsets(obj)
	errs = append(errs, offsetErrs...)
	fixityStart, _, err := stringField(obj, "EndFixityStart")
	if err != nil {
		errs = append(errs, err)
	}
	fixityEnd, _, err := stringField(obj, "EndFixityEnd")
	if err != nil {
		errs = append(errs, err)
	}
	return systemLine, length, axes, offsets, fixityStart, fixityEnd, errs
}

func newBeam(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, baseErrs := parseBase(obj, "XmiBeam", DomainPhysical)
	systemLine, length, axes, offsets, fixityStart, fixityEnd, errs := parseLinearPhysical(obj)
	errs = append(errs, baseErrs...)
	if len(errs) > 0 {
		return nil, errs
	}
	beam := &Beam{
		BaseEntity:     base,
		SystemLine:     systemLine,
		Length:         length,
		memberAxes:     axes,
		nodeOffsets:    offsets,
		EndFixityStart: fixityStart,
		EndFixityEnd:   fixityEnd,
	}
	if errs := collectValidationErrors(validate.Struct(beam)); len(errs) > 0 {
		return nil, errs
	}
	return beam, nil
}

// Column is a physical column element, structurally identical to Beam but a
// distinct variant on the wire.
type Column struct {
	BaseEntity
	SystemLine SystemLine
	Length     float64 `validate:"gte=0"`
	memberAxes
	nodeOffsets
	EndFixityStart string
	EndFixityEnd   string
}

func (c *Column) encode() map[string]any {
	record := encodeBase(&c.BaseEntity)
	record["SystemLine"] = string(c.SystemLine)
	record["Length"] = c.Length
	encodeMemberAxes(record, c.memberAxes)
	encodeNodeOffsets(record, c.nodeOffsets)
	if c.EndFixityStart != "" {
		record["EndFixityStart"] = c.EndFixityStart
	}
	if c.EndFixityEnd != "" {
		record["EndFixityEnd"] = c.EndFixityEnd
	}
	return record
}

func newColumn(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, baseErrs := parseBase(obj, "XmiColumn", DomainPhysical)
	systemLine, length, axes, offsets, fixityStart, fixityEnd, errs := parseLinearPhysical(obj)
	errs = append(errs, baseErrs...)
	if len(errs) > 0 {
		return nil, errs
	}
	column := &Column{
		BaseEntity:     base,
		SystemLine:     systemLine,
		Length:         length,
		memberAxes:     axes,
		nodeOffsets:    offsets,
		EndFixityStart: fixityStart,
		EndFixityEnd:   fixityEnd,
	}
	if errs := collectValidationErrors(validate.Struct(column)); len(errs) > 0 {
		return nil, errs
	}
	return column, nil
}

// Slab is a physical slab element. It carries only the shared entity fields;
// geometry and analytical links are expressed through relationships.
type Slab struct {
	BaseEntity
}

func (s *Slab) encode() map[string]any {
	return encodeBase(&s.BaseEntity)
}

func newSlab(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiSlab", DomainPhysical)
	if len(errs) > 0 {
		return nil, errs
	}
	return &Slab{BaseEntity: base}, nil
}

// Wall is a physical wall element.
type Wall struct {
	BaseEntity
}

func (w *Wall) encode() map[string]any {
	return encodeBase(&w.BaseEntity)
}

func newWall(obj map[string]any, _ PointFactory) (Entity, []error) {
	base, errs := parseBase(obj, "XmiWall", DomainPhysical)
	if len(errs) > 0 {
		return nil, errs
	}
	return &Wall{BaseEntity: base}, nil
}
