package xmi

import "strings"

// entityConstructors maps EntityType tags to variant constructors. Every
// canonical tag is also registered without its "Xmi" prefix, since producers
// disagree on whether the prefix belongs on the wire.
var entityConstructors = map[string]EntityConstructor{}

func registerEntity(tag string, ctor EntityConstructor) {
	entityConstructors[tag] = ctor
	if short := strings.TrimPrefix(tag, "Xmi"); short != tag {
		entityConstructors[short] = ctor
	}
}

// lookupEntityConstructor resolves an EntityType tag. A miss is not an
// error; the loader records it as an unrecognized-type rejection.
func lookupEntityConstructor(tag string) (EntityConstructor, bool) {
	ctor, ok := entityConstructors[tag]
	return ctor, ok
}

func init() {
	registerEntity("XmiPoint3D", newPoint3D)
	registerEntity("XmiLine3D", newLine3D)
	registerEntity("XmiArc3D", newArc3D)
	registerEntity("XmiStructuralMaterial", newMaterial)
	registerEntity("XmiCrossSection", newCrossSection)
	registerEntity("XmiStructuralCrossSection", newCrossSection)
	registerEntity("XmiStructuralCurveMember", newCurveMember)
	registerEntity("XmiStructuralSurfaceMember", newSurfaceMember)
	registerEntity("XmiStructuralPointConnection", newPointConnection)
	registerEntity("XmiStorey", newStorey)
	registerEntity("XmiSegment", newSegment)
	registerEntity("XmiUnit", newStructuralUnit)
	registerEntity("XmiBeam", newBeam)
	registerEntity("XmiColumn", newColumn)
	registerEntity("XmiSlab", newSlab)
	registerEntity("XmiWall", newWall)
}
