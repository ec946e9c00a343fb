package xmi

import (
	"errors"
	"fmt"
)

// Relationship is a directed, typed edge between two entities of the same
// model. Endpoints are live references, never raw identifiers; a
// relationship is only constructed once both endpoints resolved.
type Relationship struct {
	ID          string
	Name        string
	Description string
	EntityType  string
	UMLType     string
	Source      Entity
	Target      Entity
	// IsBegin/IsEnd mark which member end a geometry or node attachment
	// belongs to. Only carried by the relationship kinds whose spec sets
	// hasEnds.
	IsBegin bool
	IsEnd   bool
}

// relationshipSpec is the per-kind behavior table: wire defaults and the
// endpoint type constraints checked at construction time.
type relationshipSpec struct {
	tag         string
	defaultName string
	umlType     string
	hasEnds     bool
	checkSource func(Entity) error
	checkTarget func(Entity) error
}

func anyEntity(Entity) error { return nil }

func requireDomain(domain Domain, endpoint string) func(Entity) error {
	return func(e Entity) error {
		if e.Base().Domain != domain {
			return fmt.Errorf("%s must be a %s entity", endpoint, domain)
		}
		return nil
	}
}

func requireType[T Entity](endpoint, what string) func(Entity) error {
	return func(e Entity) error {
		if _, ok := e.(T); !ok {
			return fmt.Errorf("%s must be of type %s", endpoint, what)
		}
		return nil
	}
}

var relationshipSpecs = map[string]*relationshipSpec{}

func registerRelationship(spec *relationshipSpec) {
	// Producers write the kind with or without the "Rel" infix.
	relationshipSpecs[spec.tag] = spec
	short := "Xmi" + spec.tag[len("XmiRel"):]
	relationshipSpecs[short] = spec
}

// lookupRelationshipSpec resolves a relationship type tag.
func lookupRelationshipSpec(tag string) (*relationshipSpec, bool) {
	spec, ok := relationshipSpecs[tag]
	return spec, ok
}

func init() {
	registerRelationship(&relationshipSpec{
		tag:         "XmiRelHasGeometry",
		defaultName: "hasGeometry",
		hasEnds:     true,
		checkSource: anyEntity,
		checkTarget: requireDomain(DomainGeometry, "Target"),
	})
	registerRelationship(&relationshipSpec{
		tag:         "XmiRelHasLine3D",
		defaultName: "hasLine3D",
		checkSource: anyEntity,
		checkTarget: requireType[*Line3D]("Target", "Line3D"),
	})
	registerRelationship(&relationshipSpec{
		tag:         "XmiRelHasPoint3D",
		defaultName: "hasPoint3D",
		checkSource: anyEntity,
		checkTarget: requireType[*Point3D]("Target", "Point3D"),
	})
	registerRelationship(&relationshipSpec{
		tag:         "XmiRelHasSegment",
		defaultName: "hasSegment",
		checkSource: anyEntity,
		checkTarget: requireType[*Segment]("Target", "Segment"),
	})
	registerRelationship(&relationshipSpec{
		tag:         "XmiRelHasCrossSection",
		defaultName: "hasCrossSection",
		checkSource: anyEntity,
		checkTarget: requireType[*CrossSection]("Target", "CrossSection"),
	})
	registerRelationship(&relationshipSpec{
		tag:         "XmiRelHasStructuralCrossSection",
		defaultName: "hasStructuralCrossSection",
		checkSource: anyEntity,
		checkTarget: requireType[*CrossSection]("Target", "CrossSection"),
	})
	registerRelationship(&relationshipSpec{
		tag:         "XmiRelHasStructuralMaterial",
		defaultName: "hasStructuralMaterial",
		checkSource: anyEntity,
		checkTarget: requireType[*Material]("Target", "Material"),
	})
	registerRelationship(&relationshipSpec{
		tag:         "XmiRelHasStructuralPointConnection",
		defaultName: "hasStructuralPointConnection",
		hasEnds:     true,
		checkSource: anyEntity,
		checkTarget: requireType[*PointConnection]("Target", "PointConnection"),
	})
	registerRelationship(&relationshipSpec{
		tag:         "XmiRelHasStructuralStorey",
		defaultName: "hasStructuralStorey",
		checkSource: anyEntity,
		checkTarget: requireType[*Storey]("Target", "Storey"),
	})
	registerRelationship(&relationshipSpec{
		tag:         "XmiRelHasStructuralCurveMember",
		defaultName: "hasStructuralCurveMember",
		umlType:     "Association",
		checkSource: requireDomain(DomainPhysical, "Source"),
		checkTarget: requireType[*CurveMember]("Target", "CurveMember"),
	})
}

// newRelationship builds a relationship of the given kind between two
// resolved entities. The fields map carries the record's remaining wire
// fields (Source/Target excluded by the loader).
func newRelationship(spec *relationshipSpec, source, target Entity, fields map[string]any) (*Relationship, []error) {
	var errs []error
	if source == nil || target == nil {
		return nil, []error{errors.New("missing source or target entity")}
	}
	if err := spec.checkSource(source); err != nil {
		errs = append(errs, err)
	}
	if err := spec.checkTarget(target); err != nil {
		errs = append(errs, err)
	}

	rel := &Relationship{
		Name:       spec.defaultName,
		EntityType: spec.tag,
		UMLType:    spec.umlType,
		Source:     source,
		Target:     target,
	}
	if id, ok, err := stringField(fields, "ID"); err != nil {
		errs = append(errs, err)
	} else if ok {
		rel.ID = id
	}
	if name, ok, err := stringField(fields, "Name"); err != nil {
		errs = append(errs, err)
	} else if ok && name != "" {
		rel.Name = name
	}
	if rel.Name == "" {
		errs = append(errs, errors.New("Name must be provided"))
	}
	if description, ok, err := stringField(fields, "Description"); err != nil {
		errs = append(errs, err)
	} else if ok {
		rel.Description = description
	}
	if umlType, ok, err := stringField(fields, "UmlType"); err != nil {
		errs = append(errs, err)
	} else if ok && umlType != "" {
		rel.UMLType = umlType
	}
	if entityType, ok, err := stringField(fields, "EntityType"); err != nil {
		errs = append(errs, err)
	} else if ok && entityType != "" {
		rel.EntityType = entityType
	}
	if spec.hasEnds {
		isBegin, err := boolField(fields, "IsBegin")
		if err != nil {
			errs = append(errs, err)
		}
		isEnd, err := boolField(fields, "IsEnd")
		if err != nil {
			errs = append(errs, err)
		}
		rel.IsBegin = isBegin
		rel.IsEnd = isEnd
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return rel, nil
}

// encode renders the relationship as a wire-format record, with endpoints
// written back as identifiers.
func (r *Relationship) encode() map[string]any {
	record := map[string]any{
		"ID":         r.ID,
		"Name":       r.Name,
		"EntityType": r.EntityType,
		"Source":     r.Source.Base().ID,
		"Target":     r.Target.Base().ID,
	}
	if r.Description != "" {
		record["Description"] = r.Description
	}
	if r.UMLType != "" {
		record["UmlType"] = r.UMLType
	}
	if spec, ok := lookupRelationshipSpec(r.EntityType); ok && spec.hasEnds {
		record["IsBegin"] = r.IsBegin
		record["IsEnd"] = r.IsEnd
	}
	return record
}
