package xmi

import (
	"github.com/go-playground/validator"
)

// Entity is a node in the model graph. The interface is closed: only the
// variants declared in this package satisfy it, and downstream code switches
// on the concrete type (or the EntityType tag) rather than on inheritance.
type Entity interface {
	// Base gives access to the identification fields shared by every
	// variant.
	Base() *BaseEntity
	// encode renders the entity as a wire-format record.
	encode() map[string]any
}

// BaseEntity carries the identification and classification fields shared by
// every entity variant.
type BaseEntity struct {
	ID          string
	Name        string
	IFCGUID     string
	NativeID    string
	Description string
	EntityType  string
	Domain      Domain
}

// Base implements Entity.
func (b *BaseEntity) Base() *BaseEntity { return b }

// EntityConstructor builds one entity variant from a loosely typed record.
// The optional point factory is consulted by constructors that build nested
// Point3D values, so coordinate deduplication applies transitively. On any
// validation failure the constructor returns a nil entity together with the
// complete error list for the record, never a half-built instance.
type EntityConstructor func(obj map[string]any, points PointFactory) (Entity, []error)

// PointFactory builds or reuses a Point3D for a coordinate triple.
type PointFactory func(x, y, z float64) *Point3D

// validate is shared by the constructors that enforce numeric-range
// invariants via struct tags.
var validate = validator.New()

// parseBase reads the shared identification fields. The id/name defaults are
// applied by the Model when the entity is added, since id generation is an
// injected capability of the Model. A present field of the wrong type is an
// error, never a silent default.
func parseBase(obj map[string]any, tag string, domain Domain) (BaseEntity, []error) {
	var errs []error
	base := BaseEntity{
		EntityType: tag,
		Domain:     domain,
	}
	for wireName, field := range map[string]*string{
		"ID":          &base.ID,
		"Name":        &base.Name,
		"Description": &base.Description,
		"NativeId":    &base.NativeID,
		"IFCGUID":     &base.IFCGUID,
	} {
		value, ok, err := stringField(obj, wireName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			*field = value
		}
	}
	entityType, ok, err := stringField(obj, "EntityType")
	if err != nil {
		errs = append(errs, err)
	} else if ok && entityType != "" {
		base.EntityType = entityType
	}
	return base, errs
}

// encodeBase renders the shared fields of an entity. Optional metadata is
// only written when present so round trips do not invent fields.
func encodeBase(b *BaseEntity) map[string]any {
	record := map[string]any{
		"ID":         b.ID,
		"Name":       b.Name,
		"EntityType": b.EntityType,
	}
	if b.Description != "" {
		record["Description"] = b.Description
	}
	if b.NativeID != "" {
		record["NativeId"] = b.NativeID
	}
	if b.IFCGUID != "" {
		record["IFCGUID"] = b.IFCGUID
	}
	return record
}

// collectValidationErrors converts validator failures into the structured
// per-field errors the loader records.
func collectValidationErrors(err error) []error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []error{err}
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fieldConstraintError(fe.Field(), fe.Tag(), fe.Value()))
	}
	return errs
}
