package xmi

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/xmi-schema/xmi-go/pkg/logger"
)

// IDGenerator produces identifiers for records that arrive without one.
type IDGenerator func() string

// Option configures a Model at construction time.
type Option func(*Model)

// WithIDGenerator overrides the identifier generator, so tests can pin
// deterministic ids.
func WithIDGenerator(generate IDGenerator) Option {
	return func(m *Model) {
		m.newID = generate
	}
}

// WithTolerance overrides the default coordinate tolerance of the model's
// point cache.
func WithTolerance(tolerance float64) Option {
	return func(m *Model) {
		m.tolerance = tolerance
	}
}

// Model is the aggregate root: the loaded entities and relationships, the
// rejected-record log and the model-level metadata. A Model is populated
// once via Load and read many times; it owns its entities exclusively, and
// its relationships reference entities of the same Model only.
//
// A Model is not safe for concurrent loads; callers own it exclusively while
// loading.
type Model struct {
	Name               string
	XmiVersion         string
	ApplicationName    string
	ApplicationVersion string

	Entities      []Entity
	Relationships []*Relationship
	Histories     []any
	Errors        []ErrorLog

	points    *PointCache
	newID     IDGenerator
	tolerance float64
	index     map[string]Entity
}

// NewModel creates an empty model.
func NewModel(opts ...Option) *Model {
	m := &Model{
		newID:     uuid.NewString,
		tolerance: DefaultTolerance,
		index:     make(map[string]Entity),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.points = newPointCache(m.tolerance, func() string { return m.newID() })
	return m
}

// Points exposes the model's coordinate deduplication cache for post-load
// programmatic point creation consistent with what was loaded.
func (m *Model) Points() *PointCache {
	return m.points
}

// Load populates the model from a wire document in two phases: entities
// first, then relationships resolved against the just-built entity set. A
// failure in one record never aborts the load; the record is skipped and the
// rejection appended to Errors.
func (m *Model) Load(doc *Document) {
	m.Name = doc.Name
	m.XmiVersion = doc.XmiVersion
	m.ApplicationName = doc.ApplicationName
	m.ApplicationVersion = doc.ApplicationVersion
	m.Histories = doc.Histories

	for index, record := range doc.Entities {
		m.loadEntity(index, record)
	}
	for index, record := range doc.Relationships {
		m.loadRelationship(index, record)
	}

	logger.Debug(
		"model loaded",
		"name", m.Name,
		"entities", len(m.Entities),
		"relationships", len(m.Relationships),
		"errors", len(m.Errors),
	)
}

func (m *Model) loadEntity(index int, record map[string]any) {
	tag := UnknownEntityType
	defer func() {
		if r := recover(); r != nil {
			m.Errors = append(m.Errors, newErrorLog(tag, index, fmt.Sprintf("unexpected error: %v", r), record))
		}
	}()

	rawTag, ok, err := stringField(record, "EntityType")
	if err != nil {
		m.Errors = append(m.Errors, newErrorLog(UnknownEntityType, index, err.Error(), record))
		return
	}
	if !ok || rawTag == "" {
		m.Errors = append(m.Errors, newErrorLog(UnknownEntityType, index, "missing EntityType tag", record))
		return
	}
	tag = rawTag

	ctor, ok := lookupEntityConstructor(tag)
	if !ok {
		m.Errors = append(m.Errors, newErrorLog(tag, index, fmt.Sprintf("unrecognized entity type: %s", tag), record))
		return
	}

	entity, errs := ctor(record, m.points.CreatePoint)
	if len(errs) > 0 {
		for _, err := range errs {
			m.Errors = append(m.Errors, newErrorLog(tag, index, err.Error(), record))
		}
		return
	}

	m.addEntity(entity)
	if point, ok := entity.(*Point3D); ok {
		m.points.Register(point)
	}
}

// addEntity applies the id/name defaults and indexes the entity. Duplicate
// ids are kept (first match wins on lookup) and flagged in the log.
func (m *Model) addEntity(entity Entity) {
	base := entity.Base()
	if base.ID == "" {
		base.ID = m.newID()
	}
	if base.Name == "" {
		base.Name = base.ID
	}
	if _, dup := m.index[base.ID]; dup {
		logger.Warn("duplicate entity id", "id", base.ID, "entity_type", base.EntityType)
	} else {
		m.index[base.ID] = entity
	}
	m.Entities = append(m.Entities, entity)
}

func (m *Model) loadRelationship(index int, record map[string]any) {
	tag := UnknownEntityType
	defer func() {
		if r := recover(); r != nil {
			m.Errors = append(m.Errors, newErrorLog(tag, index, fmt.Sprintf("unexpected error: %v", r), record))
		}
	}()

	rawTag, ok, err := stringField(record, "EntityType")
	if err != nil {
		m.Errors = append(m.Errors, newErrorLog(UnknownEntityType, index, err.Error(), record))
		return
	}
	if !ok || rawTag == "" {
		m.Errors = append(m.Errors, newErrorLog(UnknownEntityType, index, "missing EntityType tag", record))
		return
	}
	tag = rawTag

	spec, ok := lookupRelationshipSpec(tag)
	if !ok {
		m.Errors = append(m.Errors, newErrorLog(tag, index, fmt.Sprintf("unrecognized relationship type: %s", tag), record))
		return
	}

	sourceID, _, srcErr := stringField(record, "Source")
	targetID, _, tgtErr := stringField(record, "Target")
	if srcErr != nil || tgtErr != nil {
		for _, err := range []error{srcErr, tgtErr} {
			if err != nil {
				m.Errors = append(m.Errors, newErrorLog(tag, index, err.Error(), record))
			}
		}
		return
	}
	source := m.FindEntity(sourceID)
	target := m.FindEntity(targetID)
	if source == nil || target == nil {
		m.Errors = append(m.Errors, newErrorLog(tag, index, "missing source or target entity", record))
		return
	}

	fields := make(map[string]any, len(record))
	for key, value := range record {
		if key == "Source" || key == "Target" || key == "source" || key == "target" {
			continue
		}
		fields[key] = value
	}

	rel, errs := newRelationship(spec, source, target, fields)
	if len(errs) > 0 {
		for _, err := range errs {
			m.Errors = append(m.Errors, newErrorLog(tag, index, err.Error(), record))
		}
		return
	}
	if rel.ID == "" {
		rel.ID = m.newID()
	}
	m.Relationships = append(m.Relationships, rel)
}

// FindEntity returns the entity with the given id, or nil when no entity
// carries it. With duplicate ids in the input the first loaded entity wins.
func (m *Model) FindEntity(id string) Entity {
	if id == "" {
		return nil
	}
	return m.index[id]
}

// FindRelationshipsBySource returns every relationship whose source is the
// given entity instance.
func (m *Model) FindRelationshipsBySource(entity Entity) []*Relationship {
	var matches []*Relationship
	for _, rel := range m.Relationships {
		if rel.Source == entity {
			matches = append(matches, rel)
		}
	}
	return matches
}

// FindRelationshipsByTarget returns every relationship whose target is the
// given entity instance.
func (m *Model) FindRelationshipsByTarget(entity Entity) []*Relationship {
	var matches []*Relationship
	for _, rel := range m.Relationships {
		if rel.Target == entity {
			matches = append(matches, rel)
		}
	}
	return matches
}

// CreateRelationship constructs a relationship of the given kind between two
// entities already owned by the model and appends it to the relationship
// list. Used for programmatic graph construction outside the bulk Load path.
func (m *Model) CreateRelationship(tag string, source, target Entity, fields map[string]any) (*Relationship, []error) {
	spec, ok := lookupRelationshipSpec(tag)
	if !ok {
		return nil, []error{fmt.Errorf("unrecognized relationship type: %s", tag)}
	}
	if fields == nil {
		fields = map[string]any{}
	}
	rel, errs := newRelationship(spec, source, target, fields)
	if len(errs) > 0 {
		return nil, errs
	}
	if rel.ID == "" {
		rel.ID = m.newID()
	}
	m.Relationships = append(m.Relationships, rel)
	return rel, nil
}

// Dump renders the model back into the wire format. Loading the dumped
// document again reproduces an equivalent graph.
func (m *Model) Dump() *Document {
	doc := &Document{
		Name:               m.Name,
		XmiVersion:         m.XmiVersion,
		ApplicationName:    m.ApplicationName,
		ApplicationVersion: m.ApplicationVersion,
		Histories:          m.Histories,
		Errors:             m.Errors,
	}
	for _, entity := range m.Entities {
		doc.Entities = append(doc.Entities, entity.encode())
	}
	for _, rel := range m.Relationships {
		doc.Relationships = append(doc.Relationships, rel.encode())
	}
	return doc
}
