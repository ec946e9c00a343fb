package xmi

import "sort"

// Manager holds the models read from a series of documents.
type Manager struct {
	Models []*Model
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// loadOrder ranks entity tags so referenced types (points, materials,
// storeys) are processed before their dependents. Unknown tags sort last
// and keep their input order.
var loadOrder = map[string]int{
	"XmiPoint3D":                   0,
	"XmiLine3D":                    1,
	"XmiArc3D":                     1,
	"XmiStructuralMaterial":        2,
	"XmiCrossSection":              3,
	"XmiStructuralCrossSection":    3,
	"XmiStorey":                    4,
	"XmiStructuralPointConnection": 5,
	"XmiSegment":                   6,
	"XmiStructuralCurveMember":     7,
	"XmiStructuralSurfaceMember":   7,
	"XmiBeam":                      8,
	"XmiColumn":                    8,
	"XmiSlab":                      8,
	"XmiWall":                      8,
	"XmiUnit":                      9,
}

func recordOrder(record map[string]any) int {
	// A wrong-typed tag ranks last; the loader rejects the record either way.
	tag, ok, _ := stringField(record, "EntityType")
	if !ok {
		return len(loadOrder)
	}
	rank, ok := loadOrder[tag]
	if !ok {
		// Tags written without the Xmi prefix rank like their canonical form.
		rank, ok = loadOrder["Xmi"+tag]
		if !ok {
			return len(loadOrder)
		}
	}
	return rank
}

// Read constructs a fresh Model from the document and keeps it. Entity
// records are reordered by type dependency before loading; relationship
// records keep their input order since they resolve after all entities.
func (mg *Manager) Read(doc *Document, opts ...Option) *Model {
	ordered := make([]map[string]any, len(doc.Entities))
	copy(ordered, doc.Entities)
	sort.SliceStable(ordered, func(i, j int) bool {
		return recordOrder(ordered[i]) < recordOrder(ordered[j])
	})

	reordered := *doc
	reordered.Entities = ordered

	model := NewModel(opts...)
	model.Load(&reordered)
	mg.Models = append(mg.Models, model)
	return model
}
