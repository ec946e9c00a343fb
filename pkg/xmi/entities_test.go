package xmi

import (
	"strings"
	"testing"

	"github.com/xmi-schema/xmi-go/pkg/units"
)

func loadSingle(t *testing.T, record map[string]any) (Entity, []ErrorLog) {
	t.Helper()
	model := NewModel(WithIDGenerator(sequentialIDs("gen")))
	model.Load(&Document{Entities: []map[string]any{record}})
	if len(model.Entities) > 0 {
		return model.Entities[0], model.Errors
	}
	return nil, model.Errors
}

func TestNewMaterial(t *testing.T) {
	tests := []struct {
		name    string
		record  map[string]any
		check   func(t *testing.T, m *Material)
		wantErr string
	}{
		{
			name: "full record",
			record: map[string]any{
				"ID": "mat1", "EntityType": "XmiStructuralMaterial",
				"MaterialType": "Concrete", "Grade": 30.0, "UnitWeight": 24.0,
				"EModulus": 2.8e10, "PoissonRatio": 0.2,
			},
			check: func(t *testing.T, m *Material) {
				if m.MaterialType != MaterialConcrete {
					t.Errorf("MaterialType = %q, want Concrete", m.MaterialType)
				}
				if m.Grade == nil || *m.Grade != 30.0 {
					t.Errorf("Grade = %v, want 30", m.Grade)
				}
				if m.GModulus != nil {
					t.Error("GModulus should be nil when absent")
				}
				if m.Domain != DomainStructuralAnalytical {
					t.Errorf("Domain = %q, want StructuralAnalytical", m.Domain)
				}
			},
		},
		{
			name: "native aliases",
			record: map[string]any{
				"ID": "mat1", "EntityType": "XmiStructuralMaterial",
				"material_type": "Steel", "e_modulus": 2.1e11,
			},
			check: func(t *testing.T, m *Material) {
				if m.MaterialType != MaterialSteel {
					t.Errorf("MaterialType = %q, want Steel", m.MaterialType)
				}
				if m.EModulus == nil || *m.EModulus != 2.1e11 {
					t.Errorf("EModulus = %v, want 2.1e11", m.EModulus)
				}
			},
		},
		{
			name: "missing material type",
			record: map[string]any{
				"ID": "mat1", "EntityType": "XmiStructuralMaterial",
			},
			wantErr: "Missing attribute: material_type",
		},
		{
			name: "negative unit weight",
			record: map[string]any{
				"ID": "mat1", "EntityType": "XmiStructuralMaterial",
				"MaterialType": "Concrete", "UnitWeight": -1.0,
			},
			wantErr: "gte constraint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity, errs := loadSingle(t, tt.record)
			if tt.wantErr != "" {
				if entity != nil {
					t.Fatal("entity was constructed despite errors")
				}
				if len(errs) == 0 || !strings.Contains(errs[0].Message, tt.wantErr) {
					t.Fatalf("errors = %v, want one containing %q", errs, tt.wantErr)
				}
				return
			}
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			tt.check(t, entity.(*Material))
		})
	}
}

func TestNewCrossSection(t *testing.T) {
	tests := []struct {
		name    string
		record  map[string]any
		want    []float64
		wantErr string
	}{
		{
			name: "string parameters",
			record: map[string]any{
				"ID": "cs1", "EntityType": "XmiCrossSection",
				"Shape": "Rectangular", "Parameters": "0.5;0.3",
			},
			want: []float64{0.5, 0.3},
		},
		{
			name: "list parameters",
			record: map[string]any{
				"ID": "cs1", "EntityType": "XmiStructuralCrossSection",
				"Shape": "Circular", "Parameters": []any{0.4},
			},
			want: []float64{0.4},
		},
		{
			name: "missing parameters",
			record: map[string]any{
				"ID": "cs1", "EntityType": "XmiCrossSection", "Shape": "Rectangular",
			},
			wantErr: "Missing attribute: parameters",
		},
		{
			name: "negative parameter",
			record: map[string]any{
				"ID": "cs1", "EntityType": "XmiCrossSection",
				"Shape": "Rectangular", "Parameters": "0.5;-0.3",
			},
			wantErr: "negative",
		},
		{
			name: "negative area",
			record: map[string]any{
				"ID": "cs1", "EntityType": "XmiCrossSection",
				"Shape": "Rectangular", "Parameters": "0.5;0.3", "Area": -1.0,
			},
			wantErr: "gte constraint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity, errs := loadSingle(t, tt.record)
			if tt.wantErr != "" {
				if len(errs) == 0 || !strings.Contains(errs[0].Message, tt.wantErr) {
					t.Fatalf("errors = %v, want one containing %q", errs, tt.wantErr)
				}
				return
			}
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			section := entity.(*CrossSection)
			if len(section.Parameters) != len(tt.want) {
				t.Fatalf("Parameters = %v, want %v", section.Parameters, tt.want)
			}
			for i := range tt.want {
				if section.Parameters[i] != tt.want[i] {
					t.Errorf("Parameters[%d] = %g, want %g", i, section.Parameters[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewCurveMemberAxisDefaults(t *testing.T) {
	entity, errs := loadSingle(t, map[string]any{
		"ID": "cm1", "EntityType": "XmiStructuralCurveMember",
		"CurveMemberType": "Beam", "SystemLine": "Top Middle",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	member := entity.(*CurveMember)
	if member.LocalAxisX != [3]float64{1, 0, 0} {
		t.Errorf("LocalAxisX = %v, want the default (1,0,0)", member.LocalAxisX)
	}
	if member.LocalAxisY != [3]float64{0, 1, 0} {
		t.Errorf("LocalAxisY = %v, want the default (0,1,0)", member.LocalAxisY)
	}
	if member.LocalAxisZ != [3]float64{0, 0, 1} {
		t.Errorf("LocalAxisZ = %v, want the default (0,0,1)", member.LocalAxisZ)
	}
	if member.BeginNodeXOffset != 0 || member.EndNodeZOffset != 0 {
		t.Error("node offsets should default to zero")
	}
}

func TestNewCurveMemberAxisOverride(t *testing.T) {
	entity, errs := loadSingle(t, map[string]any{
		"ID": "cm1", "EntityType": "XmiStructuralCurveMember",
		"CurveMemberType": "Column", "SystemLine": "Middle Middle",
		"LocalAxisX": "0,0,1", "LocalAxisZ": []any{1.0, 0.0, 0.0},
		"BeginNodeXOffset": 0.05, "Length": 3.2,
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	member := entity.(*CurveMember)
	if member.LocalAxisX != [3]float64{0, 0, 1} {
		t.Errorf("LocalAxisX = %v, want (0,0,1)", member.LocalAxisX)
	}
	if member.LocalAxisZ != [3]float64{1, 0, 0} {
		t.Errorf("LocalAxisZ = %v, want (1,0,0)", member.LocalAxisZ)
	}
	if member.BeginNodeXOffset != 0.05 {
		t.Errorf("BeginNodeXOffset = %g, want 0.05", member.BeginNodeXOffset)
	}
	if member.Length == nil || *member.Length != 3.2 {
		t.Errorf("Length = %v, want 3.2", member.Length)
	}
}

func TestNewSurfaceMember(t *testing.T) {
	tests := []struct {
		name    string
		record  map[string]any
		wantErr string
	}{
		{
			name: "valid slab",
			record: map[string]any{
				"ID": "sm1", "EntityType": "XmiStructuralSurfaceMember",
				"SurfaceMemberType": "Slab", "Thickness": 0.2,
				"SystemPlane": "Middle", "SpanType": "Two Way",
			},
		},
		{
			name: "missing thickness",
			record: map[string]any{
				"ID": "sm1", "EntityType": "XmiStructuralSurfaceMember",
				"SurfaceMemberType": "Wall",
			},
			wantErr: "Missing attribute: thickness",
		},
		{
			name: "invalid span type",
			record: map[string]any{
				"ID": "sm1", "EntityType": "XmiStructuralSurfaceMember",
				"SurfaceMemberType": "Slab", "Thickness": 0.2, "SpanType": "Three Way",
			},
			wantErr: "invalid span_type value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity, errs := loadSingle(t, tt.record)
			if tt.wantErr != "" {
				if len(errs) == 0 || !strings.Contains(errs[0].Message, tt.wantErr) {
					t.Fatalf("errors = %v, want one containing %q", errs, tt.wantErr)
				}
				return
			}
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			member := entity.(*SurfaceMember)
			if member.Thickness != 0.2 {
				t.Errorf("Thickness = %g, want 0.2", member.Thickness)
			}
			if member.SystemPlane != SystemPlaneMiddle {
				t.Errorf("SystemPlane = %q, want Middle", member.SystemPlane)
			}
			if member.SpanType != SpanTwoWay {
				t.Errorf("SpanType = %q, want Two Way", member.SpanType)
			}
		})
	}
}

func TestNewStorey(t *testing.T) {
	entity, errs := loadSingle(t, map[string]any{
		"ID": "st1", "EntityType": "XmiStorey",
		"StoreyElevation": 6.4, "StoreyMass": 12000.0,
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	storey := entity.(*Storey)
	if storey.StoreyElevation != 6.4 || storey.StoreyMass != 12000.0 {
		t.Errorf("storey = {%g %g}, want {6.4 12000}", storey.StoreyElevation, storey.StoreyMass)
	}

	_, errs = loadSingle(t, map[string]any{
		"ID": "st2", "EntityType": "XmiStorey",
		"StoreyElevation": 6.4, "StoreyMass": -1.0,
	})
	if len(errs) == 0 {
		t.Error("a negative storey mass should be rejected")
	}
}

func TestNewSegment(t *testing.T) {
	entity, errs := loadSingle(t, map[string]any{
		"ID": "seg1", "EntityType": "XmiSegment",
		"SegmentType": "Line", "Position": 1,
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	segment := entity.(*Segment)
	if segment.SegmentType != SegmentLine {
		t.Errorf("SegmentType = %q, want Line", segment.SegmentType)
	}
	if segment.Position != 1 {
		t.Errorf("Position = %d, want 1", segment.Position)
	}
	if segment.Domain != DomainShared {
		t.Errorf("Domain = %q, want Shared", segment.Domain)
	}

	_, errs = loadSingle(t, map[string]any{
		"ID": "seg2", "EntityType": "XmiSegment", "SegmentType": "Helix",
	})
	if len(errs) == 0 || !strings.Contains(errs[0].Message, "invalid segment_type value") {
		t.Errorf("errors = %v, want an invalid segment_type error", errs)
	}
}

func TestNewStructuralUnit(t *testing.T) {
	entity, errs := loadSingle(t, map[string]any{
		"ID": "u1", "EntityType": "XmiUnit",
		"Entity": "XmiStructuralCurveMember", "Attribute": "Length", "Unit": "m",
	})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	unit := entity.(*StructuralUnit)
	if unit.Unit != units.Meter {
		t.Errorf("Unit = %q, want m", unit.Unit)
	}

	_, errs = loadSingle(t, map[string]any{
		"ID": "u2", "EntityType": "XmiUnit",
		"Entity": "XmiStructuralCurveMember", "Attribute": "Length", "Unit": "furlong",
	})
	if len(errs) == 0 {
		t.Error("an unknown unit should be rejected")
	}
}

func TestNewBeamAndColumn(t *testing.T) {
	tests := []struct {
		name   string
		record map[string]any
	}{
		{
			name: "beam",
			record: map[string]any{
				"ID": "b1", "EntityType": "XmiBeam",
				"SystemLine": "Top Middle", "Length": 6.0,
			},
		},
		{
			name: "column",
			record: map[string]any{
				"ID": "c1", "EntityType": "XmiColumn",
				"SystemLine": "Middle Middle", "Length": 3.2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity, errs := loadSingle(t, tt.record)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if entity.Base().Domain != DomainPhysical {
				t.Errorf("Domain = %q, want Physical", entity.Base().Domain)
			}
		})
	}
}

func TestNewArc3DNegativeRadius(t *testing.T) {
	point := map[string]any{"X": 0.0, "Y": 0.0, "Z": 0.0}
	_, errs := loadSingle(t, map[string]any{
		"ID": "a1", "EntityType": "XmiArc3D",
		"StartPoint": point,
		"EndPoint":   map[string]any{"X": 1.0, "Y": 0.0, "Z": 0.0},
		"CenterPoint": map[string]any{
			"X": 0.5, "Y": 0.0, "Z": 0.0,
		},
		"Radius": -0.5,
	})
	if len(errs) == 0 || !strings.Contains(errs[0].Message, "gte constraint") {
		t.Errorf("errors = %v, want a gte constraint violation", errs)
	}
}
