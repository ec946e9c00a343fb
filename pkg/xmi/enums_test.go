package xmi

import (
	"strings"
	"testing"
)

func TestParseMaterialType(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    MaterialType
		wantErr string
	}{
		{name: "exact", raw: "Concrete", want: MaterialConcrete},
		{name: "case-insensitive", raw: "concrete", want: MaterialConcrete},
		{name: "uppercase", raw: "STEEL", want: MaterialSteel},
		{name: "unknown", raw: "Granite", wantErr: `invalid material_type value: "Granite"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMaterialType(tt.raw)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("ParseMaterialType() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMaterialType() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseMaterialType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		raw     string
		want    Shape
		wantErr bool
	}{
		{raw: "Rectangular", want: ShapeRectangular},
		{raw: "I Shape", want: ShapeIShape},
		{raw: "i shape", want: ShapeIShape},
		{raw: "Hexagonal", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseShape(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseShape() error = nil, want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShape() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseShape() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSystemLine(t *testing.T) {
	got, err := ParseSystemLine("middle middle")
	if err != nil {
		t.Fatalf("ParseSystemLine() error = %v", err)
	}
	if got != SystemLineMiddleMiddle {
		t.Errorf("ParseSystemLine() = %q, want %q", got, SystemLineMiddleMiddle)
	}

	_, err = ParseSystemLine("Center")
	if err == nil || !strings.Contains(err.Error(), "invalid system_line value") {
		t.Errorf("ParseSystemLine() error = %v, want an invalid-value error", err)
	}
}

func TestParseSegmentType(t *testing.T) {
	got, err := ParseSegmentType("Circular Arc")
	if err != nil {
		t.Fatalf("ParseSegmentType() error = %v", err)
	}
	if got != SegmentCircularArc {
		t.Errorf("ParseSegmentType() = %q, want %q", got, SegmentCircularArc)
	}
	if _, err := ParseSegmentType("Helix"); err == nil {
		t.Error("ParseSegmentType() should reject an unknown value")
	}
}
