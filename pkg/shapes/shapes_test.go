package shapes

import (
	"reflect"
	"strings"
	"testing"

	"github.com/xmi-schema/xmi-go/pkg/xmi"
)

func TestFromList(t *testing.T) {
	tests := []struct {
		name    string
		shape   xmi.Shape
		values  []float64
		want    map[string]float64
		wantErr string
	}{
		{
			name:   "circular",
			shape:  xmi.ShapeCircular,
			values: []float64{0.4},
			want:   map[string]float64{"D": 0.4},
		},
		{
			name:   "rectangular",
			shape:  xmi.ShapeRectangular,
			values: []float64{0.5, 0.3},
			want:   map[string]float64{"H": 0.5, "B": 0.3},
		},
		{
			name:   "i shape",
			shape:  xmi.ShapeIShape,
			values: []float64{0.4, 0.2, 0.012, 0.008, 0.01},
			want:   map[string]float64{"D": 0.4, "B": 0.2, "T": 0.012, "t": 0.008, "r": 0.01},
		},
		{
			name:   "rectangular hollow",
			shape:  xmi.ShapeRectangularHollow,
			values: []float64{0.2, 0.1, 0.006},
			want:   map[string]float64{"H": 0.2, "B": 0.1, "t": 0.006},
		},
		{
			name:    "wrong arity",
			shape:   xmi.ShapeRectangular,
			values:  []float64{0.5},
			wantErr: "expects 2 parameters, got 1",
		},
		{
			name:    "non-positive dimension",
			shape:   xmi.ShapeCircular,
			values:  []float64{0},
			wantErr: "invalid parameters for shape Circular",
		},
		{
			name:   "custom shape",
			shape:  xmi.ShapeOthers,
			values: []float64{1, 2, 3},
			want:   map[string]float64{"P1": 1, "P2": 2, "P3": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := FromList(tt.shape, tt.values)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("FromList() error = %v, want one containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromList() error = %v", err)
			}
			if params.Shape() != tt.shape {
				t.Errorf("Shape() = %q, want %q", params.Shape(), tt.shape)
			}
			if got := params.Map(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Map() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromMap(t *testing.T) {
	params, err := FromMap(xmi.ShapeTShape, map[string]float64{
		"D": 0.3, "B": 0.2, "T": 0.012, "t": 0.008, "r": 0.01,
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	tee, ok := params.(TShape)
	if !ok {
		t.Fatalf("FromMap() = %T, want TShape", params)
	}
	if tee.D != 0.3 || tee.Tw != 0.008 || tee.R != 0.01 {
		t.Errorf("TShape = %+v, want D=0.3 Tw=0.008 R=0.01", tee)
	}

	_, err = FromMap(xmi.ShapeTShape, map[string]float64{"D": 0.3})
	if err == nil || !strings.Contains(err.Error(), "missing parameter") {
		t.Errorf("FromMap() error = %v, want a missing parameter error", err)
	}
}

func TestFromMapCustomShape(t *testing.T) {
	params, err := FromMap(xmi.ShapeUnknown, map[string]float64{"W": 1.5})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if _, ok := params.(Custom); !ok {
		t.Fatalf("FromMap() = %T, want Custom", params)
	}
	if params.Map()["W"] != 1.5 {
		t.Errorf("Map() = %v, want W=1.5", params.Map())
	}
}

func TestRequiredKeys(t *testing.T) {
	tests := []struct {
		shape xmi.Shape
		want  []string
	}{
		{shape: xmi.ShapeCircular, want: []string{"D"}},
		{shape: xmi.ShapeCShape, want: []string{"H", "B", "T1", "T2", "t"}},
		{shape: xmi.ShapeSquareHollow, want: []string{"H", "t"}},
		{shape: xmi.ShapeOthers, want: nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.shape), func(t *testing.T) {
			if got := RequiredKeys(tt.shape); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RequiredKeys() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromCrossSection(t *testing.T) {
	section := &xmi.CrossSection{
		Shape:      xmi.ShapeRectangular,
		Parameters: []float64{0.5, 0.3},
	}
	params, err := FromCrossSection(section)
	if err != nil {
		t.Fatalf("FromCrossSection() error = %v", err)
	}
	rect, ok := params.(Rectangular)
	if !ok {
		t.Fatalf("FromCrossSection() = %T, want Rectangular", params)
	}
	if rect.H != 0.5 || rect.B != 0.3 {
		t.Errorf("Rectangular = %+v, want H=0.5 B=0.3", rect)
	}
}
