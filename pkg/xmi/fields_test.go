package xmi

import (
	"reflect"
	"testing"
)

func TestLookupFieldAliases(t *testing.T) {
	tests := []struct {
		name string
		obj  map[string]any
		want any
	}{
		{
			name: "wire name",
			obj:  map[string]any{"MaterialType": "Concrete"},
			want: "Concrete",
		},
		{
			name: "native alias",
			obj:  map[string]any{"material_type": "Steel"},
			want: "Steel",
		},
		{
			name: "wire name wins over alias",
			obj:  map[string]any{"MaterialType": "Concrete", "material_type": "Steel"},
			want: "Concrete",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lookupField(tt.obj, "MaterialType")
			if !ok {
				t.Fatal("lookupField() reported the field missing")
			}
			if got != tt.want {
				t.Errorf("lookupField() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, ok := lookupField(map[string]any{"Other": 1}, "MaterialType"); ok {
		t.Error("lookupField() found a field that is not present")
	}
}

func TestStringField(t *testing.T) {
	tests := []struct {
		name    string
		obj     map[string]any
		want    string
		wantOK  bool
		wantErr string
	}{
		{name: "present", obj: map[string]any{"Name": "n1"}, want: "n1", wantOK: true},
		{name: "missing", obj: map[string]any{}},
		{name: "null", obj: map[string]any{"Name": nil}},
		{name: "wrong type", obj: map[string]any{"Name": 123}, wantErr: "invalid name value: 123 must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := stringField(tt.obj, "Name")
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("stringField() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("stringField() error = %v", err)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("stringField() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRequiredFloat(t *testing.T) {
	tests := []struct {
		name    string
		obj     map[string]any
		want    float64
		wantErr string
	}{
		{name: "float", obj: map[string]any{"X": 1.5}, want: 1.5},
		{name: "int", obj: map[string]any{"X": 2}, want: 2},
		{name: "numeric string", obj: map[string]any{"X": " 3.25 "}, want: 3.25},
		{name: "missing", obj: map[string]any{}, wantErr: "Missing attribute: x"},
		{name: "null", obj: map[string]any{"X": nil}, wantErr: "Missing attribute: x"},
		{name: "non-numeric", obj: map[string]any{"X": "abc"}, wantErr: "invalid x value: abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := requiredFloat(tt.obj, "X")
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("requiredFloat() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("requiredFloat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("requiredFloat() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    [3]float64
		wantErr bool
	}{
		{name: "string", value: "1,0,0", want: [3]float64{1, 0, 0}},
		{name: "string with spaces", value: " 0 , 1 , 0 ", want: [3]float64{0, 1, 0}},
		{name: "list", value: []any{0.0, 0.0, 1.0}, want: [3]float64{0, 0, 1}},
		{name: "mixed numeric list", value: []any{1, 0.5, "2"}, want: [3]float64{1, 0.5, 2}},
		{name: "two components", value: "1,0", wantErr: true},
		{name: "four components", value: []any{1.0, 0.0, 0.0, 0.0}, wantErr: true},
		{name: "non-numeric component", value: "1,zero,0", wantErr: true},
		{name: "wrong type", value: 7, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAxis("LocalAxisX", tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseAxis() error = nil, want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAxis() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseAxis() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatAxis(t *testing.T) {
	if got := formatAxis([3]float64{1, 0, 0.5}); got != "1,0,0.5" {
		t.Errorf("formatAxis() = %q, want %q", got, "1,0,0.5")
	}
}

func TestParseParameters(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    []float64
		wantErr bool
	}{
		{name: "string", value: "0.5;0.3", want: []float64{0.5, 0.3}},
		{name: "single value", value: "0.4", want: []float64{0.4}},
		{name: "list", value: []any{0.5, 0.3}, want: []float64{0.5, 0.3}},
		{name: "non-numeric component", value: "0.5;wide", wantErr: true},
		{name: "wrong type", value: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseParameters("Parameters", tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseParameters() error = nil, want an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseParameters() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseParameters() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatParameters(t *testing.T) {
	if got := formatParameters([]float64{0.5, 0.3}); got != "0.5;0.3" {
		t.Errorf("formatParameters() = %q, want %q", got, "0.5;0.3")
	}
}
